//go:build windows

package counters

import (
	"slices"
	"testing"
	"unsafe"

	"golang.org/x/sys/windows"
)

func multiSZ(items ...string) []uint16 {
	var buf []uint16
	for _, s := range items {
		u, _ := windows.UTF16FromString(s)
		buf = append(buf, u...)
	}
	return append(buf, 0)
}

func TestSplitMultiSZ(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		buf  []uint16
		want []string
	}{
		{"empty", []uint16{0, 0}, nil},
		{"single", multiSZ("Ethernet"), []string{"Ethernet"}},
		{"several", multiSZ("Intel[R] Ethernet", "Wi-Fi", "Loopback"), []string{"Intel[R] Ethernet", "Wi-Fi", "Loopback"}},
		{"trailing garbage ignored", append(multiSZ("a"), 'x', 0), []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := splitMultiSZ(tt.buf); !slices.Equal(got, tt.want) {
				t.Errorf("splitMultiSZ = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMemoryStatusExLayout(t *testing.T) {
	t.Parallel()
	if got := unsafe.Sizeof(memoryStatusEx{}); got != 64 {
		t.Errorf("sizeof(memoryStatusEx) = %d, want 64", got)
	}
}

func TestTotalMemoryMB(t *testing.T) {
	t.Parallel()
	mb, err := (&pdhSource{}).TotalMemoryMB()
	if err != nil {
		t.Fatalf("TotalMemoryMB: %v", err)
	}
	if mb <= 0 {
		t.Errorf("TotalMemoryMB = %d, want > 0", mb)
	}
	if got, err := Capacity(&pdhSource{}); err != nil || got != mb {
		t.Errorf("Capacity = %d, %v; want %d", got, err, mb)
	}
}

func TestPDHSource_OpenSampleRelease(t *testing.T) {
	src, err := NewSource()
	if err != nil {
		t.Skipf("pdh unavailable: %v", err)
	}
	h, err := src.Open(CPUTotal.Path())
	if err != nil {
		t.Skipf("open %s: %v", CPUTotal.Path(), err)
	}
	if v, err := src.Next(h); err != nil || v < 0 {
		t.Errorf("Next = %v, %v", v, err)
	}
	if err := src.Release(h); err != nil {
		t.Errorf("Release: %v", err)
	}
	if err := src.Release(h); err == nil {
		t.Error("second Release should fail for an unknown handle")
	}
}
