//go:build windows

package adapters

import (
	"errors"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// NewEnumerator returns an enumerator backed by GetAdaptersAddresses.
func NewEnumerator() Enumerator {
	return EnumeratorFunc(adapterAddresses)
}

func adapterAddresses() ([]Adapter, error) {
	var b []byte
	l := uint32(15000)
	for {
		b = make([]byte, l)
		err := windows.GetAdaptersAddresses(windows.AF_UNSPEC, windows.GAA_FLAG_INCLUDE_GATEWAYS,
			0, (*windows.IpAdapterAddresses)(unsafe.Pointer(&b[0])), &l)
		if err == nil {
			if l == 0 {
				return nil, nil
			}
			break
		}
		if !errors.Is(err, windows.ERROR_BUFFER_OVERFLOW) {
			return nil, os.NewSyscallError("getadaptersaddresses", err)
		}
		if l <= uint32(len(b)) {
			return nil, os.NewSyscallError("getadaptersaddresses", err)
		}
	}

	var out []Adapter
	for aa := (*windows.IpAdapterAddresses)(unsafe.Pointer(&b[0])); aa != nil; aa = aa.Next {
		a := Adapter{
			Description: windows.UTF16PtrToString(aa.Description),
			Up:          aa.OperStatus == windows.IfOperStatusUp,
		}
		for g := aa.FirstGatewayAddress; g != nil; g = g.Next {
			a.Gateways++
		}
		out = append(out, a)
	}
	return out, nil
}
