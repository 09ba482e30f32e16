package sampler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/agbru/sysmontray/internal/counters"
)

// manualTicker fires only when the test sends on ch.
type manualTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func newManualTicker() *manualTicker { return &manualTicker{ch: make(chan time.Time)} }

func (m *manualTicker) C() <-chan time.Time { return m.ch }

func (m *manualTicker) Stop() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
}

func (m *manualTicker) isStopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

func TestDriver_RunDeliversEachTick(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	cpu := []float64{10, 20, 30}
	call := 0
	f.counters.EXPECT().Sample(counters.CPUTotal).DoAndReturn(func(counters.Metric) (float64, error) {
		v := cpu[call]
		call++
		return v, nil
	}).Times(3)
	f.counters.EXPECT().Sample(gomock.Not(counters.CPUTotal)).Return(0.0, nil).AnyTimes()
	f.icon.EXPECT().Update(gomock.Any()).Return(false).AnyTimes()
	f.filter.EXPECT().Active().Return(nil, nil).Times(3)

	ticker := newManualTicker()
	tips := make(chan Tooltip, 3)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewDriver(f.sampler(1024), nil, 0).Run(ctx, ticker, func(tip Tooltip) { tips <- tip })
	}()

	now := time.Now()
	for i := 0; i < 3; i++ {
		ticker.ch <- now.Add(time.Duration(i) * time.Second)
	}
	for _, want := range []string{"CPU: 10%", "CPU: 20%", "CPU: 30%"} {
		select {
		case tip := <-tips:
			if tip.CPU != want {
				t.Errorf("CPU = %q, want %q", tip.CPU, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for tick")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil on cancellation", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if !ticker.isStopped() {
		t.Error("ticker was not stopped")
	}
}

func TestDriver_ClosedTickerIsAnError(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ticker := newManualTicker()
	close(ticker.ch)

	err := NewDriver(f.sampler(1024), nil, 0).Run(context.Background(), ticker, func(Tooltip) {})
	if err == nil {
		t.Error("expected an error for a closed ticker channel")
	}
	if !ticker.isStopped() {
		t.Error("ticker was not stopped")
	}
}

func TestNewTicker(t *testing.T) {
	t.Parallel()
	tk := NewTicker(5 * time.Millisecond)
	defer tk.Stop()
	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("ticker did not fire")
	}
}
