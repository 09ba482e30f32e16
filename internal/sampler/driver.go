package sampler

import (
	"context"
	"errors"
	"time"

	"github.com/agbru/sysmontray/internal/format"
	"github.com/agbru/sysmontray/internal/logging"
)

// Ticker delivers tick times. It is satisfied by NewTicker and by manual
// tickers in tests.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

// NewTicker wraps a time.Ticker firing every d.
func NewTicker(d time.Duration) Ticker { return timeTicker{t: time.NewTicker(d)} }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// Sink receives the tooltip of every tick.
type Sink func(Tooltip)

// Driver runs a Sampler on a Ticker.
type Driver struct {
	sampler *Sampler
	logger  logging.Logger
	slow    time.Duration
}

// NewDriver returns a driver that logs ticks slower than slow at Warn.
func NewDriver(s *Sampler, logger logging.Logger, slow time.Duration) *Driver {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Driver{sampler: s, logger: logger, slow: slow}
}

// Run ticks until ctx is done, handing each tooltip to sink. Ticks run one at
// a time on the calling goroutine; a slow tick delays the next. Run stops the
// ticker on return and returns nil on cancellation.
func (d *Driver) Run(ctx context.Context, ticker Ticker, sink Sink) error {
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticker.C():
			if !ok {
				return errors.New("ticker channel closed")
			}
			start := time.Now()
			tip, err := d.sampler.Tick(ctx)
			if err != nil {
				d.logTickError(err)
			}
			sink(tip)
			if elapsed := time.Since(start); d.slow > 0 && elapsed > d.slow {
				d.logger.Warn("slow tick", logging.String("duration", format.Elapsed(elapsed)))
			}
		}
	}
}

func (d *Driver) logTickError(err error) {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		var se *SampleError
		if errors.As(e, &se) {
			d.logger.Error("sample failed", se.Err, logging.String("metric", se.Metric))
			continue
		}
		d.logger.Error("tick failed", e)
	}
}
