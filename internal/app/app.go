// Package app wires the monitor together: configuration, logging, the
// counter registry, and either the tray host or the console host.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/agbru/sysmontray/internal/adapters"
	"github.com/agbru/sysmontray/internal/cli"
	"github.com/agbru/sysmontray/internal/config"
	"github.com/agbru/sysmontray/internal/counters"
	apperrors "github.com/agbru/sysmontray/internal/errors"
	"github.com/agbru/sysmontray/internal/logging"
	"github.com/agbru/sysmontray/internal/metrics"
	"github.com/agbru/sysmontray/internal/render"
	"github.com/agbru/sysmontray/internal/sampler"
	"github.com/agbru/sysmontray/internal/tray"
	"github.com/agbru/sysmontray/internal/tui"
	"github.com/agbru/sysmontray/internal/ui"
)

// Application represents the sysmontray application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer

	newSource  func() (counters.Source, error)
	enumerator adapters.Enumerator
	logCloser  io.Closer
	configured bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithConfig uses cfg instead of reading the environment.
func WithConfig(cfg config.AppConfig) AppOption {
	return func(a *Application) {
		a.Config = cfg
		a.configured = true
	}
}

// WithSource overrides the platform counter source.
func WithSource(f func() (counters.Source, error)) AppOption {
	return func(a *Application) { a.newSource = f }
}

// WithEnumerator overrides the platform adapter enumerator.
func WithEnumerator(e adapters.Enumerator) AppOption {
	return func(a *Application) { a.enumerator = e }
}

// New resolves configuration and logging. Errors map to exit codes through
// apperrors.ExitCode.
func New(errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		ErrWriter: errWriter,
		newSource: counters.NewSource,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.enumerator == nil {
		app.enumerator = adapters.NewEnumerator()
	}
	if !app.configured {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		app.Config = cfg
	}

	logger, closer, err := newLogger(app.Config, errWriter)
	if err != nil {
		return nil, err
	}
	app.Logger = logger
	app.logCloser = closer
	return app, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger writes JSON lines to the configured log file, or to errWriter.
// The console view owns the terminal, so without a log file it logs nothing.
func newLogger(cfg config.AppConfig, errWriter io.Writer) (logging.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, apperrors.ValidationError{Field: "LogLevel", Message: err.Error()}
	}
	var (
		w                = errWriter
		closer io.Closer = nopCloser{}
	)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, apperrors.NewConfigError("open log file: %v", err)
		}
		w, closer = f, f
	case cfg.Console:
		w = io.Discard
	}
	return logging.NewLogger(w, "sysmontray").WithLevel(level), closer, nil
}

// Run starts the monitor and blocks until it exits, returning the process
// exit code.
func (a *Application) Run(ctx context.Context) int {
	defer a.logCloser.Close()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := a.run(sigCtx)
	if err == nil && sigCtx.Err() != nil && ctx.Err() == nil {
		a.Logger.Info("interrupted")
		err = context.Canceled
	}
	code := apperrors.ExitCode(err)
	if err != nil && !apperrors.IsContextError(err) {
		a.Logger.Error("sysmontray stopped", err, logging.Int("exit_code", code))
		fmt.Fprintf(a.ErrWriter, "sysmontray: %v\n", err)
	}
	return code
}

func (a *Application) run(ctx context.Context) error {
	ui.InitTheme(a.Config.NoColor)
	a.Logger.Info("starting",
		logging.String("version", Version),
		logging.String("interval", a.Config.Interval.String()),
		logging.Bool("console", a.Config.Console),
		logging.Bool("disk_write_compat", a.Config.DiskWriteCompat))

	var (
		reg        *counters.Registry
		capacityMB int64
	)
	open := func() error {
		var err error
		reg, capacityMB, err = a.openCounters()
		return err
	}
	var err error
	if a.Config.Console {
		err = cli.Step(a.ErrWriter, "Opening performance counters", open)
	} else {
		err = open()
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := reg.Close(); err != nil {
			a.Logger.Error("release counters", err)
		}
	}()

	filter := adapters.NewFilter(a.enumerator, reg.NetworkInstances())
	a.logCounters(filter, capacityMB)

	collector := metrics.NewCollector()
	defer a.logSummary(collector)

	opts := []sampler.Option{
		sampler.WithLogger(a.Logger),
		sampler.WithMetrics(collector),
		sampler.WithDiskWriteCompat(a.Config.DiskWriteCompat),
	}
	if a.Config.Console {
		return a.runConsole(ctx, reg, filter, capacityMB, opts)
	}
	return a.runTray(ctx, reg, filter, capacityMB, opts)
}

// openCounters opens every counter and reads physical memory. Both are
// fatal on failure; a partially opened registry is released.
func (a *Application) openCounters() (*counters.Registry, int64, error) {
	src, err := a.newSource()
	if err != nil {
		return nil, 0, apperrors.CounterError{Path: "counter source", Cause: err}
	}
	reg, err := counters.New(src)
	if err != nil {
		return nil, 0, err
	}
	capacityMB, err := counters.Capacity(src)
	if err != nil {
		return nil, 0, errors.Join(err, reg.Close())
	}
	return reg, capacityMB, nil
}

func (a *Application) runTray(ctx context.Context, reg *counters.Registry, filter *adapters.Filter, capacityMB int64, opts []sampler.Option) error {
	return tray.Run(ctx, tray.Options{
		Version:     Version,
		TaskManager: a.taskManager(),
		Logger:      a.Logger,
	}, func(ctx context.Context, h *tray.Host) error {
		renderer, err := render.New(h, render.WithLogger(a.Logger))
		if err != nil {
			return err
		}
		defer renderer.Close()

		smp := sampler.New(reg, filter, renderer, capacityMB, opts...)
		drv := sampler.NewDriver(smp, a.Logger, config.SlowTickThreshold(a.Config))
		return drv.Run(ctx, sampler.NewTicker(a.Config.Interval), func(tip sampler.Tooltip) {
			h.SetTooltip(tip.String())
		})
	})
}

func (a *Application) runConsole(ctx context.Context, reg *counters.Registry, filter *adapters.Filter, capacityMB int64, opts []sampler.Option) error {
	smp := sampler.New(reg, filter, tui.NewGlyphIcon(), capacityMB, opts...)
	drv := sampler.NewDriver(smp, a.Logger, config.SlowTickThreshold(a.Config))
	return tui.Run(ctx, drv, sampler.NewTicker(a.Config.Interval), smp.RAMPercent, tui.Options{
		Version:     Version,
		TaskManager: a.taskManager(),
	})
}

func (a *Application) logCounters(filter *adapters.Filter, capacityMB int64) {
	a.Logger.Info("counters opened",
		logging.Int("network_instances", len(filter.Instances())),
		logging.String("instances", strings.Join(filter.Instances(), ", ")),
		logging.String("physical_memory", humanize.IBytes(uint64(capacityMB)*1024*1024)))
}

func (a *Application) logSummary(c *metrics.Collector) {
	values, err := c.Summary()
	if err != nil {
		a.Logger.Error("gather metrics", err)
		return
	}
	fields := make([]logging.Field, 0, len(values))
	for _, v := range values {
		fields = append(fields, logging.Float64(v.Name, v.Value))
	}
	a.Logger.Info("shutdown summary", fields...)
}
