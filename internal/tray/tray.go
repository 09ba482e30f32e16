// Package tray hosts the monitor in the notification area: icon, tooltip and
// the context menu.
package tray

import (
	"context"
	"sync/atomic"

	"fyne.io/systray"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/sysmontray/internal/logging"
)

// Title is the disabled header item of the context menu.
const Title = "System Monitor"

// Options configures the tray host.
type Options struct {
	Version string
	// TaskManager launches the system task manager. Nil disables the item.
	TaskManager func() error
	Logger      logging.Logger
}

// Host is the live tray surface. Its methods may be called from any goroutine.
type Host struct{}

// SetIcon installs icon bytes (ICO on Windows, PNG elsewhere).
func (h *Host) SetIcon(icon []byte) { systray.SetIcon(icon) }

// SetTooltip replaces the hover text.
func (h *Host) SetTooltip(text string) { systray.SetTooltip(text) }

// Run shows the tray icon and runs body until it returns, the user picks
// Exit, or ctx is canceled. It must be called from the main goroutine.
func Run(ctx context.Context, opts Options, body func(ctx context.Context, h *Host) error) error {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		runErr  error
		started atomic.Bool
	)
	done := make(chan struct{})
	systray.Run(func() {
		started.Store(true)
		h := &Host{}
		systray.SetTitle(Title)
		systray.SetTooltip(Title)
		events := buildMenu(opts.TaskManager != nil)
		acts := actions{
			taskManager: opts.TaskManager,
			about:       func() { showAbout(opts.Version, opts.Logger) },
			exit:        cancel,
			logger:      opts.Logger,
		}

		go func() {
			defer close(done)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error { return handleMenu(gctx, events, acts) })
			g.Go(func() error {
				defer cancel()
				return body(gctx, h)
			})
			runErr = g.Wait()
			systray.Quit()
		}()
	}, func() {
		opts.Logger.Debug("tray icon removed")
	})
	cancel()
	if started.Load() {
		<-done
	}
	return runErr
}

func buildMenu(taskManager bool) menuEvents {
	title := systray.AddMenuItem(Title, "")
	title.Disable()
	systray.AddSeparator()
	tm := systray.AddMenuItem("Task Manager", "Open the system task manager")
	if !taskManager {
		tm.Disable()
	}
	about := systray.AddMenuItem("About...", "About System Monitor")
	exit := systray.AddMenuItem("Exit App", "Quit System Monitor")
	return menuEvents{
		taskManager: tm.ClickedCh,
		about:       about.ClickedCh,
		exit:        exit.ClickedCh,
	}
}
