package tray

import (
	"context"

	"github.com/agbru/sysmontray/internal/logging"
)

// menuEvents are the click channels of the actionable menu items.
type menuEvents struct {
	taskManager <-chan struct{}
	about       <-chan struct{}
	exit        <-chan struct{}
}

type actions struct {
	taskManager func() error
	about       func()
	exit        func()
	logger      logging.Logger
}

// handleMenu dispatches clicks until ctx is done or Exit is clicked. It holds
// no state shared with the sampling goroutine. About runs on its own
// goroutine because the dialog blocks until dismissed.
func handleMenu(ctx context.Context, ev menuEvents, act actions) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ev.taskManager:
			if act.taskManager == nil {
				continue
			}
			if err := act.taskManager(); err != nil {
				act.logger.Error("launch task manager", err)
			}
		case <-ev.about:
			go act.about()
		case <-ev.exit:
			act.logger.Info("exit requested from tray menu")
			act.exit()
			return nil
		}
	}
}
