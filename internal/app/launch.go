package app

import (
	"os/exec"

	apperrors "github.com/agbru/sysmontray/internal/errors"
)

// taskManager returns the menu action that opens the configured task
// manager, or nil when none is configured.
func (a *Application) taskManager() func() error {
	path := a.Config.TaskManagerPath
	if path == "" {
		return nil
	}
	return func() error { return launch(path) }
}

// launch starts path detached from the monitor and reaps it in the background.
func launch(path string) error {
	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		return apperrors.WrapError(err, "start %s", path)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
