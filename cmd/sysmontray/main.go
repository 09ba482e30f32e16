// Command sysmontray shows CPU, memory, disk and network activity in the
// notification area. Build with -ldflags -H=windowsgui to run without a
// console window; set SYSMON_CONSOLE=1 for the terminal view instead.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/sysmontray/internal/app"
	apperrors "github.com/agbru/sysmontray/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sysmontray: %v\n", err)
		os.Exit(apperrors.ExitCode(err))
	}

	os.Exit(application.Run(context.Background()))
}
