// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/valvenet/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := app.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == app.ExitOK {
		code = 130
	}

	stop()
	os.Exit(code)
}
