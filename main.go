/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command tokensmith generates platform artifacts from design tokens.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bennypowers.dev/tokensmith/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
