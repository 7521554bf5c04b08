package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp()
	err := newRootCommand(a).ExecuteContext(ctx)
	if err == nil {
		return
	}
	if a.logger != nil {
		a.logger.Error("report generation failed", zap.Error(err))
		_ = a.logger.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	stop()
	os.Exit(1)
}
