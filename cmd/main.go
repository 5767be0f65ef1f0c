package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/Flagro/FillerWordsDetector/internal/app"
)

const appName = "filler_bot"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.NewEnvConfig(appName)
	if err != nil {
		panic(err)
	}

	a := app.New(appName, cfg)

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.Log.Error("application exited with error", "error", err)
		panic(err)
	}
}
