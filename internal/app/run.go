package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Run запускает приложение и блокируется до отмены контекста
func (a *App) Run(ctx context.Context) error {
	deps, err := a.initDependencies(ctx)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server", "addr", deps.server.Addr)
		if err := deps.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if deps.poller != nil {
		g.Go(func() error {
			// Перед polling снимаем webhook, иначе Telegram вернёт 409
			if err := deps.poller.DeleteWebhook(gCtx); err != nil {
				a.Log.Warn("failed to delete webhook before polling",
					"error", err,
				)
			}

			if err := deps.poller.Start(gCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := deps.server.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("http server shutdown failed", "error", err)
		}

		if deps.producer != nil {
			if err := deps.producer.Close(); err != nil {
				a.Log.Error("kafka producer close failed", "error", err)
			}
		}

		if err := deps.db.Close(); err != nil {
			a.Log.Error("db close failed", "error", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	a.Log.Info("application stopped")
	return nil
}
