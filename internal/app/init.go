package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/Flagro/FillerWordsDetector/internal/adapters/primary/http"
	healthcheckController "github.com/Flagro/FillerWordsDetector/internal/adapters/primary/http/controllers/healthcheck"
	telegramController "github.com/Flagro/FillerWordsDetector/internal/adapters/primary/http/controllers/telegram"
	kafkaAdapter "github.com/Flagro/FillerWordsDetector/internal/adapters/secondary/kafka"
	"github.com/Flagro/FillerWordsDetector/internal/adapters/secondary/storage/inmemory"
	"github.com/Flagro/FillerWordsDetector/internal/adapters/secondary/storage/pg"
	tgAdapter "github.com/Flagro/FillerWordsDetector/internal/adapters/secondary/telegram"
	kafkaPorts "github.com/Flagro/FillerWordsDetector/internal/ports/kafka"
	eventRepo "github.com/Flagro/FillerWordsDetector/internal/repository/event"
	tgService "github.com/Flagro/FillerWordsDetector/internal/services/telegram"
	"github.com/Flagro/FillerWordsDetector/internal/usecases/filler"
)

// dependencies всё, чем управляет жизненный цикл приложения
type dependencies struct {
	db       *pg.DB
	server   *http.Server
	poller   *tgAdapter.Poller      // nil в webhook режиме
	producer *kafkaAdapter.Producer // nil если Kafka не настроена
}

// initDependencies собирает граф зависимостей приложения
func (a *App) initDependencies(ctx context.Context) (*dependencies, error) {
	// База данных и миграции
	conn, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, err
	}
	if err := pg.RunMigrations(conn, a.Log); err != nil {
		return nil, err
	}
	db := pg.NewDB(conn)

	events := eventRepo.New(db, a.Log)
	chatState := inmemory.NewChatState()
	detector := filler.NewDetector(a.Cfg.Filler.Words)

	tgClient := tgAdapter.NewClient(a.Cfg.Telegram.BotToken, a.Log)

	// Проверяем токен до запуска - с невалидным токеном дальше нет смысла
	if err := tgClient.GetMe(ctx); err != nil {
		return nil, fmt.Errorf("telegram token check failed: %w", err)
	}

	// Kafka опциональна - без брокеров бот работает, просто не шлёт аналитику
	var producer *kafkaAdapter.Producer
	var producerPort kafkaPorts.IProducer
	if a.Cfg.Kafka.IsConfigured() {
		producer, err = kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
		if err != nil {
			a.Log.Warn("failed to create kafka producer, continuing without analytics",
				"error", err,
			)
			producer = nil
		} else {
			producerPort = producer
		}
	}

	botService := filler.New(
		events,
		chatState,
		detector,
		tgClient,
		producerPort,
		a.Cfg.Filler.AllowedHandles,
		a.Cfg.Filler.AdminHandles,
		a.Log,
	)

	updateService := tgService.New(botService, a.Log)

	a.registerBotCommands(ctx, tgClient)

	controllers := []server.Controller{
		healthcheckController.New(conn, a.Log),
	}

	var poller *tgAdapter.Poller
	if a.Cfg.Telegram.IsWebhookEnabled() {
		controllers = append(controllers,
			telegramController.New(updateService, a.Cfg.Telegram.WebhookSecret, a.Log),
		)

		webhookURL := a.Cfg.Telegram.WebhookURL + "/webhook"
		if err := tgClient.SetWebhook(ctx, webhookURL, a.Cfg.Telegram.WebhookSecret); err != nil {
			return nil, err
		}

		a.Log.Info("running in webhook mode", "webhook_url", webhookURL)
	} else {
		poller = tgAdapter.NewPoller(tgClient, a.Cfg.Telegram, updateService.HandleUpdate, a.Log)
		a.Log.Info("running in polling mode")
	}

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)

	return &dependencies{
		db:       db,
		server:   httpServer,
		poller:   poller,
		producer: producer,
	}, nil
}

// registerBotCommands регистрирует меню команд. Сбой не фатален.
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) {
	commands := []tgAdapter.BotCommand{
		{Command: "start", Description: "Start watching this chat for filler words"},
		{Command: "stop", Description: "Stop watching this chat"},
		{Command: "stats", Description: "Show your filler word statistics"},
		{Command: "reset", Description: "Reset your statistics in this chat"},
		{Command: "group_reset", Description: "Reset statistics for the whole chat"},
	}

	if err := client.SetMyCommands(ctx, commands); err != nil {
		a.Log.Warn("failed to register bot commands",
			"error", err,
		)
	}
}
