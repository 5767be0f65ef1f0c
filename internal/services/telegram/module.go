package telegram

import (
	"log/slog"

	"github.com/Flagro/FillerWordsDetector/internal/ports/service"
)

// Service маршрутизирует входящие обновления Telegram в бизнес-логику
type Service struct {
	Bot service.IBotService
	Log *slog.Logger
}

func New(
	bot service.IBotService,
	log *slog.Logger,
) *Service {
	return &Service{
		Bot: bot,
		Log: log,
	}
}
