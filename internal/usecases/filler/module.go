package filler

import (
	"log/slog"

	"github.com/Flagro/FillerWordsDetector/internal/ports/kafka"
	"github.com/Flagro/FillerWordsDetector/internal/ports/repository"
	"github.com/Flagro/FillerWordsDetector/internal/ports/state"
	"github.com/Flagro/FillerWordsDetector/internal/ports/telegram"
)

// Service бизнес-логика бота: детекция слов-паразитов, команды, статистика
type Service struct {
	EventRepo repository.IEventRepo
	ChatState state.IChatState
	Detector  *Detector
	Telegram  telegram.IClient
	Producer  kafka.IProducer // может быть nil - Kafka опциональна

	allowedHandles []string
	adminHandles   []string

	Log *slog.Logger
}

func New(
	eventRepo repository.IEventRepo,
	chatState state.IChatState,
	detector *Detector,
	telegramClient telegram.IClient,
	producer kafka.IProducer,
	allowedHandles []string,
	adminHandles []string,
	log *slog.Logger,
) *Service {
	return &Service{
		EventRepo:      eventRepo,
		ChatState:      chatState,
		Detector:       detector,
		Telegram:       telegramClient,
		Producer:       producer,
		allowedHandles: normalizeHandles(allowedHandles),
		adminHandles:   normalizeHandles(adminHandles),
		Log:            log,
	}
}
