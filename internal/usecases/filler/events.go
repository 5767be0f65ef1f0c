package filler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
	"github.com/google/uuid"
)

// detectionEvent сообщение для аналитики в Kafka - одно на обработанное сообщение
type detectionEvent struct {
	UserID    int64     `json:"user_id"`
	ChatID    int64     `json:"chat_id"`
	Words     []string  `json:"words"`
	Total     int       `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

// publishDetection публикует событие детекции в Kafka, если producer настроен.
// Сбой публикации не влияет на обработку сообщения - предупреждаем и продолжаем.
func (s *Service) publishDetection(ctx context.Context, sender *domain.Sender, occurrences []string, timestamp time.Time) {
	if s.Producer == nil {
		return
	}

	payload, err := json.Marshal(detectionEvent{
		UserID:    sender.UserID,
		ChatID:    sender.ChatID,
		Words:     occurrences,
		Total:     len(occurrences),
		Timestamp: timestamp,
	})
	if err != nil {
		s.Log.Warn("failed to marshal detection event",
			"error", err,
			"chat_id", sender.ChatID,
		)
		return
	}

	if err := s.Producer.Send(ctx, uuid.NewString(), payload); err != nil {
		s.Log.Warn("failed to publish detection event",
			"error", err,
			"chat_id", sender.ChatID,
			"user_id", sender.UserID,
		)
	}
}
