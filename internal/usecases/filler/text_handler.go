package filler

import (
	"context"
	"time"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
	"github.com/Flagro/FillerWordsDetector/internal/usecases/filler/texts"
)

// HandleText обрабатывает обычное текстовое сообщение: детекция слов-паразитов,
// запись событий, уведомление в чат
func (s *Service) HandleText(ctx context.Context, sender *domain.Sender, text string, updateID int64) error {
	if !s.ChatState.IsActive(sender.ChatID) {
		s.Log.Debug("chat is not active, skipping message",
			"chat_id", sender.ChatID,
			"update_id", updateID,
		)
		return nil
	}
	if !s.isAllowed(sender.Username) {
		s.Log.Debug("sender is not in the allow list, skipping message",
			"chat_id", sender.ChatID,
			"user_id", sender.UserID,
			"update_id", updateID,
		)
		return nil
	}

	occurrences := s.Detector.Detect(text)
	if len(occurrences) == 0 {
		return nil
	}

	now := time.Now()

	// Каждое вхождение - отдельная запись в журнале.
	// Сбой одной записи не прерывает остальные и не ретраится.
	var failed int
	for _, word := range occurrences {
		event := &domain.FillerEvent{
			UserID:    sender.UserID,
			ChatID:    sender.ChatID,
			Word:      word,
			Timestamp: now,
		}
		if err := s.EventRepo.Record(ctx, event); err != nil {
			failed++
		}
	}
	if failed > 0 {
		s.Log.Warn("some occurrences were not recorded",
			"failed", failed,
			"total", len(occurrences),
			"chat_id", sender.ChatID,
			"user_id", sender.UserID,
		)
	}

	s.publishDetection(ctx, sender, occurrences, now)

	// Уникальные слова в порядке первого появления
	distinct := make([]string, 0, len(occurrences))
	seen := make(map[string]struct{}, len(occurrences))
	for _, word := range occurrences {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		distinct = append(distinct, word)
	}

	s.reply(ctx, sender.ChatID, texts.FormatDetected(distinct, len(occurrences)))

	return nil
}
