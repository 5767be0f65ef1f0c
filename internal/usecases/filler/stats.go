package filler

import (
	"context"
	"fmt"
	"time"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
	"github.com/Flagro/FillerWordsDetector/internal/usecases/filler/texts"
)

// handleStats отвечает статистикой по трём окнам: сегодня, 30 дней, всё время.
// Окна пересчитываются на момент запроса, результаты никогда не кэшируются.
func (s *Service) handleStats(ctx context.Context, sender *domain.Sender) error {
	if !s.ChatState.IsActive(sender.ChatID) {
		s.Log.Debug("stats ignored, chat is not active",
			"chat_id", sender.ChatID,
		)
		s.reply(ctx, sender.ChatID, texts.BotNotActiveMessage)
		return nil
	}
	if !s.isAllowed(sender.Username) {
		s.Log.Debug("stats denied, sender is not allowed",
			"chat_id", sender.ChatID,
			"user_id", sender.UserID,
		)
		s.reply(ctx, sender.ChatID, texts.UnauthorizedUserMessage)
		return nil
	}

	now := time.Now()

	daily, err := s.EventRepo.Stats(ctx, sender.UserID, sender.ChatID, domain.WindowDaily.Since(now))
	if err != nil {
		return s.statsFailed(ctx, sender, domain.WindowDaily, err)
	}

	monthly, err := s.EventRepo.Stats(ctx, sender.UserID, sender.ChatID, domain.WindowMonthly.Since(now))
	if err != nil {
		return s.statsFailed(ctx, sender, domain.WindowMonthly, err)
	}

	allTime, err := s.EventRepo.Stats(ctx, sender.UserID, sender.ChatID, domain.WindowAllTime.Since(now))
	if err != nil {
		return s.statsFailed(ctx, sender, domain.WindowAllTime, err)
	}

	s.replyMarkdown(ctx, sender.ChatID, texts.FormatStats(daily, monthly, allTime))
	return nil
}

// statsFailed отвечает общей ошибкой и пробрасывает её дальше -
// пустую статистику вместо реальной не выдумываем
func (s *Service) statsFailed(ctx context.Context, sender *domain.Sender, window domain.Window, err error) error {
	s.Log.Error("failed to query stats",
		"error", err,
		"window", string(window),
		"chat_id", sender.ChatID,
		"user_id", sender.UserID,
	)

	s.reply(ctx, sender.ChatID, texts.StatsErrorMessage)

	return domain.WrapBusinessError(fmt.Errorf("failed to query %s stats: %w", window, err))
}
