package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
)

// HandleUpdate обрабатывает входящее обновление от Telegram
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update.Message == nil {
		s.Log.Debug("update without message, skipping",
			"update_id", update.UpdateID,
		)
		return nil
	}

	return s.handleMessage(ctx, update.UpdateID, update.Message)
}

// handleMessage обрабатывает текстовое сообщение
func (s *Service) handleMessage(ctx context.Context, updateID int64, msg *domain.Message) error {
	if msg.From == nil || msg.Chat == nil {
		s.Log.Debug("message without sender or chat, skipping",
			"update_id", updateID,
		)
		return nil
	}

	// Сообщения от ботов не обрабатываем
	if msg.From.IsBot {
		s.Log.Debug("message from bot, skipping",
			"update_id", updateID,
			"user_id", msg.From.ID,
		)
		return nil
	}

	if msg.Text == nil || *msg.Text == "" {
		s.Log.Debug("message without text, skipping",
			"update_id", updateID,
		)
		return nil
	}

	sender := &domain.Sender{
		UserID: msg.From.ID,
		ChatID: msg.Chat.ID,
	}
	if msg.From.Username != nil {
		sender.Username = *msg.From.Username
	}

	text := *msg.Text

	var err error
	if IsCommand(text) {
		err = s.Bot.HandleCommand(ctx, sender, ParseCommand(text), updateID)
	} else {
		err = s.Bot.HandleText(ctx, sender, text, updateID)
	}

	if err != nil {
		// Бизнес-ошибки уже залогированы на уровне usecase
		if !domain.IsBusinessError(err) {
			s.Log.Error("failed to handle message",
				"error", err,
				"update_id", updateID,
				"chat_id", sender.ChatID,
				"user_id", sender.UserID,
			)
		}
		return fmt.Errorf("failed to handle message [update_id=%d]: %w", updateID, err)
	}

	return nil
}

// IsCommand проверяет, является ли текст командой бота
func IsCommand(text string) bool {
	return strings.HasPrefix(text, "/")
}

// ParseCommand извлекает имя команды из текста.
// "/stats@filler_bot args" -> "stats"
func ParseCommand(text string) string {
	command := strings.TrimPrefix(text, "/")

	// Отрезаем аргументы
	if idx := strings.Index(command, " "); idx != -1 {
		command = command[:idx]
	}

	// Отрезаем упоминание бота: /stats@botname
	if idx := strings.Index(command, "@"); idx != -1 {
		command = command[:idx]
	}

	// Telegram команды регистронезависимы: /Start и /start - одно и то же
	return strings.ToLower(command)
}
