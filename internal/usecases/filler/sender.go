package filler

import "context"

// reply отправляет ответ в чат. Ошибка отправки логируется и гасится -
// сбой уведомления не должен ронять обработку сообщения.
func (s *Service) reply(ctx context.Context, chatID int64, text string) {
	if err := s.Telegram.SendMessage(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send reply",
			"error", err,
			"chat_id", chatID,
		)
	}
}

// replyMarkdown то же, но с Markdown разметкой
func (s *Service) replyMarkdown(ctx context.Context, chatID int64, text string) {
	if err := s.Telegram.SendMessageWithMarkdown(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send markdown reply",
			"error", err,
			"chat_id", chatID,
		)
	}
}
