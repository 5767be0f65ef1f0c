package filler

import (
	"context"
	"fmt"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
	"github.com/Flagro/FillerWordsDetector/internal/usecases/filler/texts"
)

// HandleCommand обрабатывает команду бота
func (s *Service) HandleCommand(ctx context.Context, sender *domain.Sender, command string, updateID int64) error {
	switch command {
	case "start":
		return s.handleStart(ctx, sender)
	case "stop":
		return s.handleStop(ctx, sender)
	case "stats":
		return s.handleStats(ctx, sender)
	case "reset":
		return s.handleReset(ctx, sender)
	case "group_reset":
		return s.handleGroupReset(ctx, sender)
	default:
		// Неизвестные команды игнорируем - в групповых чатах бот не должен шуметь
		s.Log.Debug("unknown command, ignoring",
			"command", command,
			"chat_id", sender.ChatID,
			"update_id", updateID,
		)
		return nil
	}
}

// handleStart активирует слежение в чате. Только для администраторов.
func (s *Service) handleStart(ctx context.Context, sender *domain.Sender) error {
	if !s.isAdmin(sender.Username) {
		s.Log.Debug("start denied, sender is not admin",
			"chat_id", sender.ChatID,
			"user_id", sender.UserID,
		)
		s.reply(ctx, sender.ChatID, texts.UnauthorizedAdminMessage)
		return nil
	}

	s.ChatState.SetActive(sender.ChatID, true)

	s.Log.Info("chat activated",
		"chat_id", sender.ChatID,
		"user_id", sender.UserID,
	)

	s.replyMarkdown(ctx, sender.ChatID, texts.StartMessage)
	return nil
}

// handleStop останавливает слежение в чате. Только для администраторов.
func (s *Service) handleStop(ctx context.Context, sender *domain.Sender) error {
	if !s.isAdmin(sender.Username) {
		s.Log.Debug("stop denied, sender is not admin",
			"chat_id", sender.ChatID,
			"user_id", sender.UserID,
		)
		s.reply(ctx, sender.ChatID, texts.UnauthorizedAdminMessage)
		return nil
	}

	s.ChatState.SetActive(sender.ChatID, false)

	s.Log.Info("chat deactivated",
		"chat_id", sender.ChatID,
		"user_id", sender.UserID,
	)

	s.reply(ctx, sender.ChatID, texts.StopMessage)
	return nil
}

// handleReset сбрасывает статистику отправителя в этом чате
func (s *Service) handleReset(ctx context.Context, sender *domain.Sender) error {
	if !s.ChatState.IsActive(sender.ChatID) {
		s.Log.Debug("reset ignored, chat is not active",
			"chat_id", sender.ChatID,
		)
		s.reply(ctx, sender.ChatID, texts.BotNotActiveMessage)
		return nil
	}
	if !s.isAllowed(sender.Username) {
		s.Log.Debug("reset denied, sender is not allowed",
			"chat_id", sender.ChatID,
			"user_id", sender.UserID,
		)
		s.reply(ctx, sender.ChatID, texts.UnauthorizedUserMessage)
		return nil
	}

	deleted, err := s.EventRepo.DeleteByUser(ctx, sender.UserID, sender.ChatID)
	if err != nil {
		s.Log.Error("failed to reset user stats",
			"error", err,
			"chat_id", sender.ChatID,
			"user_id", sender.UserID,
		)
		s.reply(ctx, sender.ChatID, texts.ResetErrorMessage)
		return domain.WrapBusinessError(fmt.Errorf("failed to reset user stats: %w", err))
	}

	s.Log.Info("user stats reset",
		"chat_id", sender.ChatID,
		"user_id", sender.UserID,
		"deleted", deleted,
	)

	s.reply(ctx, sender.ChatID, texts.ResetSuccessMessage)
	return nil
}

// handleGroupReset сбрасывает статистику всего чата. Только для администраторов.
func (s *Service) handleGroupReset(ctx context.Context, sender *domain.Sender) error {
	if !s.ChatState.IsActive(sender.ChatID) {
		s.Log.Debug("group reset ignored, chat is not active",
			"chat_id", sender.ChatID,
		)
		s.reply(ctx, sender.ChatID, texts.BotNotActiveMessage)
		return nil
	}
	if !s.isAdmin(sender.Username) {
		s.Log.Debug("group reset denied, sender is not admin",
			"chat_id", sender.ChatID,
			"user_id", sender.UserID,
		)
		s.reply(ctx, sender.ChatID, texts.UnauthorizedAdminMessage)
		return nil
	}

	deleted, err := s.EventRepo.DeleteByChat(ctx, sender.ChatID)
	if err != nil {
		s.Log.Error("failed to reset chat stats",
			"error", err,
			"chat_id", sender.ChatID,
		)
		s.reply(ctx, sender.ChatID, texts.GroupResetErrorMessage)
		return domain.WrapBusinessError(fmt.Errorf("failed to reset chat stats: %w", err))
	}

	s.Log.Info("chat stats reset",
		"chat_id", sender.ChatID,
		"user_id", sender.UserID,
		"deleted", deleted,
	)

	s.reply(ctx, sender.ChatID, texts.GroupResetSuccessMessage)
	return nil
}
