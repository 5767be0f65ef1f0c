package service

import (
	"context"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
)

// IBotService интерфейс для бизнес-логики бота
type IBotService interface {
	HandleCommand(ctx context.Context, sender *domain.Sender, command string, updateID int64) error
	HandleText(ctx context.Context, sender *domain.Sender, text string, updateID int64) error
}
