package repository

import (
	"context"
	"time"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
)

// IEventRepo интерфейс для работы с журналом употреблений слов-паразитов.
// Журнал append-only: записи не изменяются, удаляются только сбросом.
type IEventRepo interface {
	// Record добавляет одну запись. Слово приводится к нижнему регистру перед записью.
	Record(ctx context.Context, event *domain.FillerEvent) error

	// Stats возвращает total и разбивку по словам для пары (user, chat).
	// since == nil означает all-time, иначе учитываются записи с timestamp >= since.
	Stats(ctx context.Context, userID, chatID int64, since *time.Time) (*domain.Stats, error)

	// DeleteByUser удаляет все записи пары (user, chat). Возвращает число удалённых строк.
	DeleteByUser(ctx context.Context, userID, chatID int64) (int64, error)

	// DeleteByChat удаляет все записи чата по всем пользователям.
	DeleteByChat(ctx context.Context, chatID int64) (int64, error)
}
