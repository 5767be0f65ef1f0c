package eventRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Flagro/FillerWordsDetector/internal/domain"
	"github.com/Flagro/FillerWordsDetector/internal/ports/persistence"
	ports "github.com/Flagro/FillerWordsDetector/internal/ports/repository"
)

type eventColumns struct {
	TableName string
	ID        string
	UserID    string
	ChatID    string
	Word      string
	Timestamp string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns eventColumns
}

// New создаёт новый репозиторий журнала употреблений слов-паразитов
func New(db persistence.Persistence, log *slog.Logger) ports.IEventRepo {
	cols := eventColumns{
		TableName: "filler_events",
		ID:        "id",
		UserID:    "user_id",
		ChatID:    "chat_id",
		Word:      "word",
		Timestamp: "timestamp",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// Record добавляет одну запись в журнал. Слово всегда хранится в нижнем регистре.
// Нарушение constraint-ов логируется как warning, остальные ошибки - как error.
func (r *Repository) Record(ctx context.Context, event *domain.FillerEvent) error {
	word := strings.ToLower(event.Word)
	timestamp := event.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES (?, ?, ?, ?)`,
		r.columns.TableName,
		r.columns.UserID,
		r.columns.ChatID,
		r.columns.Word,
		r.columns.Timestamp)
	err := r.db.Exec(ctx, query, event.UserID, event.ChatID, word, timestamp)
	if err != nil {
		if isConstraintViolation(err) {
			r.Log.Warn("constraint violation on record",
				"error", err,
				"user_id", event.UserID,
				"chat_id", event.ChatID,
				"word", word)
		} else {
			r.Log.Error("failed to record filler word",
				"error", err,
				"user_id", event.UserID,
				"chat_id", event.ChatID,
				"word", word)
		}
		return fmt.Errorf("failed to record filler word: %w", err)
	}

	r.Log.Debug("filler word recorded",
		"user_id", event.UserID,
		"chat_id", event.ChatID,
		"word", word)
	return nil
}

// queryer то, что умеет выполнять читающие запросы: соединение или транзакция
type queryer interface {
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Stats возвращает статистику пары (user, chat): общее число записей и разбивку
// по словам. since == nil - за всё время, иначе timestamp >= since (включительно).
// Разбивка отсортирована по убыванию count, при равенстве - по порядку вставки.
// Оба запроса идут в одной транзакции, чтобы total и разбивка сходились
// при конкурентных записях.
func (r *Repository) Stats(ctx context.Context, userID, chatID int64, since *time.Time) (*domain.Stats, error) {
	var stats *domain.Stats

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx persistence.Transaction) error {
		total, err := r.totalCount(ctx, tx, userID, chatID, since)
		if err != nil {
			return err
		}

		breakdown, err := r.wordBreakdown(ctx, tx, userID, chatID, since)
		if err != nil {
			return err
		}

		stats = &domain.Stats{
			Total:     total,
			Breakdown: breakdown,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *Repository) totalCount(ctx context.Context, q queryer, userID, chatID int64, since *time.Time) (int, error) {
	var total int

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = ? AND %s = ?`,
		r.columns.TableName,
		r.columns.UserID,
		r.columns.ChatID)
	args := []interface{}{userID, chatID}

	if since != nil {
		query += fmt.Sprintf(` AND %s >= ?`, r.columns.Timestamp)
		args = append(args, *since)
	}

	if err := q.Get(ctx, &total, query, args...); err != nil {
		r.Log.Error("failed to count filler words",
			"error", err,
			"user_id", userID,
			"chat_id", chatID)
		return 0, fmt.Errorf("failed to count filler words: %w", err)
	}

	return total, nil
}

func (r *Repository) wordBreakdown(ctx context.Context, q queryer, userID, chatID int64, since *time.Time) ([]domain.WordCount, error) {
	var breakdown []domain.WordCount

	where := fmt.Sprintf(`%s = ? AND %s = ?`, r.columns.UserID, r.columns.ChatID)
	args := []interface{}{userID, chatID}

	if since != nil {
		where += fmt.Sprintf(` AND %s >= ?`, r.columns.Timestamp)
		args = append(args, *since)
	}

	// MIN(id) даёт стабильный tie-break по порядку вставки
	query := fmt.Sprintf(`SELECT %s, COUNT(*) AS count FROM %s WHERE %s GROUP BY %s ORDER BY count DESC, MIN(%s) ASC`,
		r.columns.Word,
		r.columns.TableName,
		where,
		r.columns.Word,
		r.columns.ID)

	if err := q.Select(ctx, &breakdown, query, args...); err != nil {
		r.Log.Error("failed to get word breakdown",
			"error", err,
			"user_id", userID,
			"chat_id", chatID)
		return nil, fmt.Errorf("failed to get word breakdown: %w", err)
	}

	return breakdown, nil
}

// DeleteByUser удаляет все записи пары (user, chat). Отсутствие записей - не ошибка.
func (r *Repository) DeleteByUser(ctx context.Context, userID, chatID int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ? AND %s = ?`,
		r.columns.TableName,
		r.columns.UserID,
		r.columns.ChatID)
	rowsAffected, err := r.db.ExecWithResult(ctx, query, userID, chatID)
	if err != nil {
		r.Log.Error("failed to delete user events",
			"error", err,
			"user_id", userID,
			"chat_id", chatID)
		return 0, fmt.Errorf("failed to delete user events: %w", err)
	}

	r.Log.Info("user events deleted",
		"user_id", userID,
		"chat_id", chatID,
		"rows", rowsAffected)
	return rowsAffected, nil
}

// DeleteByChat удаляет все записи чата по всем пользователям
func (r *Repository) DeleteByChat(ctx context.Context, chatID int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`,
		r.columns.TableName,
		r.columns.ChatID)
	rowsAffected, err := r.db.ExecWithResult(ctx, query, chatID)
	if err != nil {
		r.Log.Error("failed to delete chat events",
			"error", err,
			"chat_id", chatID)
		return 0, fmt.Errorf("failed to delete chat events: %w", err)
	}

	r.Log.Info("chat events deleted",
		"chat_id", chatID,
		"rows", rowsAffected)
	return rowsAffected, nil
}

// isConstraintViolation проверяет, что ошибка - нарушение целостности (класс 23 в Postgres)
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}
