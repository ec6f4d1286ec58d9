package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/utils"
)

const defaultTransitionsLimit = 50

// SQL-запросы для работы с журналом переходов
const (
	InsertTransitionQuery = `
		INSERT INTO
			order_transitions (id, order_id, from_status, to_status, outcome, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	SelectTransitionsQuery = `
		SELECT
			id,
			order_id,
			from_status,
			to_status,
			outcome,
			error,
			created_at
		FROM
			order_transitions
		WHERE
			$1 = '' OR order_id = $1
		ORDER BY
			created_at DESC
		LIMIT $2
	`
)

// CreateTransition сохраняет исход перехода. Повторная запись с тем же id игнорируется.
func (d *Database) CreateTransition(ctx context.Context, record models.TransitionRecord) error {
	_, err := d.db.Exec(ctx, InsertTransitionQuery,
		record.ID,
		record.OrderID,
		string(record.From),
		string(record.To),
		string(record.Outcome),
		record.Error,
		record.CreatedAt.Time,
	)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			logger.Log.Debug("transition already recorded", zap.String("id", record.ID))
			return nil
		}
		return fmt.Errorf("ошибка записи перехода: %w", err)
	}

	return nil
}

// FindTransitions возвращает последние переходы, новые первыми.
// Пустой orderID означает все заказы; limit <= 0 заменяется значением по умолчанию.
func (d *Database) FindTransitions(ctx context.Context, orderID string, limit int) ([]models.TransitionRecord, error) {
	if limit <= 0 {
		limit = defaultTransitionsLimit
	}

	rows, err := d.db.Query(ctx, SelectTransitionsQuery, orderID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска переходов: %w", err)
	}
	defer rows.Close()

	result := []models.TransitionRecord{}
	for rows.Next() {
		var (
			item              models.TransitionRecord
			from, to, outcome string
			createdAt         time.Time
		)
		if err := rows.Scan(&item.ID, &item.OrderID, &from, &to, &outcome, &item.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки журнала: %w", err)
		}

		item.From = models.OrderStatus(from)
		item.To = models.OrderStatus(to)
		item.Outcome = models.TransitionOutcome(outcome)
		item.CreatedAt = utils.RFC3339Date{Time: createdAt}
		result = append(result, item)
	}

	// Проверка на ошибки при итерации по строкам
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}
