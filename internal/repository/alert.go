package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const alertCacheTTL = 5 * time.Minute

type AlertRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewAlertRepository(db *pgxpool.Pool, redisClient *redis.Client) service.AlertRepository {
	return &AlertRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись о заявке, бд присваивает id и created_at
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (requester_id, zone, x, y, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.RequesterID,
		alert.Zone,
		alert.X,
		alert.Y,
		alert.Status,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID возвращает заявку по ее UUID, сначала пробуя кеш Redis
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	if cached, err := r.getAlertFromCache(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	alert := &models.Alert{}
	query := `
		SELECT id, requester_id, responder_id, zone, x, y, status, created_at
		FROM alerts
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&alert.ID,
		&alert.RequesterID,
		&alert.ResponderID,
		&alert.Zone,
		&alert.X,
		&alert.Y,
		&alert.Status,
		&alert.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}

	// кеш - best-effort
	_ = r.setAlertCache(ctx, alert)
	return alert, nil
}

// UpdateStatusAndResponder обновляет статус и назначенного респондента заявки
func (r *AlertRepository) UpdateStatusAndResponder(ctx context.Context, id uuid.UUID, status models.AlertStatus, responderID *uuid.UUID) error {
	query := `
		UPDATE alerts SET
			status = $1,
			responder_id = $2
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, responderID, id)
	if err != nil {
		return fmt.Errorf("failed to update alert status: %w", err)
	}

	// Если RowsAffected() == 0, значит заявки с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s not found for update", id)
	}

	_ = r.invalidateAlertCache(ctx, id)
	return nil
}

// LoadPending возвращает незакрытые заявки (ACTIVE и WAITING) по возрастанию времени создания
func (r *AlertRepository) LoadPending(ctx context.Context) ([]*models.Alert, error) {
	query := `
		SELECT id, requester_id, responder_id, zone, x, y, status, created_at
		FROM alerts
		WHERE status IN ('ACTIVE', 'WAITING')
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.RequesterID,
			&alert.ResponderID,
			&alert.Zone,
			&alert.X,
			&alert.Y,
			&alert.Status,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error pending alerts iteration: %w", err)
	}
	return alerts, nil
}

// AppendStatusHistory добавляет запись истории смены статуса
func (r *AlertRepository) AppendStatusHistory(ctx context.Context, entry *models.StatusHistoryEntry) error {
	query := `
		INSERT INTO alert_status_history (alert_id, prev_status, new_status, responder_id, at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		entry.AlertID,
		entry.PrevStatus,
		entry.NewStatus,
		entry.ResponderID,
		entry.At,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}
	return nil
}

// getAlertFromCache пытается получить заявку из Redis
func (r *AlertRepository) getAlertFromCache(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	key := fmt.Sprintf("alert:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert from cache: %w", err)
	}

	alert := &models.Alert{}
	if err := json.Unmarshal(val, alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert from cache: %w", err)
	}
	return alert, nil
}

// setAlertCache сохраняет заявку в Redis
func (r *AlertRepository) setAlertCache(ctx context.Context, alert *models.Alert) error {
	key := fmt.Sprintf("alert:%s", alert.ID.String())
	val, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, alertCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set alert in cache: %w", err)
	}
	return nil
}

// invalidateAlertCache удаляет заявку из Redis кэша
func (r *AlertRepository) invalidateAlertCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("alert:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate alert cache: %w", err)
	}
	return nil
}
