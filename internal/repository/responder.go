package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

type ResponderRepository struct {
	db *pgxpool.Pool
}

func NewResponderRepository(db *pgxpool.Pool) service.ResponderRepository {
	return &ResponderRepository{db: db}
}

// Create создает новую запись о респонденте в бд
func (r *ResponderRepository) Create(ctx context.Context, responder *models.Responder) error {
	query := `
		INSERT INTO responders (name, phone, zone, x, y, available)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		responder.Name,
		responder.Phone,
		responder.Zone,
		responder.X,
		responder.Y,
		responder.Available,
	).Scan(&responder.ID, &responder.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create responder: %w", err)
	}
	return nil
}

// GetByID возвращает респондента по его UUID
func (r *ResponderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Responder, error) {
	responder := &models.Responder{}
	query := `
		SELECT id, name, phone, zone, x, y, available, created_at
		FROM responders
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&responder.ID,
		&responder.Name,
		&responder.Phone,
		&responder.Zone,
		&responder.X,
		&responder.Y,
		&responder.Available,
		&responder.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("responder with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get responder by id: %w", err)
	}
	return responder, nil
}

// SetAvailability выставляет флаг доступности респондента
func (r *ResponderRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `
		UPDATE responders SET
			available = $1
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, available, id)
	if err != nil {
		return fmt.Errorf("failed to set responder availability: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("responder with id %s not found for availability update", id)
	}
	return nil
}

// FindAvailableInZone возвращает свободного респондента зоны, исключая excludeID.
// Отсутствие свободных - не ошибка: возвращается (nil, nil).
func (r *ResponderRepository) FindAvailableInZone(ctx context.Context, zone string, excludeID *uuid.UUID) (*models.Responder, error) {
	responder := &models.Responder{}
	query := `
		SELECT id, name, phone, zone, x, y, available, created_at
		FROM responders
		WHERE zone = $1
			AND available = TRUE
			AND ($2::uuid IS NULL OR id <> $2)
		ORDER BY created_at ASC
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, zone, excludeID).Scan(
		&responder.ID,
		&responder.Name,
		&responder.Phone,
		&responder.Zone,
		&responder.X,
		&responder.Y,
		&responder.Available,
		&responder.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find available responder in zone: %w", err)
	}
	return responder, nil
}

// ListByZone возвращает всех респондентов зоны
func (r *ResponderRepository) ListByZone(ctx context.Context, zone string) ([]*models.Responder, error) {
	query := `
		SELECT id, name, phone, zone, x, y, available, created_at
		FROM responders
		WHERE zone = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, zone)
	if err != nil {
		return nil, fmt.Errorf("failed to list responders by zone: %w", err)
	}
	defer rows.Close()

	responders := make([]*models.Responder, 0)
	for rows.Next() {
		responder := &models.Responder{}
		err := rows.Scan(
			&responder.ID,
			&responder.Name,
			&responder.Phone,
			&responder.Zone,
			&responder.X,
			&responder.Y,
			&responder.Available,
			&responder.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		responders = append(responders, responder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error responders iteration: %w", err)
	}
	return responders, nil
}
