package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

type DispatchRepository struct {
	db *pgxpool.Pool
}

func NewDispatchRepository(db *pgxpool.Pool) service.DispatchRepository {
	return &DispatchRepository{db: db}
}

// RecordDispatch открывает запись о паре заявка-респондент
func (r *DispatchRepository) RecordDispatch(ctx context.Context, alertID, responderID uuid.UUID, distanceKm float64) error {
	query := `
		INSERT INTO dispatch_records (alert_id, responder_id, distance_km)
		VALUES ($1, $2, $3);
	`
	if _, err := r.db.Exec(ctx, query, alertID, responderID, distanceKm); err != nil {
		return fmt.Errorf("failed to record dispatch: %w", err)
	}
	return nil
}

// CloseDispatch закрывает открытую запись о назначении отметкой времени завершения
func (r *DispatchRepository) CloseDispatch(ctx context.Context, alertID, responderID uuid.UUID) error {
	query := `
		UPDATE dispatch_records SET
			completed_at = NOW()
		WHERE alert_id = $1 AND responder_id = $2 AND completed_at IS NULL;
	`
	if _, err := r.db.Exec(ctx, query, alertID, responderID); err != nil {
		return fmt.Errorf("failed to close dispatch: %w", err)
	}
	return nil
}

// RecordEscalation добавляет запись об исчерпании зоны (append-only)
func (r *DispatchRepository) RecordEscalation(ctx context.Context, entry *models.EscalationEntry) error {
	query := `
		INSERT INTO escalations (alert_id, zone, reason, at)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		entry.AlertID,
		entry.Zone,
		entry.Reason,
		entry.At,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to record escalation: %w", err)
	}
	return nil
}

// ListEscalations возвращает последние записи об эскалациях
func (r *DispatchRepository) ListEscalations(ctx context.Context, limit int) ([]*models.EscalationEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := `
		SELECT id, alert_id, zone, reason, at
		FROM escalations
		ORDER BY at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list escalations: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.EscalationEntry, 0)
	for rows.Next() {
		entry := &models.EscalationEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.AlertID,
			&entry.Zone,
			&entry.Reason,
			&entry.At,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan escalation row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error escalations iteration: %w", err)
	}
	return entries, nil
}
