package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchRecord - запись об одной паре заявка-респондент
type DispatchRecord struct {
	ID          int64      `json:"id"`
	AlertID     uuid.UUID  `json:"alert_id"`
	ResponderID uuid.UUID  `json:"responder_id"`
	DistanceKm  float64    `json:"distance_km"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// StatusHistoryEntry - запись истории смены статуса заявки
type StatusHistoryEntry struct {
	ID          int64       `json:"id"`
	AlertID     uuid.UUID   `json:"alert_id"`
	PrevStatus  AlertStatus `json:"prev_status"`
	NewStatus   AlertStatus `json:"new_status"`
	ResponderID *uuid.UUID  `json:"responder_id,omitempty"`
	At          time.Time   `json:"at"`
}

// EscalationEntry - запись об исчерпании зоны: свободный респондент не найден
type EscalationEntry struct {
	ID      int64     `json:"id"`
	AlertID uuid.UUID `json:"alert_id"`
	Zone    string    `json:"zone"`
	Reason  string    `json:"reason"`
	At      time.Time `json:"at"`
}
