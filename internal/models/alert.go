package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertStatus - статус заявки в жизненном цикле
type AlertStatus string

const (
	StatusActive   AlertStatus = "ACTIVE"
	StatusAssigned AlertStatus = "ASSIGNED"
	StatusWaiting  AlertStatus = "WAITING"
	StatusResolved AlertStatus = "RESOLVED"
)

// Alert представляет экстренную заявку, поданную заявителем
type Alert struct {
	ID          uuid.UUID   `json:"id"`
	RequesterID uuid.UUID   `json:"requester_id"`
	ResponderID *uuid.UUID  `json:"responder_id,omitempty"`
	Zone        string      `json:"zone"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Status      AlertStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}
