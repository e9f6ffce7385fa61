package models

import (
	"time"

	"github.com/google/uuid"
)

// Responder представляет выездного респондента.
// Флаг Available - единственный источник истины о возможности назначения,
// его меняет только диспетчер.
type Responder struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Zone      string    `json:"zone"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}
