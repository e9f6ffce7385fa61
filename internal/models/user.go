package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей системы
const (
	RoleRequester = "requester"
	RoleResponder = "responder"
	RoleAdmin     = "admin"
)

// User - плоская запись участника системы с тегом роли
// (без иерархии наследования: общие поля + роль)
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Zone      string    `json:"zone"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	CreatedAt time.Time `json:"created_at"`
}
