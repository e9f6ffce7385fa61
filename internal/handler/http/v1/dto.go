package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterUserRequest DTO для регистрации заявителя
// @Description DTO для регистрации заявителя
type RegisterUserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Phone string `json:"phone" validate:"required,min=5,max=32"`
	Zone  string `json:"zone" validate:"required"`
}

// RegisterResponderRequest DTO для регистрации респондента
// @Description DTO для регистрации респондента
type RegisterResponderRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Phone string `json:"phone" validate:"required,min=5,max=32"`
	Zone  string `json:"zone" validate:"required"`
}

// SubmitAlertRequest DTO для подачи заявки
// @Description DTO для подачи заявки
type SubmitAlertRequest struct {
	RequesterID uuid.UUID `json:"requester_id" validate:"required"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Zone      string    `json:"zone"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	CreatedAt time.Time `json:"created_at"`
}

// ResponderResponse DTO для ответа с информацией о респонденте
// @Description DTO для ответа с информацией о респонденте
type ResponderResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Zone      string    `json:"zone"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

// AlertResponse DTO для ответа с информацией о заявке
// @Description DTO для ответа с информацией о заявке
type AlertResponse struct {
	ID          uuid.UUID  `json:"id"`
	RequesterID uuid.UUID  `json:"requester_id"`
	ResponderID *uuid.UUID `json:"responder_id,omitempty"`
	Zone        string     `json:"zone"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// EscalationResponse DTO для ответа с записью об эскалации
// @Description DTO для ответа с записью об эскалации
type EscalationResponse struct {
	AlertID uuid.UUID `json:"alert_id"`
	Zone    string    `json:"zone"`
	Reason  string    `json:"reason"`
	At      time.Time `json:"at"`
}

// AvailabilityResponse DTO для ответа с доступностью по зонам
// @Description DTO для ответа с доступностью по зонам
type AvailabilityResponse struct {
	Zones map[string]ZoneAvailabilityDTO `json:"zones"`
}

// ZoneAvailabilityDTO - счетчики доступности одной зоны
type ZoneAvailabilityDTO struct {
	Available int `json:"available"`
	Total     int `json:"total"`
}
