package v1

import (
	"github.com/shenikar/emergency_dispatch_system/internal/directory"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// DTOToUserModel преобразует DTO регистрации в доменную модель пользователя
func DTOToUserModel(dto RegisterUserRequest) *models.User {
	return &models.User{
		Name:  dto.Name,
		Phone: dto.Phone,
		Zone:  dto.Zone,
		Role:  models.RoleRequester,
	}
}

// DTOToResponderModel преобразует DTO регистрации в доменную модель респондента
func DTOToResponderModel(dto RegisterResponderRequest) *models.Responder {
	return &models.Responder{
		Name:  dto.Name,
		Phone: dto.Phone,
		Zone:  dto.Zone,
	}
}

// ModelToUserResponse преобразует доменную модель пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		Role:      model.Role,
		Zone:      model.Zone,
		X:         model.X,
		Y:         model.Y,
		CreatedAt: model.CreatedAt,
	}
}

// ModelToResponderResponse преобразует доменную модель респондента в DTO для ответа
func ModelToResponderResponse(model *models.Responder) *ResponderResponse {
	return &ResponderResponse{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		Zone:      model.Zone,
		X:         model.X,
		Y:         model.Y,
		Available: model.Available,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToResponderResponses преобразует слайс моделей в слайс DTO
func ModelsToResponderResponses(models []*models.Responder) []*ResponderResponse {
	responses := make([]*ResponderResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToResponderResponse(model)
	}
	return responses
}

// ModelToAlertResponse преобразует доменную модель заявки в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:          model.ID,
		RequesterID: model.RequesterID,
		ResponderID: model.ResponderID,
		Zone:        model.Zone,
		Status:      string(model.Status),
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

// ModelsToEscalationResponses преобразует слайс записей об эскалациях в слайс DTO
func ModelsToEscalationResponses(models []*models.EscalationEntry) []*EscalationResponse {
	responses := make([]*EscalationResponse, len(models))
	for i, model := range models {
		responses[i] = &EscalationResponse{
			AlertID: model.AlertID,
			Zone:    model.Zone,
			Reason:  model.Reason,
			At:      model.At,
		}
	}
	return responses
}

// SnapshotToAvailabilityResponse преобразует срез каталога в DTO для ответа
func SnapshotToAvailabilityResponse(snapshot map[string]directory.ZoneAvailability) *AvailabilityResponse {
	resp := &AvailabilityResponse{Zones: make(map[string]ZoneAvailabilityDTO, len(snapshot))}
	for zone, za := range snapshot {
		resp.Zones[zone] = ZoneAvailabilityDTO{
			Available: za.Available,
			Total:     za.Total,
		}
	}
	return resp
}
