package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check без аутентификации
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Регистрация участников
	protected.POST("/users", h.registerUser)
	protected.POST("/responders", h.registerResponder)
	protected.GET("/responders", h.listResponders)

	// Жизненный цикл заявок
	alerts := protected.Group("/alerts")
	{
		alerts.POST("", h.submitAlert)
		alerts.GET("/pending", h.listPendingAlerts)
		alerts.POST("/:id/complete", h.completeAlert)
	}

	// Диагностика
	protected.GET("/escalations", h.listEscalations)
	protected.GET("/availability", h.getAvailability)
}
