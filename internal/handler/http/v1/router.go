package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/usher_checkin/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	// Залы и поиск ближайшего
	venues := protected.Group("/venues")
	{
		venues.GET("", h.listVenues)
		venues.POST("/nearest", h.nearestVenue)
	}

	// Отметки присутствия
	checkins := protected.Group("/checkins")
	{
		checkins.POST("", h.createCheckIn)
		checkins.GET("", h.listCheckIns)
		checkins.GET("/stats", h.getStats)
	}

	// Сессии предупреждений безопасности
	sessions := protected.Group("/advisory/sessions")
	{
		sessions.POST("", h.startSession)
		sessions.GET("/:id", h.getSession)
		sessions.DELETE("/:id", h.endSession)
		sessions.POST("/:id/location/recheck", h.recheckLocation)
		sessions.POST("/:id/location/dismiss", h.dismiss(models.AdvisoryLocation))
		sessions.POST("/:id/device/acknowledge", h.acknowledgeDevice)
		sessions.POST("/:id/device/dismiss", h.dismiss(models.AdvisoryDevice))
	}

	// Идентификаторы устройств
	devices := protected.Group("/devices")
	{
		devices.GET("/:client_key", h.getDevice)
		devices.DELETE("/:client_key", h.resetDevice)
	}
}
