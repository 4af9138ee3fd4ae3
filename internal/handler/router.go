package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/config"
)

type Handlers struct {
	Dashboard *DashboardHandler
	Settings  *SettingsHandler
	Map       *MapHandler
	Info      *InfoHandler
}

// RegisterRoutes mounts the authenticated API under /api/v1.
func RegisterRoutes(router gin.IRouter, auth *config.AuthConfig, h Handlers) {
	v1 := router.Group("/api/v1")
	v1.Use(BasicAuth(auth))
	{
		v1.GET("/info", h.Info.HandleInfo)
		v1.GET("/dashboard", h.Dashboard.HandleGetDashboard)
		v1.POST("/dashboard/refresh", h.Dashboard.HandleRefresh)
		v1.GET("/notifications", h.Dashboard.HandleNotifications)
		v1.GET("/map", h.Map.HandleGetMap)
		v1.GET("/map/image", h.Map.HandleImage)
		v1.GET("/map/render", h.Map.HandleRender)
		v1.GET("/settings", h.Settings.HandleGet)
		v1.PATCH("/settings", RequireRole(config.RoleAdmin), h.Settings.HandlePatch)
	}
}
