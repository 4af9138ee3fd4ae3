package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/config"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/dashboard"
)

type settingsResponse struct {
	NotificationsEnabled   bool `json:"notifications_enabled"`
	Freeze                 bool `json:"freeze"`
	AutoRefresh            bool `json:"auto_refresh"`
	RefreshIntervalSeconds int  `json:"refresh_interval_seconds"`
	MinIntervalSeconds     int  `json:"min_refresh_interval_seconds"`
	MaxIntervalSeconds     int  `json:"max_refresh_interval_seconds"`
}

type settingsRequest struct {
	NotificationsEnabled   *bool `json:"notifications_enabled"`
	Freeze                 *bool `json:"freeze"`
	AutoRefresh            *bool `json:"auto_refresh"`
	RefreshIntervalSeconds *int  `json:"refresh_interval_seconds"`
}

type SettingsHandler struct {
	state *dashboard.State
}

func NewSettingsHandler(state *dashboard.State) *SettingsHandler {
	return &SettingsHandler{state: state}
}

func (h *SettingsHandler) HandleGet(c *gin.Context) {
	c.JSON(http.StatusOK, toSettingsResponse(h.state.Settings()))
}

func (h *SettingsHandler) HandlePatch(c *gin.Context) {
	ctx := c.Request.Context()

	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid settings payload")
		return
	}

	update := dashboard.SettingsUpdate{
		NotificationsEnabled: req.NotificationsEnabled,
		Freeze:               req.Freeze,
		AutoRefresh:          req.AutoRefresh,
	}
	if req.RefreshIntervalSeconds != nil {
		if *req.RefreshIntervalSeconds <= 0 {
			respondError(c, http.StatusBadRequest, "refresh_interval_seconds must be positive")
			return
		}
		interval := time.Duration(*req.RefreshIntervalSeconds) * time.Second
		update.RefreshInterval = &interval
	}

	settings := h.state.UpdateSettings(update)

	slog.InfoContext(ctx, "settings updated",
		slog.String("user", c.GetString(gin.AuthUserKey)),
		slog.Bool("notifications_enabled", settings.NotificationsEnabled),
		slog.Bool("freeze", settings.Freeze),
		slog.Bool("auto_refresh", settings.AutoRefresh),
		slog.Int("refresh_interval_seconds", settings.RefreshIntervalSeconds()),
	)

	c.JSON(http.StatusOK, toSettingsResponse(settings))
}

func toSettingsResponse(s dashboard.Settings) settingsResponse {
	return settingsResponse{
		NotificationsEnabled:   s.NotificationsEnabled,
		Freeze:                 s.Freeze,
		AutoRefresh:            s.AutoRefresh,
		RefreshIntervalSeconds: s.RefreshIntervalSeconds(),
		MinIntervalSeconds:     int(config.MinRefreshInterval / time.Second),
		MaxIntervalSeconds:     int(config.MaxRefreshInterval / time.Second),
	}
}
