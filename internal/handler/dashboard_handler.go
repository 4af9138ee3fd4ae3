package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/dashboard"
)

const (
	defaultNotificationLimit = 10
	maxNotificationLimit     = 500
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) HandleGetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := h.service.Snapshot(ctx)
	if err != nil {
		h.respondCycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *DashboardHandler) HandleRefresh(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := h.service.RunCycle(ctx)
	if err != nil {
		h.respondCycleError(c, err)
		return
	}

	slog.InfoContext(ctx, "manual refresh",
		slog.String("cycle_id", snapshot.CycleID),
		slog.String("user", c.GetString(gin.AuthUserKey)),
	)
	c.JSON(http.StatusOK, snapshot)
}

func (h *DashboardHandler) HandleNotifications(c *gin.Context) {
	limit := defaultNotificationLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = min(n, maxNotificationLimit)
	}

	log := h.service.State().Notifications()
	entries := log.Recent(limit)
	if entries == nil {
		entries = []domain.NotificationEntry{}
	}

	c.JSON(http.StatusOK, gin.H{
		"enabled":       log.Enabled(),
		"total":         log.Len(),
		"notifications": entries,
	})
}

func (h *DashboardHandler) respondCycleError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		respondError(c, http.StatusServiceUnavailable, "cycle cancelled")
		return
	}

	slog.ErrorContext(ctx, "dashboard cycle failed", slog.String("error", err.Error()))
	respondError(c, http.StatusInternalServerError, "failed to compute dashboard")
}
