package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/infra/mapimage"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/dashboard"
)

type MapHandler struct {
	service *dashboard.Service
	image   *mapimage.Map
}

func NewMapHandler(service *dashboard.Service, image *mapimage.Map) *MapHandler {
	return &MapHandler{
		service: service,
		image:   image,
	}
}

func (h *MapHandler) HandleGetMap(c *gin.Context) {
	snapshot, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to compute map")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"width":    snapshot.MapWidth,
		"height":   snapshot.MapHeight,
		"status":   snapshot.Status,
		"markers":  snapshot.Markers,
		"warnings": snapshot.Warnings,
	})
}

func (h *MapHandler) HandleImage(c *gin.Context) {
	c.Data(http.StatusOK, h.image.ContentType(), h.image.Bytes())
}

// HandleRender draws the latest markers onto the map image.
func (h *MapHandler) HandleRender(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := h.service.Snapshot(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to compute map")
		return
	}

	png, err := h.image.Render(snapshot.Markers)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render map", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "failed to render map")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
