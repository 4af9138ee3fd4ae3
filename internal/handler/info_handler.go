package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	AppName    = "Campus Crowd Dashboard"
	AppTagline = "Live crowd density across campus zones"
)

type InfoHandler struct {
	version string
}

func NewInfoHandler(version string) *InfoHandler {
	return &InfoHandler{version: version}
}

func (h *InfoHandler) HandleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    AppName,
		"tagline": AppTagline,
		"version": h.version,
	})
}
