package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	AppName    string
	AppVersion string
}

func NewHealthHandler(appName, appVersion string) *HealthHandler {
	return &HealthHandler{AppName: appName, AppVersion: appVersion}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"app":     h.AppName,
		"version": h.AppVersion,
	})
}
