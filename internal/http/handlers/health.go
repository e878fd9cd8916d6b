package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	pingDB    PingFunc
	pingRedis PingFunc
}

func NewHealthHandler(pingDB, pingRedis PingFunc) *HealthHandler {
	return &HealthHandler{pingDB: pingDB, pingRedis: pingRedis}
}

func (h *HealthHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports ready only when both backing stores answer a ping.
func (h *HealthHandler) Readyz(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{}
	ready := true

	if h.pingDB != nil {
		if err := h.pingDB(checkCtx); err != nil {
			checks["db"] = "down"
			ready = false
		} else {
			checks["db"] = "up"
		}
	}

	if h.pingRedis != nil {
		if err := h.pingRedis(checkCtx); err != nil {
			checks["redis"] = "down"
			ready = false
		} else {
			checks["redis"] = "up"
		}
	}

	if !ready {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "checks": checks})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready", "checks": checks})
}
