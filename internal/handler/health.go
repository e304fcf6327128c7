package handler

import (
	"net/http"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/infra"
	"github.com/FernandoPZ/POS-AuraCreativa/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db     *gorm.DB
	rdb    *redis.Client
	mailer *infra.Mailer
	hub    *ws.Hub
}

func NewHealthHandler(db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer, hub *ws.Hub) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb, mailer: mailer, hub: hub}
}

// Check reports the state of every dependency. Always 200 — consumers read
// the per-component status.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	dbStatus := "ok"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		dbStatus = "down"
	}

	redisStatus := "ok"
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		redisStatus = "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"database":   dbStatus,
		"redis":      redisStatus,
		"smtp":       h.mailer.Estado(),
		"terminales": h.hub.Conexiones(),
	})
}
