package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var started = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func New(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

// Health pings the database with a short deadline so a wedged SQLite file
// cannot hang the probe.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbErr := ""
	if sqlDB, err := h.db.DB(); err != nil {
		dbErr = err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbErr = err.Error()
	}

	status := http.StatusOK
	if dbErr != "" {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"ok":         dbErr == "",
		"database":   map[string]any{"ok": dbErr == "", "err": dbErr},
		"uptime_sec": int(time.Since(started).Seconds()),
		"time":       time.Now().Format(time.RFC3339),
	})
}
