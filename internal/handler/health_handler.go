package handler

import (
	"context"
	"time"

	"mathdrill/internal/domain"
	"mathdrill/internal/dto"
	"mathdrill/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is implemented by *sqlx.DB and *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports database and cache reachability
type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

// NewHealthHandler creates a HealthHandler. cache may be nil when caching is disabled.
func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Check answers 503 only when the database is down. A failing cache
// reports "degraded" because topic reads still work without it.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   dto.HealthOK,
		Database: dto.ComponentUp,
		Cache:    dto.ComponentDisabled,
	}

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Error("Health check: database unreachable", zap.Error(err))
		resp.Database = dto.ComponentDown
		resp.Status = dto.HealthUnavailable
	}

	if h.cache != nil {
		resp.Cache = dto.ComponentUp
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Health check: cache unreachable", zap.Error(err))
			resp.Cache = dto.ComponentDown
			if resp.Status == dto.HealthOK {
				resp.Status = dto.HealthDegraded
			}
		}
	}

	status := fiber.StatusOK
	if resp.Status == dto.HealthUnavailable {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}
