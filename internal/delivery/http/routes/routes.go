package routes

import (
	"log"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
}

func NewRegistry() *Registry {
	return &Registry{health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App, cfg config.Config, db database.DB, cacheStore *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app, cfg, db, cacheStore, hub, logger)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App, cfg config.Config, db database.DB, cacheStore *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), cfg, db, cacheStore, hub, logger)
}
