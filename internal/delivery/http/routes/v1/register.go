package v1

import (
	"log"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/pkg/jwt"
	"skillswap/internal/repository"
	"skillswap/internal/usecase"
	"skillswap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cacheStore *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	connectionRepo := repository.NewPostgresConnectionRepository(db)

	notifier := ws.NewNotifier(hub)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	catalogUC := usecase.NewCatalogUsecase(skillRepo, cacheStore)
	profileUC := usecase.NewProfileUsecase(profileRepo, skillRepo)
	matchUC := usecase.NewMatchUsecase(profileRepo, skillRepo)
	connectionUC := usecase.NewConnectionUsecase(connectionRepo, profileRepo, skillRepo, notifier)

	authHandler := handler.NewAuthHandler(authUC)
	skillHandler := handler.NewSkillHandler(catalogUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	connectionHandler := handler.NewConnectionHandler(connectionUC)
	wsHandler := ws.NewHandler(hub, jwtSvc, logger)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	r.Get("/ws/notifications", wsHandler.HandleNotifications)

	protected := r.Group("", authMw.Middleware())

	skillHandler.RegisterRoutes(protected)
	profileHandler.RegisterRoutes(protected)
	matchHandler.RegisterRoutes(protected)
	connectionHandler.RegisterRoutes(protected)
}
