// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"smart-city/internal/cache"
	"smart-city/internal/config"
	"smart-city/internal/database"
	"smart-city/internal/handler"
	"smart-city/internal/handler/auth"
	"smart-city/internal/handler/house"
	"smart-city/internal/middleware"
)

// Setup registers every route and wires in the shared dependencies.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(cfg)

	api.GET("/ping", handler.PingHandler(db, rdb), requireAuth)

	api.POST("/auth/login", auth.LoginHandler(db, cfg))
	api.POST("/auth/register", auth.RegisterHandler(db, cfg))
	api.GET("/auth/profile", auth.ProfileHandler(db, rdb), requireAuth)
	api.POST("/auth/logout", auth.LogoutHandler(), requireAuth)

	apiHouse := api.Group("/house", requireAuth)
	apiHouse.GET("/:houseId/status", house.StatusHandler(db, rdb))
	apiHouse.POST("/devices/control", house.ControlDeviceHandler(db, rdb))
}
