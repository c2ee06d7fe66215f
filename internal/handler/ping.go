// File: internal/handler/ping.go
package handler

import (
	"errors"
	"net/http"

	"smart-city/internal/cache"
	"smart-city/internal/database"
	"smart-city/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler answers pong after checking both backing stores.
// @Summary     Health Check
// @Description Return pong when Postgres and Redis are reachable
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if err := db.Ping(ctx.Request().Context()); err != nil {
			return ctx.JSON(http.StatusInternalServerError, dto.Fail("database unhealthy"))
		}
		// A missing key still proves the connection works.
		if err := c.Get(ctx.Request().Context(), "ping").Err(); err != nil && !errors.Is(err, redis.Nil) {
			return ctx.JSON(http.StatusInternalServerError, dto.Fail("cache unhealthy"))
		}
		return ctx.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
