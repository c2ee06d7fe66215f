// File: internal/handler/auth/profile.go
package auth

import (
	"errors"
	"net/http"

	"smart-city/internal/cache"
	"smart-city/internal/database"
	"smart-city/internal/dto"
	"smart-city/internal/middleware"
	"smart-city/internal/service"

	"github.com/labstack/echo/v4"
)

// ProfileHandler returns the calling user's public profile.
// @Summary     Get profile
// @Description Return the profile of the user identified by the token subject
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.Response{data=dto.ProfileResponse}
// @Failure     401 {object} dto.Response
// @Failure     404 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /auth/profile [get]
func ProfileHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims, ok := ctx.Get(middleware.ContextUserKey).(*service.Claims)
		if !ok || claims == nil {
			return ctx.JSON(http.StatusUnauthorized, dto.Fail("invalid or missing token"))
		}
		userID, err := claims.UserID()
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, dto.Fail("invalid subject claim"))
		}

		resp, err := service.GetProfile(ctx.Request().Context(), db, c, userID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return ctx.JSON(http.StatusNotFound, dto.Fail("User not found"))
			}
			return ctx.JSON(http.StatusInternalServerError, dto.Fail("failed to load profile"))
		}
		return ctx.JSON(http.StatusOK, dto.OK("", resp))
	}
}
