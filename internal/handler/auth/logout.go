// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"smart-city/internal/dto"

	"github.com/labstack/echo/v4"
)

// LogoutHandler acknowledges logout. No server-side invalidation happens:
// the session row stays until it expires. Designed-but-incomplete, kept
// as-is until revocation requirements are settled.
// @Summary     Log out
// @Description Acknowledge logout; tokens remain valid until expiry
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.OK("Logged out successfully", nil))
	}
}
