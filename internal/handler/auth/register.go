// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"smart-city/internal/config"
	"smart-city/internal/database"
	"smart-city/internal/dto"
	"smart-city/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler creates a user and logs it straight in; the response shape
// is identical to login's.
// @Summary     Register
// @Description Create an account and return a fresh session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.RegisterRequest true "New account"
// @Success     200 {object} dto.Response{data=dto.AuthResponse}
// @Failure     400 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		}

		resp, err := service.Register(c.Request().Context(), db, cfg, req)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUserExists):
				// One message for both collisions; which field collided is not revealed.
				return c.JSON(http.StatusBadRequest, dto.Fail("User with this email or username already exists"))
			case errors.Is(err, service.ErrInvalidCredentials):
				return c.JSON(http.StatusBadRequest, dto.Fail("Invalid email or password"))
			default:
				return c.JSON(http.StatusInternalServerError, dto.Fail("registration failed"))
			}
		}
		return c.JSON(http.StatusOK, dto.OK("Login successful", resp))
	}
}
