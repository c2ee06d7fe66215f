// File: internal/handler/auth/login.go
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

// LoginHandler verifies email/password and issues a session.
// @Summary     Log in
// @Description Verify credentials, persist a session and return the token pair
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.LoginRequest true "Credentials"
// @Success     200 {object} dto.Response{data=dto.AuthResponse}
// @Failure     400 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Router      /auth/login [post]
func LoginHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		}

		resp, err := service.Login(c.Request().Context(), db, cfg, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return c.JSON(http.StatusBadRequest, dto.Fail("Invalid email or password"))
			}
			return c.JSON(http.StatusInternalServerError, dto.Fail("login failed"))
		}
		return c.JSON(http.StatusOK, dto.OK("Login successful", resp))
	}
}
