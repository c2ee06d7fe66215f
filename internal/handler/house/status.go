// File: internal/handler/house/status.go
package house

import (
	"errors"
	"net/http"

	"smart-city/internal/cache"
	"smart-city/internal/database"
	"smart-city/internal/dto"
	"smart-city/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StatusHandler returns a house and the state of all its devices.
// @Summary     House status
// @Description Return the house with the current state of every device
// @Tags        house
// @Produce     json
// @Param       houseId path string true "House ID"
// @Success     200 {object} dto.Response{data=dto.HouseStatusResponse}
// @Failure     400 {object} dto.Response
// @Failure     404 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /house/{houseId}/status [get]
func StatusHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		houseID, err := uuid.Parse(ctx.Param("houseId"))
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, dto.Fail("invalid house id"))
		}

		resp, err := service.GetHouseStatus(ctx.Request().Context(), db, c, houseID)
		if err != nil {
			if errors.Is(err, service.ErrHouseNotFound) {
				return ctx.JSON(http.StatusNotFound, dto.Fail("House not found"))
			}
			return ctx.JSON(http.StatusInternalServerError, dto.Fail("failed to load house status"))
		}
		return ctx.JSON(http.StatusOK, dto.OK("", resp))
	}
}
