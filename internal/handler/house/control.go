// File: internal/handler/house/control.go
package house

import (
	"errors"
	"net/http"

	"smart-city/internal/cache"
	"smart-city/internal/database"
	"smart-city/internal/dto"
	"smart-city/internal/service"

	"github.com/labstack/echo/v4"
)

// ControlDeviceHandler switches a device on or off.
// @Summary     Control a device
// @Description Turn a device on/off and merge optional properties
// @Tags        house
// @Accept      json
// @Produce     json
// @Param       request body dto.ControlDeviceRequest true "Device command"
// @Success     200 {object} dto.Response{data=dto.DeviceStatusResponse}
// @Failure     400 {object} dto.Response
// @Failure     404 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /house/devices/control [post]
func ControlDeviceHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req dto.ControlDeviceRequest
		if err := ctx.Bind(&req); err != nil {
			return ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request payload"))
		}
		if err := ctx.Validate(&req); err != nil {
			return ctx.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		}

		resp, err := service.ControlDevice(ctx.Request().Context(), db, c, req)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrDeviceNotFound):
				return ctx.JSON(http.StatusNotFound, dto.Fail("Device not found"))
			case errors.Is(err, service.ErrDeviceOffline):
				return ctx.JSON(http.StatusBadRequest, dto.Fail("Device is offline"))
			default:
				return ctx.JSON(http.StatusInternalServerError, dto.Fail("failed to control device"))
			}
		}
		return ctx.JSON(http.StatusOK, dto.OK("Device controlled successfully", resp))
	}
}
