// File: internal/service/house.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"smart-city/internal/cache"
	"smart-city/internal/database"
	"smart-city/internal/dto"
	"smart-city/internal/model"
	"smart-city/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const houseStatusCacheTTL = 30 * time.Second

func houseStatusCacheKey(houseID uuid.UUID) string {
	return fmt.Sprintf("house:%s:status", houseID)
}

// GetHouseStatus returns an active house with all its devices, read through
// the cache when one is wired in.
func GetHouseStatus(ctx context.Context, db database.DB, c cache.Cache, houseID uuid.UUID) (*dto.HouseStatusResponse, error) {
	key := houseStatusCacheKey(houseID)
	if c != nil {
		if cached, err := c.Get(ctx, key).Result(); err == nil {
			resp := &dto.HouseStatusResponse{}
			if err := json.Unmarshal([]byte(cached), resp); err == nil {
				return resp, nil
			}
		}
	}

	house, err := store.GetActiveHouseByID(ctx, db, houseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}

	devices, err := store.ListDevicesByHouse(ctx, db, houseID)
	if err != nil {
		return nil, err
	}

	resp := &dto.HouseStatusResponse{
		ID:       house.ID,
		Name:     house.Name,
		Address:  house.Address,
		IsActive: house.IsActive,
		Devices:  make([]dto.DeviceStatusResponse, 0, len(devices)),
	}
	for _, d := range devices {
		resp.Devices = append(resp.Devices, deviceStatus(&d))
	}

	if c != nil {
		if data, err := json.Marshal(resp); err == nil {
			c.Set(ctx, key, data, houseStatusCacheTTL)
		}
	}
	return resp, nil
}

// ControlDevice flips a device on or off and merges any extra properties.
// The house status cache entry is dropped so the next read sees the change.
func ControlDevice(ctx context.Context, db database.DB, c cache.Cache, req dto.ControlDeviceRequest) (*dto.DeviceStatusResponse, error) {
	device, err := store.GetDeviceByID(ctx, db, req.DeviceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	if !device.IsOnline {
		return nil, ErrDeviceOffline
	}

	device.IsOn = req.TurnOn
	if req.TurnOn {
		device.Status = "On"
	} else {
		device.Status = "Off"
	}
	if req.Properties != nil {
		if device.Properties == nil {
			device.Properties = map[string]any{}
		}
		for k, v := range req.Properties {
			device.Properties[k] = v
		}
	}

	if err := store.UpdateDeviceState(ctx, db, device); err != nil {
		return nil, err
	}

	if c != nil {
		c.Del(ctx, houseStatusCacheKey(device.HouseID))
	}

	resp := deviceStatus(device)
	return &resp, nil
}

func deviceStatus(d *model.Device) dto.DeviceStatusResponse {
	return dto.DeviceStatusResponse{
		ID:         d.ID,
		HouseID:    d.HouseID,
		Name:       d.Name,
		Type:       d.Type,
		Location:   d.Location,
		IsOnline:   d.IsOnline,
		IsOn:       d.IsOn,
		Status:     d.Status,
		Properties: d.Properties,
	}
}
