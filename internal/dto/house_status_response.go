// File: internal/dto/house_status_response.go
package dto

import "github.com/google/uuid"

// swagger:model dto.DeviceStatusResponse
type DeviceStatusResponse struct {
	ID         uuid.UUID      `json:"id"`
	HouseID    uuid.UUID      `json:"houseId"`
	Name       string         `json:"name" example:"Living room lamp"`
	Type       string         `json:"type" example:"Light"`
	Location   string         `json:"location" example:"Living room"`
	IsOnline   bool           `json:"isOnline" example:"true"`
	IsOn       bool           `json:"isOn" example:"false"`
	Status     string         `json:"status" example:"Off"`
	Properties map[string]any `json:"properties"`
}

// swagger:model dto.HouseStatusResponse
type HouseStatusResponse struct {
	ID       uuid.UUID              `json:"id"`
	Name     string                 `json:"name" example:"Main residence"`
	Address  string                 `json:"address" example:"1 City Sq"`
	IsActive bool                   `json:"isActive" example:"true"`
	Devices  []DeviceStatusResponse `json:"devices"`
}
