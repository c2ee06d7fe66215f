// File: internal/dto/control_device_request.go
package dto

import "github.com/google/uuid"

// swagger:model dto.ControlDeviceRequest
type ControlDeviceRequest struct {
	DeviceID   uuid.UUID      `json:"deviceId" validate:"required" example:"9f0a1b2c-3d4e-4f6c-9f0a-6d9a1b2c3d4e"`
	TurnOn     bool           `json:"turnOn" example:"true"`
	Properties map[string]any `json:"properties,omitempty"`
}
