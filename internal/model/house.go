// File: internal/model/house.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type House struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Device struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	HouseID    uuid.UUID      `db:"house_id" json:"house_id"`
	Name       string         `db:"name" json:"name"`
	Type       string         `db:"type" json:"type"`
	Location   string         `db:"location" json:"location"`
	IsOnline   bool           `db:"is_online" json:"is_online"`
	IsOn       bool           `db:"is_on" json:"is_on"`
	Status     string         `db:"status" json:"status"`
	Properties map[string]any `db:"properties" json:"properties"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}
