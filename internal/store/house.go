package store

import (
	"context"
	"fmt"

	"smart-city/internal/model"

	"github.com/google/uuid"
)

func GetActiveHouseByID(ctx context.Context, db Querier, houseID uuid.UUID) (*model.House, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, address, is_active, created_at
		 FROM houses WHERE id = $1 AND is_active`,
		houseID,
	)
	h := &model.House{}
	if err := row.Scan(&h.ID, &h.Name, &h.Address, &h.IsActive, &h.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetActiveHouseByID: %w", err)
	}
	return h, nil
}

const deviceColumns = `id, house_id, name, type, location, is_online, is_on, status, properties, created_at`

func scanDevice(row interface{ Scan(dest ...any) error }) (*model.Device, error) {
	d := &model.Device{}
	err := row.Scan(
		&d.ID,
		&d.HouseID,
		&d.Name,
		&d.Type,
		&d.Location,
		&d.IsOnline,
		&d.IsOn,
		&d.Status,
		&d.Properties,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func ListDevicesByHouse(ctx context.Context, db Querier, houseID uuid.UUID) ([]model.Device, error) {
	rows, err := db.Query(ctx,
		`SELECT `+deviceColumns+`
		 FROM devices WHERE house_id = $1 ORDER BY created_at`,
		houseID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListDevicesByHouse: %w", err)
	}
	defer rows.Close()

	var devices []model.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("ListDevicesByHouse: %w", err)
		}
		devices = append(devices, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListDevicesByHouse: %w", err)
	}
	return devices, nil
}

func GetDeviceByID(ctx context.Context, db Querier, deviceID uuid.UUID) (*model.Device, error) {
	row := db.QueryRow(ctx,
		`SELECT `+deviceColumns+`
		 FROM devices WHERE id = $1`,
		deviceID,
	)
	d, err := scanDevice(row)
	if err != nil {
		return nil, fmt.Errorf("GetDeviceByID: %w", err)
	}
	return d, nil
}

// UpdateDeviceState persists the switchable part of a device: on/off, the
// status label and the merged properties.
func UpdateDeviceState(ctx context.Context, db Querier, d *model.Device) error {
	_, err := db.Exec(ctx,
		`UPDATE devices SET is_on = $1, status = $2, properties = $3
		 WHERE id = $4`,
		d.IsOn,
		d.Status,
		d.Properties,
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateDeviceState: %w", err)
	}
	return nil
}
