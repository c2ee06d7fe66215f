// File: internal/service/errors.go
package service

import "errors"

// Sentinel errors the handlers translate into HTTP envelopes. Invalid email
// and invalid password are deliberately the same error so callers cannot
// probe for account existence.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrHouseNotFound      = errors.New("house not found")
	ErrDeviceNotFound     = errors.New("device not found")
	ErrDeviceOffline      = errors.New("device is offline")
)
