package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("already exists")
	ErrNoRateCard         = errors.New("no pricing rule for destination and service type")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
