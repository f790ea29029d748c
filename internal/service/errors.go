package service

import "errors"

var (
	ErrTextRequired  = errors.New("text is required")
	ErrNotConfigured = errors.New("API key not configured")
)
