package domain

import "errors"

var (
	ErrCancelled       = errors.New("cancelled by user")
	ErrInvalidName     = errors.New("invalid session name")
	ErrNoSessions      = errors.New("no saved sessions")
	ErrSessionExists   = errors.New("session already exists")
	ErrSessionNotFound = errors.New("session not found")
)
