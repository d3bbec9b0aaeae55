package usecase

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionNotFound = errors.New("session not found")
	ErrConflict        = errors.New("conflict")
	ErrInternal        = errors.New("internal error")
)
