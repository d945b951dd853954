package services

import "errors"

// Errors shared by more than one service.
var (
	// ErrInvalidBloodType is returned when a supplied blood type is not one
	// of the canonical ABO/Rh types.
	ErrInvalidBloodType = errors.New("invalid blood type")
)
