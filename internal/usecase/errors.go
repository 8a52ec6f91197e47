package usecase

import "errors"

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidBooking = errors.New("invalid booking payload")
)
