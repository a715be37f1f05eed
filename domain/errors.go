package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")
	ErrInvalidAddress      = errors.New("Invalid address")

	// quote errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidPrice        = errors.New("price must be positive")
	ErrInsufficientBalance = errors.New("insufficient token balance")
	ErrInvalidPeriod       = errors.New("invalid history period")
	ErrInvalidResolution   = errors.New("invalid history resolution")
)
