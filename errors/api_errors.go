package errors

import "errors"

var (
	ErrCharacterNotFound    = errors.New("character not found")
	ErrInvalidCharacterData = errors.New("invalid character data")

	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrInvalidEquipmentData = errors.New("invalid equipment data")

	ErrFactionNotFound    = errors.New("faction not found")
	ErrInvalidFactionData = errors.New("invalid faction data")

	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	ErrDatabaseOperation = errors.New("database operation failed")
	ErrCacheOperation    = errors.New("cache operation failed")
	ErrInternalServer    = errors.New("internal server error")
)
