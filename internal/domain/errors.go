package domain

import "errors"

var (
	// ErrMalformedDate is returned when a date token is not DD.MM or DD.MM.YYYY
	ErrMalformedDate = errors.New("malformed date")

	// ErrUnknownSource is returned when no origin is registered for a source
	ErrUnknownSource = errors.New("unknown source")

	// ErrInvalidOrigin is returned when an origin lacks a base URL or a date rule
	ErrInvalidOrigin = errors.New("invalid origin")
)
