package datum

import "errors"

var (
	// ErrTypeMismatch is returned when a full point in time is required but
	// something else was supplied
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrParse is returned when a string does not match the required layout
	ErrParse = errors.New("parse error")

	// ErrInvalidDate is returned when components do not form a calendar date
	ErrInvalidDate = errors.New("invalid date")
)
