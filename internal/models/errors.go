package models

import "errors"

var (
	// ErrInputEmpty marks input with nothing to analyze. The analysis
	// packages never return it; adapters use it to reject empty requests.
	ErrInputEmpty = errors.New("input empty")

	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrMalformedRow         = errors.New("malformed row")
	ErrNoTextColumn         = errors.New("no suitable text column")
)
