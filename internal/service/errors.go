package service

import "errors"

// Input errors. The router answers these with 400.
var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidScore       = errors.New("invalid score")
	ErrInvalidBody        = errors.New("invalid request body")
)
