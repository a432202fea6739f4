package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidTimestamp = errors.New("invalid event timestamp")
)
