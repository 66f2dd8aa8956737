package attendance

import "errors"

// Attendance domain errors
var (
	ErrZoneNotAllowed    = errors.New("not authorized at this location")
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNotClockedIn      = errors.New("haven't clocked in yet")
	ErrAlreadyClockedOut = errors.New("already clocked out today")
	ErrInvalidAction     = errors.New("invalid action")
)
