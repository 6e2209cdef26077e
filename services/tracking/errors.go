package tracking

import "errors"

var (
	// ErrAlreadyTracking is returned when a driver starts a drive while one is active
	ErrAlreadyTracking = errors.New("driver already has an active drive")
	// ErrNoActiveDrive is returned when no drive is being tracked for the driver
	ErrNoActiveDrive = errors.New("no active drive for driver")
	// ErrInvalidLocation is returned for coordinates outside the valid range
	ErrInvalidLocation = errors.New("invalid coordinates")
	// ErrStalePosition is returned for a fix older than the previous one beyond the grace window
	ErrStalePosition = errors.New("position fix is stale")
)
