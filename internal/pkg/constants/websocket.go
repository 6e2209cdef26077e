package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Tracking events
	EventPositionUpdate = "position_update"
	EventDriveStats     = "drive_stats"
)

// WebSocket error codes
const (
	ErrorInvalidFormat   = "invalid_format"
	ErrorInternalError   = "internal_error"
	ErrorInvalidLocation = "invalid_location"
	ErrorNoActiveDrive   = "no_active_drive"
)
