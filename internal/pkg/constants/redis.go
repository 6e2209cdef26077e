package constants

// Redis key formats
const (
	// Tracking service
	KeyDriveLast     = "drive:last:%s"    // Format: drive:last:{driver_id}
	KeyDriveHistory  = "drive:history:%s" // Format: drive:history:{assignment_id}
	KeyDriverGeo     = "drivers:geo"      // Geo set of last-known driver positions
	KeyActiveDrivers = "drivers:active"   // Set of driver IDs with an active drive
)

// Redis hash fields
const (
	FieldLatitude     = "lat"
	FieldLongitude    = "lng"
	FieldTimestamp    = "ts"
	FieldAssignmentID = "assignment_id"
	FieldJobID        = "job_id"
	FieldDistance     = "distance_km"
)
