package constants

// NATS subjects
const (
	// Job lifecycle events
	SubjectJobCreated   = "job.created"
	SubjectJobAccepted  = "job.accepted"
	SubjectJobStarted   = "job.started"
	SubjectJobCompleted = "job.completed"
	SubjectJobCancelled = "job.cancelled"

	// Tracking events
	SubjectLocationAggregate = "drive.location.aggregate"
	SubjectDriveCompleted    = "drive.completed"
)
