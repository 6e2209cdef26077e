package jobs

import "errors"

var (
	// ErrJobNotFound is returned when a job id does not exist
	ErrJobNotFound = errors.New("job not found")
	// ErrAssignmentNotFound is returned when an assignment id does not exist
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrAlreadyAssigned is returned when accepting a job that is no longer open
	ErrAlreadyAssigned = errors.New("job is no longer open")
	// ErrInvalidTransition is returned for any status change outside the permitted edges
	ErrInvalidTransition = errors.New("invalid job status transition")
	// ErrMissingPrerequisite is returned when inspection photos or the dealer plate are absent
	ErrMissingPrerequisite = errors.New("missing prerequisite for status change")
	// ErrInvalidOdometer is returned for absent, non-positive or regressing odometer readings
	ErrInvalidOdometer = errors.New("invalid odometer reading")
	// ErrConflictingUpdate is returned when a status write loses a compare-and-swap race
	ErrConflictingUpdate = errors.New("job was modified concurrently")
	// ErrInvalidVIN is returned when the submitted VIN fails check-digit validation
	ErrInvalidVIN = errors.New("invalid VIN")
	// ErrInvalidJobType is returned for an unknown job type
	ErrInvalidJobType = errors.New("invalid job type")
	// ErrNotOwner is returned when the caller is not the driver on the
	// assignment or the dealer on the job
	ErrNotOwner = errors.New("not the owner of this job")
)
