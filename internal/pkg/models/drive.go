package models

import "time"

// ActiveDrive is the in-memory representation of the drive currently tracked
// for a driver. Positions are appended in fix order; DistanceKm is the running
// great-circle total after jitter filtering.
type ActiveDrive struct {
	AssignmentID string     `json:"assignment_id"`
	JobID        string     `json:"job_id"`
	DriverID     string     `json:"driver_id"`
	StartedAt    time.Time  `json:"started_at"`
	Positions    []Location `json:"positions"`
	DistanceKm   float64    `json:"distance_km"`
}

// LastPosition returns the most recent fix, or nil if none has arrived yet
func (d *ActiveDrive) LastPosition() *Location {
	if len(d.Positions) == 0 {
		return nil
	}
	return &d.Positions[len(d.Positions)-1]
}

// DriveStartRequest begins tracking for a driver's assignment
type DriveStartRequest struct {
	AssignmentID string `json:"assignment_id"`
	JobID        string `json:"job_id"`
	DriverID     string `json:"driver_id"`
}

// DriveStats is the snapshot published to subscribers on every accepted fix
type DriveStats struct {
	AssignmentID string        `json:"assignment_id"`
	JobID        string        `json:"job_id"`
	DriverID     string        `json:"driver_id"`
	Elapsed      time.Duration `json:"elapsed"`
	DistanceKm   float64       `json:"distance_km"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// DriveCompletedEvent is published on NATS when tracking ends
type DriveCompletedEvent struct {
	AssignmentID string    `json:"assignment_id"`
	JobID        string    `json:"job_id"`
	DriverID     string    `json:"driver_id"`
	DistanceKm   float64   `json:"distance_km"`
	StartedAt    time.Time `json:"started_at"`
	EndedAt      time.Time `json:"ended_at"`
}
