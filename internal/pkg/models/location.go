package models

import "time"

// Location represents a single geolocation fix
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationAggregate represents accumulated drive distance published for downstream consumers
type LocationAggregate struct {
	AssignmentID string  `json:"assignment_id"`
	JobID        string  `json:"job_id"`
	DriverID     string  `json:"driver_id"`
	DistanceKm   float64 `json:"distance_km"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}
