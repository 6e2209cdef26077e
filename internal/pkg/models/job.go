package models

import (
	"time"

	"github.com/google/uuid"
)

// JobType represents the kind of vehicle movement a dealer is requesting
type JobType string

const (
	JobTypeDelivery JobType = "delivery"
	JobTypeSwap     JobType = "swap"
	JobTypeParts    JobType = "parts"
	JobTypeService  JobType = "service"
)

// JobStatus represents the lifecycle status of a job
type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusAssigned   JobStatus = "assigned"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// jobTransitions is the single source of truth for permitted status edges.
// Cancellation is only reachable before the drive starts.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusOpen:     {JobStatusAssigned, JobStatusCancelled},
	JobStatusAssigned: {JobStatusInProgress, JobStatusCancelled},
	JobStatusInProgress: {
		JobStatusCompleted,
	},
}

// CanTransitionTo reports whether a job may move from its current status to next
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends the job lifecycle
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// IsValid reports whether the status is one of the known values
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusOpen, JobStatusAssigned, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Vehicle describes the vehicle being moved
type Vehicle struct {
	Year         int    `json:"year" db:"vehicle_year"`
	Make         string `json:"make" db:"vehicle_make"`
	Model        string `json:"model" db:"vehicle_model"`
	VIN          string `json:"vin" db:"vehicle_vin"`
	Transmission string `json:"transmission" db:"vehicle_transmission"`
}

// Address is a pickup or delivery stop, with optional coordinates
type Address struct {
	Street    string   `json:"street"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Zip       string   `json:"zip"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Job represents a requested vehicle movement submitted by a dealer
type Job struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	DealerID           uuid.UUID `json:"dealer_id" db:"dealer_id"`
	CreatedBy          uuid.UUID `json:"created_by" db:"created_by"`
	JobType            JobType   `json:"job_type" db:"job_type"`
	Status             JobStatus `json:"status" db:"status"`
	PickupAddress      Address   `json:"pickup_address"`
	DeliveryAddress    Address   `json:"delivery_address"`
	Vehicle            Vehicle   `json:"vehicle"`
	CustomerName       string    `json:"customer_name" db:"customer_name"`
	CustomerPhone      string    `json:"customer_phone" db:"customer_phone"`
	DistanceEstimateKm float64   `json:"distance_estimate_km" db:"distance_estimate_km"`
	Notes              string    `json:"notes,omitempty" db:"notes"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// JobCreateRequest is the dealer-side submission payload
type JobCreateRequest struct {
	DealerID           string  `json:"dealer_id"`
	CreatedBy          string  `json:"created_by"`
	JobType            JobType `json:"job_type"`
	PickupAddress      Address `json:"pickup_address"`
	DeliveryAddress    Address `json:"delivery_address"`
	Vehicle            Vehicle `json:"vehicle"`
	CustomerName       string  `json:"customer_name"`
	CustomerPhone      string  `json:"customer_phone"`
	DistanceEstimateKm float64 `json:"distance_estimate_km"`
	Notes              string  `json:"notes"`
}

// JobStartRequest carries everything the driver must supply before the drive begins
type JobStartRequest struct {
	AssignmentID  string   `json:"assignment_id"`
	DriverID      string   `json:"-"` // set from the authenticated user, never from the body
	OdometerStart float64  `json:"odometer_start"`
	PhotoURLs     []string `json:"photo_urls"`
}

// JobCompleteRequest carries the proof-of-delivery payload
type JobCompleteRequest struct {
	AssignmentID  string  `json:"assignment_id"`
	DriverID      string  `json:"-"` // set from the authenticated user, never from the body
	OdometerEnd   float64 `json:"odometer_end"`
	DealerPlate   string  `json:"dealer_plate"`
	ProofPhotoURL string  `json:"proof_photo_url"`
	DistanceKm    float64 `json:"distance_km"`
}

// JobEvent is published on NATS whenever a job changes status
type JobEvent struct {
	JobID        string    `json:"job_id"`
	AssignmentID string    `json:"assignment_id,omitempty"`
	DriverID     string    `json:"driver_id,omitempty"`
	DealerID     string    `json:"dealer_id"`
	Status       JobStatus `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}
