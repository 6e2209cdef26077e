package models

import (
	"time"

	"github.com/google/uuid"
)

// InspectionType discriminates pre-drive and post-drive photo evidence
type InspectionType string

const (
	InspectionPreDrive  InspectionType = "pre_drive"
	InspectionPostDrive InspectionType = "post_drive"
)

// VehicleInspection is an insert-only record of photo evidence for a drive
type VehicleInspection struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	JobID          uuid.UUID      `json:"job_id" db:"job_id"`
	AssignmentID   uuid.UUID      `json:"assignment_id" db:"assignment_id"`
	InspectionType InspectionType `json:"inspection_type" db:"inspection_type"`
	PhotoURLs      []string       `json:"photo_urls"`
	Odometer       float64        `json:"odometer" db:"odometer"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}
