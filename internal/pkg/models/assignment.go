package models

import (
	"time"

	"github.com/google/uuid"
)

// DealerPlates is the enumerated set of dealer plates a driver may select on completion
var DealerPlates = []string{"X", "Y", "Z"}

// IsValidDealerPlate reports whether the plate belongs to the enumerated set
func IsValidDealerPlate(plate string) bool {
	for _, p := range DealerPlates {
		if p == plate {
			return true
		}
	}
	return false
}

// Assignment represents the binding of one driver to one job
type Assignment struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	JobID         uuid.UUID  `json:"job_id" db:"job_id"`
	DriverID      uuid.UUID  `json:"driver_id" db:"driver_id"`
	AcceptedAt    time.Time  `json:"accepted_at" db:"accepted_at"`
	StartedAt     *time.Time `json:"started_at,omitempty" db:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty" db:"ended_at"`
	OdometerStart *float64   `json:"odometer_start,omitempty" db:"odometer_start"`
	OdometerEnd   *float64   `json:"odometer_end,omitempty" db:"odometer_end"`
	DealerPlate   string     `json:"dealer_plate,omitempty" db:"dealer_plate"`
	DistanceKm    float64    `json:"distance_km" db:"distance_km"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// InProgress reports whether the drive has started but not ended
func (a *Assignment) InProgress() bool {
	return a.StartedAt != nil && a.EndedAt == nil
}
