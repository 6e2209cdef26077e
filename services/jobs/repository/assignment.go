package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/jobs"
)

// CreateAssignment inserts a new assignment
func (r *JobRepository) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (
			id, job_id, driver_id, accepted_at, distance_km, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		assignment.ID,
		assignment.JobID,
		assignment.DriverID,
		assignment.AcceptedAt,
		assignment.DistanceKm,
		assignment.CreatedAt,
		assignment.UpdatedAt,
	)

	return err
}

// GetAssignment retrieves an assignment by ID
func (r *JobRepository) GetAssignment(ctx context.Context, assignmentID string) (*models.Assignment, error) {
	query := `
		SELECT
			id, job_id, driver_id, accepted_at, started_at, ended_at,
			odometer_start, odometer_end, dealer_plate, distance_km,
			created_at, updated_at
		FROM assignments
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, assignmentID)

	assignment := &models.Assignment{}
	var startedAt, endedAt sql.NullTime
	var odometerStart, odometerEnd sql.NullFloat64
	var dealerPlate sql.NullString

	err := row.Scan(
		&assignment.ID,
		&assignment.JobID,
		&assignment.DriverID,
		&assignment.AcceptedAt,
		&startedAt,
		&endedAt,
		&odometerStart,
		&odometerEnd,
		&dealerPlate,
		&assignment.DistanceKm,
		&assignment.CreatedAt,
		&assignment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobs.ErrAssignmentNotFound
		}
		return nil, err
	}

	if startedAt.Valid {
		assignment.StartedAt = &startedAt.Time
	}
	if endedAt.Valid {
		assignment.EndedAt = &endedAt.Time
	}
	if odometerStart.Valid {
		assignment.OdometerStart = &odometerStart.Float64
	}
	if odometerEnd.Valid {
		assignment.OdometerEnd = &odometerEnd.Float64
	}
	if dealerPlate.Valid {
		assignment.DealerPlate = dealerPlate.String
	}

	return assignment, nil
}

// MarkAssignmentStarted records the drive start time and starting odometer
func (r *JobRepository) MarkAssignmentStarted(ctx context.Context, assignmentID string, startedAt time.Time, odometerStart float64) error {
	query := `
		UPDATE assignments
		SET started_at = $1, odometer_start = $2, updated_at = NOW()
		WHERE id = $3 AND started_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, startedAt, odometerStart, assignmentID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return jobs.ErrConflictingUpdate
	}

	return nil
}

// MarkAssignmentEnded records the drive end, closing odometer, dealer plate
// and the accumulated drive distance
func (r *JobRepository) MarkAssignmentEnded(ctx context.Context, assignmentID string, endedAt time.Time, odometerEnd float64, dealerPlate string, distanceKm float64) error {
	query := `
		UPDATE assignments
		SET ended_at = $1, odometer_end = $2, dealer_plate = $3, distance_km = $4, updated_at = NOW()
		WHERE id = $5 AND ended_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, endedAt, odometerEnd, dealerPlate, distanceKm, assignmentID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return jobs.ErrConflictingUpdate
	}

	return nil
}

// UpdateAssignmentDistance stores the distance measured by the tracking
// service. The event arrives after the assignment has ended, so the write is
// unconditional and overrides any driver-reported figure.
func (r *JobRepository) UpdateAssignmentDistance(ctx context.Context, assignmentID string, distanceKm float64) error {
	query := `
		UPDATE assignments
		SET distance_km = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := r.db.ExecContext(ctx, query, distanceKm, assignmentID)
	return err
}

// CloseAssignmentForJob soft-closes any open assignment on the job, keeping
// the row for audit
func (r *JobRepository) CloseAssignmentForJob(ctx context.Context, jobID string, endedAt time.Time) error {
	query := `
		UPDATE assignments
		SET ended_at = $1, updated_at = NOW()
		WHERE job_id = $2 AND ended_at IS NULL
	`

	_, err := r.db.ExecContext(ctx, query, endedAt, jobID)
	return err
}
