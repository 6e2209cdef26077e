package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// CreateInspection inserts a new vehicle inspection record. Photo URLs are
// stored as a JSON array in a jsonb column.
func (r *JobRepository) CreateInspection(ctx context.Context, inspection *models.VehicleInspection) error {
	photoURLs, err := json.Marshal(inspection.PhotoURLs)
	if err != nil {
		return fmt.Errorf("failed to encode photo urls: %w", err)
	}

	query := `
		INSERT INTO vehicle_inspections (
			id, job_id, assignment_id, inspection_type, photo_urls, odometer, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		inspection.ID,
		inspection.JobID,
		inspection.AssignmentID,
		inspection.InspectionType,
		photoURLs,
		inspection.Odometer,
		inspection.CreatedAt,
	)

	return err
}

// ListInspectionsByAssignment retrieves the inspections for an assignment in
// insertion order
func (r *JobRepository) ListInspectionsByAssignment(ctx context.Context, assignmentID string) ([]*models.VehicleInspection, error) {
	query := `
		SELECT id, job_id, assignment_id, inspection_type, photo_urls, odometer, created_at
		FROM vehicle_inspections
		WHERE assignment_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*models.VehicleInspection, 0)
	for rows.Next() {
		inspection := &models.VehicleInspection{}
		var photoURLs []byte

		err := rows.Scan(
			&inspection.ID,
			&inspection.JobID,
			&inspection.AssignmentID,
			&inspection.InspectionType,
			&photoURLs,
			&inspection.Odometer,
			&inspection.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if len(photoURLs) > 0 {
			if err := json.Unmarshal(photoURLs, &inspection.PhotoURLs); err != nil {
				return nil, fmt.Errorf("failed to decode photo urls: %w", err)
			}
		}

		result = append(result, inspection)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
