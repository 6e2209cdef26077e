package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/jobs"
)

// JobRepository implements the jobs.JobRepo interface backed by Postgres
type JobRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *JobRepository {
	return &JobRepository{
		cfg: cfg,
		db:  db,
	}
}

const jobColumns = `
	id, dealer_id, created_by, job_type, status,
	pickup_street, pickup_city, pickup_state, pickup_zip, pickup_latitude, pickup_longitude,
	delivery_street, delivery_city, delivery_state, delivery_zip, delivery_latitude, delivery_longitude,
	vehicle_year, vehicle_make, vehicle_model, vehicle_vin, vehicle_transmission,
	customer_name, customer_phone, distance_estimate_km, notes,
	created_at, updated_at`

// CreateJob inserts a new job
func (r *JobRepository) CreateJob(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (
			id, dealer_id, created_by, job_type, status,
			pickup_street, pickup_city, pickup_state, pickup_zip, pickup_latitude, pickup_longitude,
			delivery_street, delivery_city, delivery_state, delivery_zip, delivery_latitude, delivery_longitude,
			vehicle_year, vehicle_make, vehicle_model, vehicle_vin, vehicle_transmission,
			customer_name, customer_phone, distance_estimate_km, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		job.ID,
		job.DealerID,
		job.CreatedBy,
		job.JobType,
		job.Status,
		job.PickupAddress.Street,
		job.PickupAddress.City,
		job.PickupAddress.State,
		job.PickupAddress.Zip,
		job.PickupAddress.Latitude,
		job.PickupAddress.Longitude,
		job.DeliveryAddress.Street,
		job.DeliveryAddress.City,
		job.DeliveryAddress.State,
		job.DeliveryAddress.Zip,
		job.DeliveryAddress.Latitude,
		job.DeliveryAddress.Longitude,
		job.Vehicle.Year,
		job.Vehicle.Make,
		job.Vehicle.Model,
		job.Vehicle.VIN,
		job.Vehicle.Transmission,
		job.CustomerName,
		job.CustomerPhone,
		job.DistanceEstimateKm,
		job.Notes,
		job.CreatedAt,
		job.UpdatedAt,
	)

	return err
}

// GetJob retrieves a job by ID
func (r *JobRepository) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, jobID)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobs.ErrJobNotFound
		}
		return nil, err
	}

	return job, nil
}

// ListJobsByStatus retrieves jobs in a given status, newest first
func (r *JobRepository) ListJobsByStatus(ctx context.Context, status models.JobStatus) ([]*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1 ORDER BY created_at DESC`
	return r.listJobs(ctx, query, status)
}

// ListJobsByDealer retrieves all jobs owned by a dealer, newest first
func (r *JobRepository) ListJobsByDealer(ctx context.Context, dealerID string) ([]*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE dealer_id = $1 ORDER BY created_at DESC`
	return r.listJobs(ctx, query, dealerID)
}

// ListJobsByDriver retrieves all jobs a driver has been assigned to, newest first
func (r *JobRepository) ListJobsByDriver(ctx context.Context, driverID string) ([]*models.Job, error) {
	query := `
		SELECT ` + jobColumns + ` FROM jobs
		WHERE id IN (SELECT job_id FROM assignments WHERE driver_id = $1)
		ORDER BY created_at DESC`
	return r.listJobs(ctx, query, driverID)
}

// UpdateJobStatus flips the status with a compare-and-swap on the prior
// status. Zero rows affected means another writer got there first.
func (r *JobRepository) UpdateJobStatus(ctx context.Context, jobID string, from, to models.JobStatus) error {
	query := `UPDATE jobs SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`

	result, err := r.db.ExecContext(ctx, query, to, jobID, from)
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

func (r *JobRepository) listJobs(ctx context.Context, query string, arg interface{}) ([]*models.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*models.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (*models.Job, error) {
	job := &models.Job{}
	var pickupLat, pickupLng, deliveryLat, deliveryLng sql.NullFloat64
	var notes sql.NullString

	err := row.Scan(
		&job.ID,
		&job.DealerID,
		&job.CreatedBy,
		&job.JobType,
		&job.Status,
		&job.PickupAddress.Street,
		&job.PickupAddress.City,
		&job.PickupAddress.State,
		&job.PickupAddress.Zip,
		&pickupLat,
		&pickupLng,
		&job.DeliveryAddress.Street,
		&job.DeliveryAddress.City,
		&job.DeliveryAddress.State,
		&job.DeliveryAddress.Zip,
		&deliveryLat,
		&deliveryLng,
		&job.Vehicle.Year,
		&job.Vehicle.Make,
		&job.Vehicle.Model,
		&job.Vehicle.VIN,
		&job.Vehicle.Transmission,
		&job.CustomerName,
		&job.CustomerPhone,
		&job.DistanceEstimateKm,
		&notes,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if pickupLat.Valid {
		job.PickupAddress.Latitude = &pickupLat.Float64
	}
	if pickupLng.Valid {
		job.PickupAddress.Longitude = &pickupLng.Float64
	}
	if deliveryLat.Valid {
		job.DeliveryAddress.Latitude = &deliveryLat.Float64
	}
	if deliveryLng.Valid {
		job.DeliveryAddress.Longitude = &deliveryLng.Float64
	}
	if notes.Valid {
		job.Notes = notes.String
	}

	return job, nil
}
