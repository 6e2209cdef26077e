package repository_test

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/jobs"
	"github.com/dealerdrive/dealerdrive/services/jobs/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var jobColumnNames = []string{
	"id", "dealer_id", "created_by", "job_type", "status",
	"pickup_street", "pickup_city", "pickup_state", "pickup_zip", "pickup_latitude", "pickup_longitude",
	"delivery_street", "delivery_city", "delivery_state", "delivery_zip", "delivery_latitude", "delivery_longitude",
	"vehicle_year", "vehicle_make", "vehicle_model", "vehicle_vin", "vehicle_transmission",
	"customer_name", "customer_phone", "distance_estimate_km", "notes",
	"created_at", "updated_at",
}

func jobRow(jobID uuid.UUID, status models.JobStatus) []driverValue {
	now := time.Now()
	return []driverValue{
		jobID, uuid.New(), uuid.New(), "delivery", string(status),
		"Jl. Sudirman 1", "Jakarta", "DKI", "10110", nil, nil,
		"Jl. Thamrin 9", "Jakarta", "DKI", "10230", nil, nil,
		2022, "Honda", "CR-V", "1M8GDM9AXKP042788", "automatic",
		"Ari Wibowo", "+6281234567890", 12.5, nil,
		now, now,
	}
}

type driverValue = driver.Value

func TestCreateJob_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db)

	job := &models.Job{
		ID:        uuid.New(),
		DealerID:  uuid.New(),
		CreatedBy: uuid.New(),
		JobType:   models.JobTypeDelivery,
		Status:    models.JobStatusOpen,
		Vehicle:   models.Vehicle{Year: 2022, Make: "Honda", Model: "CR-V", VIN: "1M8GDM9AXKP042788"},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO jobs")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateJob(context.Background(), job)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJob_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db)

	jobID := uuid.New()
	rows := sqlmock.NewRows(jobColumnNames).AddRow(jobRow(jobID, models.JobStatusOpen)...)

	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs")).
		WithArgs(jobID.String()).
		WillReturnRows(rows)

	job, err := repo.GetJob(context.Background(), jobID.String())
	require.NoError(t, err)
	assert.Equal(t, jobID, job.ID)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, "1M8GDM9AXKP042788", job.Vehicle.VIN)
	assert.Nil(t, job.PickupAddress.Latitude)
}

func TestGetJob_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(jobColumnNames))

	_, err := repo.GetJob(context.Background(), "missing")
	assert.ErrorIs(t, err, jobs.ErrJobNotFound)
}

func TestListJobsByStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db)

	rows := sqlmock.NewRows(jobColumnNames).
		AddRow(jobRow(uuid.New(), models.JobStatusOpen)...).
		AddRow(jobRow(uuid.New(), models.JobStatusOpen)...)

	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs")).
		WithArgs(string(models.JobStatusOpen)).
		WillReturnRows(rows)

	result, err := repo.ListJobsByStatus(context.Background(), models.JobStatusOpen)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestUpdateJobStatus_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db)

	jobID := uuid.New().String()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE jobs SET status")).
		WithArgs(string(models.JobStatusAssigned), jobID, string(models.JobStatusOpen)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateJobStatus(context.Background(), jobID, models.JobStatusOpen, models.JobStatusAssigned)
	assert.NoError(t, err)
}

func TestUpdateJobStatus_Conflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewJobRepository(&models.Config{}, db)

	jobID := uuid.New().String()

	// Another writer already moved the job out of open.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE jobs SET status")).
		WithArgs(string(models.JobStatusAssigned), jobID, string(models.JobStatusOpen)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateJobStatus(context.Background(), jobID, models.JobStatusOpen, models.JobStatusAssigned)
	assert.ErrorIs(t, err, jobs.ErrConflictingUpdate)
}
