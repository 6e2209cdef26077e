package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/jobs"
	"github.com/dealerdrive/dealerdrive/services/jobs/mocks"
)

func setupJobUC(t *testing.T) (*mocks.MockJobRepo, *mocks.MockJobGW, jobs.JobUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockJobRepo(ctrl)
	mockGW := mocks.NewMockJobGW(ctrl)

	uc, err := NewJobUC(&models.Config{}, mockRepo, mockGW)
	require.NoError(t, err)

	return mockRepo, mockGW, uc
}

func validCreateRequest() models.JobCreateRequest {
	return models.JobCreateRequest{
		DealerID:  uuid.New().String(),
		CreatedBy: uuid.New().String(),
		JobType:   models.JobTypeDelivery,
		Vehicle: models.Vehicle{
			Year:  2022,
			Make:  "Honda",
			Model: "CR-V",
			VIN:   "1M8GDM9AXKP042788",
		},
		CustomerName:       "Ari Wibowo",
		CustomerPhone:      "+6281234567890",
		DistanceEstimateKm: 12.5,
	}
}

func TestCreateJob_Success(t *testing.T) {
	mockRepo, mockGW, uc := setupJobUC(t)

	req := validCreateRequest()

	mockRepo.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishJobCreated(gomock.Any(), gomock.Any()).Return(nil)

	job, err := uc.CreateJob(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, req.DealerID, job.DealerID.String())
	assert.NotEqual(t, uuid.Nil, job.ID)
}

func TestCreateJob_InvalidJobType(t *testing.T) {
	_, _, uc := setupJobUC(t)

	req := validCreateRequest()
	req.JobType = "joyride"

	_, err := uc.CreateJob(context.Background(), req)
	assert.ErrorIs(t, err, jobs.ErrInvalidJobType)
}

func TestCreateJob_InvalidVIN(t *testing.T) {
	_, _, uc := setupJobUC(t)

	req := validCreateRequest()
	req.Vehicle.VIN = "1M8GDM9A1KP042788" // wrong check digit

	_, err := uc.CreateJob(context.Background(), req)
	assert.ErrorIs(t, err, jobs.ErrInvalidVIN)
}

func TestAcceptJob_Success(t *testing.T) {
	mockRepo, mockGW, uc := setupJobUC(t)

	jobID := uuid.New()
	driverID := uuid.New()
	job := &models.Job{ID: jobID, DealerID: uuid.New(), Status: models.JobStatusOpen}

	mockRepo.EXPECT().GetJob(gomock.Any(), jobID.String()).Return(job, nil)
	mockRepo.EXPECT().UpdateJobStatus(gomock.Any(), jobID.String(), models.JobStatusOpen, models.JobStatusAssigned).Return(nil)
	mockRepo.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *models.Assignment) error {
			assert.Equal(t, jobID, a.JobID)
			assert.Equal(t, driverID, a.DriverID)
			assert.False(t, a.AcceptedAt.IsZero())
			return nil
		})
	mockGW.EXPECT().PublishJobAccepted(gomock.Any(), gomock.Any()).Return(nil)

	assignment, err := uc.AcceptJob(context.Background(), jobID.String(), driverID.String())
	require.NoError(t, err)
	assert.Nil(t, assignment.StartedAt)
}

func TestAcceptJob_NotOpen(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	jobID := uuid.New()
	job := &models.Job{ID: jobID, Status: models.JobStatusAssigned}

	mockRepo.EXPECT().GetJob(gomock.Any(), jobID.String()).Return(job, nil)

	_, err := uc.AcceptJob(context.Background(), jobID.String(), uuid.New().String())
	assert.ErrorIs(t, err, jobs.ErrAlreadyAssigned)
}

func TestAcceptJob_LosesRace(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	jobID := uuid.New()
	job := &models.Job{ID: jobID, Status: models.JobStatusOpen}

	// A second driver's write lands between the read and the status flip.
	mockRepo.EXPECT().GetJob(gomock.Any(), jobID.String()).Return(job, nil)
	mockRepo.EXPECT().UpdateJobStatus(gomock.Any(), jobID.String(), models.JobStatusOpen, models.JobStatusAssigned).
		Return(jobs.ErrConflictingUpdate)

	_, err := uc.AcceptJob(context.Background(), jobID.String(), uuid.New().String())
	assert.ErrorIs(t, err, jobs.ErrAlreadyAssigned)
}

func TestStartJob_Success(t *testing.T) {
	mockRepo, mockGW, uc := setupJobUC(t)

	jobID := uuid.New()
	assignmentID := uuid.New()
	assignment := &models.Assignment{ID: assignmentID, JobID: jobID, DriverID: uuid.New()}
	job := &models.Job{ID: jobID, DealerID: uuid.New(), Status: models.JobStatusAssigned}

	req := models.JobStartRequest{
		AssignmentID:  assignmentID.String(),
		DriverID:      assignment.DriverID.String(),
		OdometerStart: 42150,
		PhotoURLs:     []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	}

	mockRepo.EXPECT().GetAssignment(gomock.Any(), assignmentID.String()).Return(assignment, nil)
	mockRepo.EXPECT().GetJob(gomock.Any(), jobID.String()).Return(job, nil)
	mockRepo.EXPECT().CreateInspection(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, i *models.VehicleInspection) error {
			assert.Equal(t, models.InspectionPreDrive, i.InspectionType)
			assert.Equal(t, req.PhotoURLs, i.PhotoURLs)
			assert.Equal(t, req.OdometerStart, i.Odometer)
			return nil
		})
	mockRepo.EXPECT().MarkAssignmentStarted(gomock.Any(), assignmentID.String(), gomock.Any(), req.OdometerStart).Return(nil)
	mockRepo.EXPECT().UpdateJobStatus(gomock.Any(), jobID.String(), models.JobStatusAssigned, models.JobStatusInProgress).Return(nil)
	mockGW.EXPECT().PublishJobStarted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.StartJob(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, result.StartedAt)
	require.NotNil(t, result.OdometerStart)
	assert.Equal(t, req.OdometerStart, *result.OdometerStart)
}

func TestStartJob_NoPhotos(t *testing.T) {
	_, _, uc := setupJobUC(t)

	req := models.JobStartRequest{
		AssignmentID:  uuid.New().String(),
		OdometerStart: 42150,
	}

	_, err := uc.StartJob(context.Background(), req)
	assert.ErrorIs(t, err, jobs.ErrMissingPrerequisite)
}

func TestStartJob_InvalidOdometer(t *testing.T) {
	_, _, uc := setupJobUC(t)

	req := models.JobStartRequest{
		AssignmentID:  uuid.New().String(),
		OdometerStart: 0,
		PhotoURLs:     []string{"https://cdn.example.com/a.jpg"},
	}

	_, err := uc.StartJob(context.Background(), req)
	assert.ErrorIs(t, err, jobs.ErrInvalidOdometer)
}

func TestStartJob_AlreadyStarted(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	assignmentID := uuid.New()
	started := time.Now().Add(-time.Hour)
	assignment := &models.Assignment{ID: assignmentID, JobID: uuid.New(), DriverID: uuid.New(), StartedAt: &started}

	mockRepo.EXPECT().GetAssignment(gomock.Any(), assignmentID.String()).Return(assignment, nil)

	req := models.JobStartRequest{
		AssignmentID:  assignmentID.String(),
		DriverID:      assignment.DriverID.String(),
		OdometerStart: 42150,
		PhotoURLs:     []string{"https://cdn.example.com/a.jpg"},
	}

	_, err := uc.StartJob(context.Background(), req)
	assert.ErrorIs(t, err, jobs.ErrInvalidTransition)
}

func TestStartJob_WrongDriver(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	assignmentID := uuid.New()
	assignment := &models.Assignment{ID: assignmentID, JobID: uuid.New(), DriverID: uuid.New()}

	mockRepo.EXPECT().GetAssignment(gomock.Any(), assignmentID.String()).Return(assignment, nil)

	req := models.JobStartRequest{
		AssignmentID:  assignmentID.String(),
		DriverID:      uuid.New().String(), // a different authenticated driver
		OdometerStart: 42150,
		PhotoURLs:     []string{"https://cdn.example.com/a.jpg"},
	}

	_, err := uc.StartJob(context.Background(), req)
	assert.ErrorIs(t, err, jobs.ErrNotOwner)
}

func inProgressAssignment(odometerStart float64) *models.Assignment {
	started := time.Now().Add(-2 * time.Hour)
	return &models.Assignment{
		ID:            uuid.New(),
		JobID:         uuid.New(),
		DriverID:      uuid.New(),
		StartedAt:     &started,
		OdometerStart: &odometerStart,
	}
}

func TestCompleteJob_Success(t *testing.T) {
	mockRepo, mockGW, uc := setupJobUC(t)

	assignment := inProgressAssignment(42150)
	job := &models.Job{ID: assignment.JobID, DealerID: uuid.New(), Status: models.JobStatusInProgress}

	req := models.JobCompleteRequest{
		AssignmentID:  assignment.ID.String(),
		DriverID:      assignment.DriverID.String(),
		OdometerEnd:   42175,
		DealerPlate:   "Y",
		ProofPhotoURL: "https://cdn.example.com/proof.jpg",
		DistanceKm:    24.3,
	}

	mockRepo.EXPECT().GetAssignment(gomock.Any(), assignment.ID.String()).Return(assignment, nil)
	mockRepo.EXPECT().GetJob(gomock.Any(), assignment.JobID.String()).Return(job, nil)
	mockRepo.EXPECT().CreateInspection(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, i *models.VehicleInspection) error {
			assert.Equal(t, models.InspectionPostDrive, i.InspectionType)
			assert.Equal(t, []string{req.ProofPhotoURL}, i.PhotoURLs)
			return nil
		})
	mockRepo.EXPECT().MarkAssignmentEnded(gomock.Any(), assignment.ID.String(), gomock.Any(), req.OdometerEnd, req.DealerPlate, req.DistanceKm).Return(nil)
	mockRepo.EXPECT().UpdateJobStatus(gomock.Any(), assignment.JobID.String(), models.JobStatusInProgress, models.JobStatusCompleted).Return(nil)
	mockGW.EXPECT().PublishJobCompleted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.CompleteJob(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, result.EndedAt)
	assert.Equal(t, "Y", result.DealerPlate)
}

func TestCompleteJob_InvalidDealerPlate(t *testing.T) {
	_, _, uc := setupJobUC(t)

	req := models.JobCompleteRequest{
		AssignmentID:  uuid.New().String(),
		OdometerEnd:   42175,
		DealerPlate:   "Q",
		ProofPhotoURL: "https://cdn.example.com/proof.jpg",
	}

	_, err := uc.CompleteJob(context.Background(), req)
	assert.ErrorIs(t, err, jobs.ErrMissingPrerequisite)
}

func TestCompleteJob_OdometerRegression(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	assignment := inProgressAssignment(42150)

	req := models.JobCompleteRequest{
		AssignmentID:  assignment.ID.String(),
		DriverID:      assignment.DriverID.String(),
		OdometerEnd:   42100,
		DealerPlate:   "X",
		ProofPhotoURL: "https://cdn.example.com/proof.jpg",
	}

	mockRepo.EXPECT().GetAssignment(gomock.Any(), assignment.ID.String()).Return(assignment, nil)

	_, err := uc.CompleteJob(context.Background(), req)
	assert.ErrorIs(t, err, jobs.ErrInvalidOdometer)
}

func TestCompleteJob_WrongDriver(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	assignment := inProgressAssignment(42150)

	req := models.JobCompleteRequest{
		AssignmentID:  assignment.ID.String(),
		DriverID:      uuid.New().String(), // a different authenticated driver
		OdometerEnd:   42175,
		DealerPlate:   "X",
		ProofPhotoURL: "https://cdn.example.com/proof.jpg",
	}

	mockRepo.EXPECT().GetAssignment(gomock.Any(), assignment.ID.String()).Return(assignment, nil)

	_, err := uc.CompleteJob(context.Background(), req)
	assert.ErrorIs(t, err, jobs.ErrNotOwner)
}

func TestCompleteJob_NotStarted(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	assignmentID := uuid.New()
	assignment := &models.Assignment{ID: assignmentID, JobID: uuid.New(), DriverID: uuid.New()}

	mockRepo.EXPECT().GetAssignment(gomock.Any(), assignmentID.String()).Return(assignment, nil)

	req := models.JobCompleteRequest{
		AssignmentID:  assignmentID.String(),
		DriverID:      assignment.DriverID.String(),
		OdometerEnd:   42175,
		DealerPlate:   "X",
		ProofPhotoURL: "https://cdn.example.com/proof.jpg",
	}

	_, err := uc.CompleteJob(context.Background(), req)
	assert.ErrorIs(t, err, jobs.ErrInvalidTransition)
}

func TestCancelJob_OpenJob(t *testing.T) {
	mockRepo, mockGW, uc := setupJobUC(t)

	jobID := uuid.New()
	job := &models.Job{ID: jobID, DealerID: uuid.New(), Status: models.JobStatusOpen}

	mockRepo.EXPECT().GetJob(gomock.Any(), jobID.String()).Return(job, nil)
	mockRepo.EXPECT().UpdateJobStatus(gomock.Any(), jobID.String(), models.JobStatusOpen, models.JobStatusCancelled).Return(nil)
	mockGW.EXPECT().PublishJobCancelled(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.CancelJob(context.Background(), jobID.String(), job.DealerID.String(), "customer rescheduled")
	assert.NoError(t, err)
}

func TestCancelJob_AssignedJobClosesAssignment(t *testing.T) {
	mockRepo, mockGW, uc := setupJobUC(t)

	jobID := uuid.New()
	job := &models.Job{ID: jobID, DealerID: uuid.New(), Status: models.JobStatusAssigned}

	mockRepo.EXPECT().GetJob(gomock.Any(), jobID.String()).Return(job, nil)
	mockRepo.EXPECT().UpdateJobStatus(gomock.Any(), jobID.String(), models.JobStatusAssigned, models.JobStatusCancelled).Return(nil)
	mockRepo.EXPECT().CloseAssignmentForJob(gomock.Any(), jobID.String(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishJobCancelled(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.CancelJob(context.Background(), jobID.String(), job.DealerID.String(), "vehicle not ready")
	assert.NoError(t, err)
}

func TestCancelJob_InProgressRejected(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	jobID := uuid.New()
	job := &models.Job{ID: jobID, DealerID: uuid.New(), Status: models.JobStatusInProgress}

	mockRepo.EXPECT().GetJob(gomock.Any(), jobID.String()).Return(job, nil)

	err := uc.CancelJob(context.Background(), jobID.String(), job.DealerID.String(), "too late")
	assert.ErrorIs(t, err, jobs.ErrInvalidTransition)
}

func TestCancelJob_CompletedRejected(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	jobID := uuid.New()
	job := &models.Job{ID: jobID, DealerID: uuid.New(), Status: models.JobStatusCompleted}

	mockRepo.EXPECT().GetJob(gomock.Any(), jobID.String()).Return(job, nil)

	err := uc.CancelJob(context.Background(), jobID.String(), job.DealerID.String(), "mistake")
	assert.ErrorIs(t, err, jobs.ErrInvalidTransition)
}

func TestCancelJob_WrongDealer(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	jobID := uuid.New()
	job := &models.Job{ID: jobID, DealerID: uuid.New(), Status: models.JobStatusOpen}

	mockRepo.EXPECT().GetJob(gomock.Any(), jobID.String()).Return(job, nil)

	err := uc.CancelJob(context.Background(), jobID.String(), uuid.New().String(), "not my job")
	assert.ErrorIs(t, err, jobs.ErrNotOwner)
}

func TestRecordDriveDistance(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	assignmentID := uuid.New().String()
	mockRepo.EXPECT().UpdateAssignmentDistance(gomock.Any(), assignmentID, 18.7).Return(nil)

	err := uc.RecordDriveDistance(context.Background(), assignmentID, 18.7)
	assert.NoError(t, err)
}

func TestRecordDriveDistance_RepoError(t *testing.T) {
	mockRepo, _, uc := setupJobUC(t)

	assignmentID := uuid.New().String()
	repoErr := errors.New("connection reset")
	mockRepo.EXPECT().UpdateAssignmentDistance(gomock.Any(), assignmentID, 18.7).Return(repoErr)

	err := uc.RecordDriveDistance(context.Background(), assignmentID, 18.7)
	assert.ErrorIs(t, err, repoErr)
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	mockRepo, mockGW, uc := setupJobUC(t)

	req := validCreateRequest()

	mockRepo.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishJobCreated(gomock.Any(), gomock.Any()).Return(errors.New("nats unavailable"))

	job, err := uc.CreateJob(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, job)
}
