package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
	"github.com/dealerdrive/dealerdrive/services/jobs"
	"github.com/dealerdrive/dealerdrive/services/jobs/mocks"
)

func setupHandler(t *testing.T) (*mocks.MockJobUC, *mocks.MockPhotoStore, *JobsHandler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockJobUC(ctrl)
	mockStore := mocks.NewMockPhotoStore(ctrl)
	cfg := &models.Config{
		Jobs: models.JobsConfig{MaxInspectionPhotos: 8, MaxPhotoSizeMB: 10},
	}
	return mockUC, mockStore, NewJobsHandler(cfg, mockUC, mockStore)
}

func jsonContext(e *echo.Echo, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateJob_Handler_Success(t *testing.T) {
	mockUC, _, handler := setupHandler(t)
	e := echo.New()

	userID := uuid.New()
	reqBody := models.JobCreateRequest{
		JobType:      models.JobTypeDelivery,
		CustomerName: "Ari Wibowo",
	}

	c, rec := jsonContext(e, http.MethodPost, "/jobs", reqBody)
	c.Set("user_id", userID)

	mockUC.EXPECT().CreateJob(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req models.JobCreateRequest) (*models.Job, error) {
			assert.Equal(t, userID.String(), req.CreatedBy)
			assert.Equal(t, userID.String(), req.DealerID)
			return &models.Job{ID: uuid.New(), Status: models.JobStatusOpen}, nil
		})

	err := handler.CreateJob(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateJob_Handler_MissingUser(t *testing.T) {
	_, _, handler := setupHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/jobs", models.JobCreateRequest{})

	err := handler.CreateJob(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAcceptJob_Handler_Conflict(t *testing.T) {
	mockUC, _, handler := setupHandler(t)
	e := echo.New()

	jobID := uuid.New().String()
	userID := uuid.New()

	c, rec := jsonContext(e, http.MethodPost, "/jobs/"+jobID+"/accept", nil)
	c.SetParamNames("jobID")
	c.SetParamValues(jobID)
	c.Set("user_id", userID)

	mockUC.EXPECT().AcceptJob(gomock.Any(), jobID, userID.String()).Return(nil, jobs.ErrAlreadyAssigned)

	err := handler.AcceptJob(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStartJob_Handler_MissingPrerequisite(t *testing.T) {
	mockUC, _, handler := setupHandler(t)
	e := echo.New()

	assignmentID := uuid.New().String()
	c, rec := jsonContext(e, http.MethodPost, "/assignments/"+assignmentID+"/start", models.JobStartRequest{OdometerStart: 42150})
	c.SetParamNames("assignmentID")
	c.SetParamValues(assignmentID)
	c.Set("user_id", uuid.New())

	mockUC.EXPECT().StartJob(gomock.Any(), gomock.Any()).Return(nil, jobs.ErrMissingPrerequisite)

	err := handler.StartJob(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestStartJob_Handler_NotOwner(t *testing.T) {
	mockUC, _, handler := setupHandler(t)
	e := echo.New()

	assignmentID := uuid.New().String()
	userID := uuid.New()
	reqBody := models.JobStartRequest{
		OdometerStart: 42150,
		PhotoURLs:     []string{"https://cdn.example.com/a.jpg"},
	}

	c, rec := jsonContext(e, http.MethodPost, "/assignments/"+assignmentID+"/start", reqBody)
	c.SetParamNames("assignmentID")
	c.SetParamValues(assignmentID)
	c.Set("user_id", userID)

	mockUC.EXPECT().StartJob(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req models.JobStartRequest) (*models.Assignment, error) {
			assert.Equal(t, userID.String(), req.DriverID)
			return nil, jobs.ErrNotOwner
		})

	err := handler.StartJob(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCompleteJob_Handler_Success(t *testing.T) {
	mockUC, _, handler := setupHandler(t)
	e := echo.New()

	assignmentID := uuid.New().String()
	reqBody := models.JobCompleteRequest{
		OdometerEnd:   42175,
		DealerPlate:   "Y",
		ProofPhotoURL: "https://cdn.example.com/proof.jpg",
	}

	userID := uuid.New()
	c, rec := jsonContext(e, http.MethodPost, "/assignments/"+assignmentID+"/complete", reqBody)
	c.SetParamNames("assignmentID")
	c.SetParamValues(assignmentID)
	c.Set("user_id", userID)

	mockUC.EXPECT().CompleteJob(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req models.JobCompleteRequest) (*models.Assignment, error) {
			assert.Equal(t, assignmentID, req.AssignmentID)
			assert.Equal(t, userID.String(), req.DriverID)
			assert.Equal(t, "Y", req.DealerPlate)
			return &models.Assignment{ID: uuid.MustParse(assignmentID)}, nil
		})

	err := handler.CompleteJob(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetJob_Handler_NotFound(t *testing.T) {
	mockUC, _, handler := setupHandler(t)
	e := echo.New()

	jobID := uuid.New().String()
	c, rec := jsonContext(e, http.MethodGet, "/jobs/"+jobID, nil)
	c.SetParamNames("jobID")
	c.SetParamValues(jobID)

	mockUC.EXPECT().GetJob(gomock.Any(), jobID).Return(nil, jobs.ErrJobNotFound)

	err := handler.GetJob(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelJob_Handler_InvalidTransition(t *testing.T) {
	mockUC, _, handler := setupHandler(t)
	e := echo.New()

	jobID := uuid.New().String()
	userID := uuid.New()
	c, rec := jsonContext(e, http.MethodPost, "/jobs/"+jobID+"/cancel", map[string]string{"reason": "too late"})
	c.SetParamNames("jobID")
	c.SetParamValues(jobID)
	c.Set("user_id", userID)

	mockUC.EXPECT().CancelJob(gomock.Any(), jobID, userID.String(), "too late").Return(jobs.ErrInvalidTransition)

	err := handler.CancelJob(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
