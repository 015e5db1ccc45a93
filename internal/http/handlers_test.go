package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"uptime-monitoring/internal/models"
	reportmocks "uptime-monitoring/internal/reports/mocks"
	"uptime-monitoring/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHandlerRouter(reportService *reportmocks.MockReportService) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/trigger_report", errorHandlingAdapter(NewTriggerReportHandler(reportService)))
	r.Get("/get_report/{reportID}", errorHandlingAdapter(NewGetReportHandler(reportService)))
	return r
}

func TestTriggerReportHandler_Accepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reportService := reportmocks.NewMockReportService(ctrl)
	reportService.EXPECT().Trigger(gomock.Any()).Return("01HNEWREPORT", nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trigger_report", nil)
	newHandlerRouter(reportService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body TriggerReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "01HNEWREPORT", body.ReportID)
}

func TestTriggerReportHandler_ServiceFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reportService := reportmocks.NewMockReportService(ctrl)
	reportService.EXPECT().Trigger(gomock.Any()).
		Return("", svcerrors.NewInternalError("REP_9000", io.ErrUnexpectedEOF))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trigger_report", nil)
	newHandlerRouter(reportService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "REP_9000", body.ErrorCode)
	assert.Equal(t, "internal server error", body.ErrorDescription)
}

func TestGetReportHandler_RunningJob(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reportService := reportmocks.NewMockReportService(ctrl)
	reportService.EXPECT().Get(gomock.Any(), "01HRUNNING").
		Return(models.NewRunningReportJob("01HRUNNING", time.Now().UTC()), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get_report/01HRUNNING", nil)
	newHandlerRouter(reportService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ReportStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Running", body.Status)
}

func TestGetReportHandler_FailedJob(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reportService := reportmocks.NewMockReportService(ctrl)
	completedAt := time.Now().UTC()
	reportService.EXPECT().Get(gomock.Any(), "01HFAILED").
		Return(&models.ReportJob{
			ReportID:      "01HFAILED",
			Status:        models.ReportFailed,
			FailureReason: "data unavailable",
			CreatedAt:     completedAt.Add(-time.Minute),
			CompletedAt:   &completedAt,
		}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get_report/01HFAILED", nil)
	newHandlerRouter(reportService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body ReportStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed", body.Status)
}

func TestGetReportHandler_CompleteJobStreamsCSV(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reportService := reportmocks.NewMockReportService(ctrl)

	const csvContent = "store_id,uptime_last_hour,downtime_last_hour,uptime_last_day,downtime_last_day,uptime_last_week,downtime_last_week\nstore-a,30.00,30.00,0.50,23.50,0.50,167.50\n"

	completedAt := time.Now().UTC()
	reportService.EXPECT().Get(gomock.Any(), "01HDONE").
		Return(&models.ReportJob{
			ReportID:     "01HDONE",
			Status:       models.ReportComplete,
			ResultHandle: "reports/report_01HDONE.csv",
			CreatedAt:    completedAt.Add(-time.Minute),
			CompletedAt:  &completedAt,
		}, nil)
	reportService.EXPECT().OpenResult(gomock.Any(), "reports/report_01HDONE.csv").
		Return(io.NopCloser(strings.NewReader(csvContent)), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get_report/01HDONE", nil)
	newHandlerRouter(reportService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="report_01HDONE.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, csvContent, rec.Body.String())
}

func TestGetReportHandler_UnknownReport(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reportService := reportmocks.NewMockReportService(ctrl)
	reportService.EXPECT().Get(gomock.Any(), "01HUNKNOWN").
		Return(nil, svcerrors.NewNotFoundError("REP_1000", "report 01HUNKNOWN not found", nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get_report/01HUNKNOWN", nil)
	newHandlerRouter(reportService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "REP_1000", body.ErrorCode)
	assert.Equal(t, "not_found", body.ErrorCategory)
}

func TestErrorHandlingAdapter_WrapsUndefinedErrors(t *testing.T) {
	t.Parallel()

	handler := errorHandlingAdapter(handlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		return context.DeadlineExceeded
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SYS_9001", body.ErrorCode)
}

// handlerFunc adapts a bare function to AppHttpHandler for tests.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f handlerFunc) Handle(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}
