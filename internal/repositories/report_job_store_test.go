package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"uptime-monitoring/internal/models"
	"uptime-monitoring/internal/shared/filestorages"
	fsmocks "uptime-monitoring/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newJobStore(t *testing.T) ReportJobStore {
	t.Helper()
	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return NewReportJobStore(fileStorage)
}

func TestReportJobStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	store := newJobStore(t)
	ctx := context.Background()

	createdAt := time.Date(2023, 1, 25, 9, 0, 0, 0, time.UTC)
	job := models.NewRunningReportJob("01HREPORT", createdAt)

	require.NoError(t, store.Create(ctx, job))

	got, err := store.Get(ctx, "01HREPORT")
	require.NoError(t, err)
	assert.Equal(t, "01HREPORT", got.ReportID)
	assert.Equal(t, models.ReportRunning, got.Status)
	assert.True(t, got.CreatedAt.Equal(createdAt))
	assert.Nil(t, got.CompletedAt)
}

func TestReportJobStore_CreateDuplicate(t *testing.T) {
	t.Parallel()

	store := newJobStore(t)
	ctx := context.Background()

	job := models.NewRunningReportJob("01HREPORT", time.Now().UTC())
	require.NoError(t, store.Create(ctx, job))

	err := store.Create(ctx, job)

	assert.ErrorIs(t, err, ErrReportJobAlreadyExists)
}

func TestReportJobStore_Complete(t *testing.T) {
	t.Parallel()

	store := newJobStore(t)
	ctx := context.Background()

	job := models.NewRunningReportJob("01HREPORT", time.Now().UTC())
	require.NoError(t, store.Create(ctx, job))

	completedAt := time.Now().UTC()
	require.NoError(t, store.Complete(ctx, "01HREPORT", "reports/report_01HREPORT.csv", completedAt))

	got, err := store.Get(ctx, "01HREPORT")
	require.NoError(t, err)
	assert.Equal(t, models.ReportComplete, got.Status)
	assert.Equal(t, "reports/report_01HREPORT.csv", got.ResultHandle)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(completedAt))
}

func TestReportJobStore_Fail(t *testing.T) {
	t.Parallel()

	store := newJobStore(t)
	ctx := context.Background()

	job := models.NewRunningReportJob("01HREPORT", time.Now().UTC())
	require.NoError(t, store.Create(ctx, job))

	require.NoError(t, store.Fail(ctx, "01HREPORT", "data unavailable", time.Now().UTC()))

	got, err := store.Get(ctx, "01HREPORT")
	require.NoError(t, err)
	assert.Equal(t, models.ReportFailed, got.Status)
	assert.Equal(t, "data unavailable", got.FailureReason)
	assert.Empty(t, got.ResultHandle)
}

func TestReportJobStore_TerminalStateIsFinal(t *testing.T) {
	t.Parallel()

	store := newJobStore(t)
	ctx := context.Background()

	job := models.NewRunningReportJob("01HREPORT", time.Now().UTC())
	require.NoError(t, store.Create(ctx, job))
	require.NoError(t, store.Complete(ctx, "01HREPORT", "handle", time.Now().UTC()))

	assert.ErrorIs(t, store.Complete(ctx, "01HREPORT", "other", time.Now().UTC()), ErrReportJobNotRunning)
	assert.ErrorIs(t, store.Fail(ctx, "01HREPORT", "late failure", time.Now().UTC()), ErrReportJobNotRunning)

	// The first transition's result is untouched
	got, err := store.Get(ctx, "01HREPORT")
	require.NoError(t, err)
	assert.Equal(t, models.ReportComplete, got.Status)
	assert.Equal(t, "handle", got.ResultHandle)
}

func TestReportJobStore_GetUnknown(t *testing.T) {
	t.Parallel()

	store := newJobStore(t)

	_, err := store.Get(context.Background(), "01HUNKNOWN")

	assert.ErrorIs(t, err, ErrReportJobNotFound)
}

func TestReportJobStore_GetStorageFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fileStorage := fsmocks.NewMockFileStorage(ctrl)
	store := NewReportJobStore(fileStorage)

	fileStorage.EXPECT().Get(gomock.Any(), "report-jobs/01HREPORT.json").
		Return(nil, errors.New("permission denied"))

	_, err := store.Get(context.Background(), "01HREPORT")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrReportJobNotFound)
}
