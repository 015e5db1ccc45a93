package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"uptime-monitoring/internal/models"
	"uptime-monitoring/internal/shared/filestorages"
)

var (
	ErrReportJobNotFound      = errors.New("report job not found")
	ErrReportJobAlreadyExists = errors.New("report job already exists")
	ErrReportJobNotRunning    = errors.New("report job is not running")
)

// ReportJobStore persists report job lifecycle state. A job transitions
// exactly once out of Running; Complete and Fail reject jobs that already
// reached a terminal state. Jobs are never deleted.
//
//go:generate mockgen -source=report_job_store.go -destination=./mocks/report_job_store_mock.go -package=mocks
type ReportJobStore interface {
	Create(ctx context.Context, job *models.ReportJob) error
	Complete(ctx context.Context, reportID string, resultHandle string, completedAt time.Time) error
	Fail(ctx context.Context, reportID string, reason string, completedAt time.Time) error
	Get(ctx context.Context, reportID string) (*models.ReportJob, error)
}

type reportJobStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportJobStore(fileStorage filestorages.FileStorage) ReportJobStore {
	return &reportJobStore{fileStorage: fileStorage, dir: "report-jobs"}
}

// Create stores the job with create-if-not-exists semantics, which guarantees
// report IDs are never reused even across racing triggers.
func (s *reportJobStore) Create(ctx context.Context, job *models.ReportJob) error {
	jsonData, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal report job: %w", err)
	}

	key := s.getKey(job.ReportID)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrReportJobAlreadyExists
		}
		return fmt.Errorf("failed to put report job: %w", err)
	}
	return nil
}

func (s *reportJobStore) Complete(ctx context.Context, reportID string, resultHandle string, completedAt time.Time) error {
	return s.transition(ctx, reportID, func(job *models.ReportJob) {
		job.Status = models.ReportComplete
		job.ResultHandle = resultHandle
		job.CompletedAt = &completedAt
	})
}

func (s *reportJobStore) Fail(ctx context.Context, reportID string, reason string, completedAt time.Time) error {
	return s.transition(ctx, reportID, func(job *models.ReportJob) {
		job.Status = models.ReportFailed
		job.FailureReason = reason
		job.CompletedAt = &completedAt
	})
}

func (s *reportJobStore) Get(ctx context.Context, reportID string) (*models.ReportJob, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(reportID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportJobNotFound
		}
		return nil, fmt.Errorf("failed to get report job: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read report job: %w", err)
	}
	var job models.ReportJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report job: %w", err)
	}
	return &job, nil
}

func (s *reportJobStore) transition(ctx context.Context, reportID string, apply func(*models.ReportJob)) error {
	job, err := s.Get(ctx, reportID)
	if err != nil {
		return err
	}
	if job.Status != models.ReportRunning {
		return fmt.Errorf("%w: %s is %s", ErrReportJobNotRunning, reportID, job.Status)
	}

	apply(job)

	jsonData, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal report job: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, s.getKey(reportID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put report job: %w", err)
	}
	return nil
}

func (s *reportJobStore) getKey(reportID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, reportID)
}
