package repositories

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"uptime-monitoring/internal/models"
	"uptime-monitoring/internal/shared/filestorages"
)

// reportCSVHeader is the artifact's first row. Hour-window values are minutes,
// day/week-window values hours, all formatted to 2 decimal places.
var reportCSVHeader = []string{
	"store_id",
	"uptime_last_hour",
	"downtime_last_hour",
	"uptime_last_day",
	"downtime_last_day",
	"uptime_last_week",
	"downtime_last_week",
}

// ReportArtifactStore writes finished report row sets as immutable CSV
// artifacts and streams them back for download. Row order is whatever the
// orchestrator collected; consumers must not rely on it.
//
//go:generate mockgen -source=report_artifact_store.go -destination=./mocks/report_artifact_store_mock.go -package=mocks
type ReportArtifactStore interface {
	// Write serializes the rows and returns an opaque handle to the artifact.
	Write(ctx context.Context, reportID string, rows []models.StoreReportRow) (string, error)
	Open(ctx context.Context, handle string) (io.ReadCloser, error)
}

type reportArtifactStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportArtifactStore(fileStorage filestorages.FileStorage) ReportArtifactStore {
	return &reportArtifactStore{fileStorage: fileStorage, dir: "reports"}
}

func (s *reportArtifactStore) Write(ctx context.Context, reportID string, rows []models.StoreReportRow) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(reportCSVHeader); err != nil {
		return "", fmt.Errorf("failed to write report header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.StoreID,
			formatMetric(row.UptimeLastHour),
			formatMetric(row.DowntimeLastHour),
			formatMetric(row.UptimeLastDay),
			formatMetric(row.DowntimeLastDay),
			formatMetric(row.UptimeLastWeek),
			formatMetric(row.DowntimeLastWeek),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write report row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush report rows: %w", err)
	}

	handle := fmt.Sprintf("%s/report_%s.csv", s.dir, reportID)

	// A report's result set is written once and never rewritten
	_, err := s.fileStorage.Put(ctx, handle, bytes.NewReader(buf.Bytes()), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		return "", fmt.Errorf("failed to put report artifact: %w", err)
	}
	return handle, nil
}

func (s *reportArtifactStore) Open(ctx context.Context, handle string) (io.ReadCloser, error) {
	readCloser, err := s.fileStorage.Get(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get report artifact: %w", err)
	}
	return readCloser, nil
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
