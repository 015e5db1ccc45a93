package repositories

import (
	"context"

	"uptime-monitoring/internal/models"
)

// DataRepository supplies the source records a report run needs. All reads are
// bulk reads performed once at job start; the orchestrator never makes
// per-store round trips.
//
//go:generate mockgen -source=data_repository.go -destination=./mocks/data_repository_mock.go -package=mocks
type DataRepository interface {
	ListDistinctStoreIDs(ctx context.Context) ([]string, error)
	// ListAllSamplesSortedByTimestamp returns every poll sample ordered by
	// timestamp; samples at identical timestamps keep their ingestion order.
	ListAllSamplesSortedByTimestamp(ctx context.Context) ([]models.PollSample, error)
	ListAllBusinessHours(ctx context.Context) ([]models.BusinessHoursEntry, error)
	ListAllTimezones(ctx context.Context) ([]models.StoreTimezone, error)
}
