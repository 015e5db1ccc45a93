package repositories

import (
	"context"
	"encoding/csv"
	"io"
	"testing"

	"uptime-monitoring/internal/models"
	"uptime-monitoring/internal/shared/filestorages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArtifactStore(t *testing.T) ReportArtifactStore {
	t.Helper()
	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return NewReportArtifactStore(fileStorage)
}

func TestReportArtifactStore_WriteAndOpen(t *testing.T) {
	t.Parallel()

	store := newArtifactStore(t)
	ctx := context.Background()

	rows := []models.StoreReportRow{
		{
			StoreID:          "store-a",
			UptimeLastHour:   30,
			DowntimeLastHour: 30,
			UptimeLastDay:    0.5,
			DowntimeLastDay:  23.5,
			UptimeLastWeek:   0.5,
			DowntimeLastWeek: 167.5,
		},
		{
			StoreID:          "store-b",
			DowntimeLastHour: 60,
			DowntimeLastDay:  24,
			DowntimeLastWeek: 168,
		},
	}

	handle, err := store.Write(ctx, "01HREPORT", rows)
	require.NoError(t, err)
	assert.Equal(t, "reports/report_01HREPORT.csv", handle)

	readCloser, err := store.Open(ctx, handle)
	require.NoError(t, err)
	defer readCloser.Close()

	records, err := csv.NewReader(readCloser).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"store_id",
		"uptime_last_hour",
		"downtime_last_hour",
		"uptime_last_day",
		"downtime_last_day",
		"uptime_last_week",
		"downtime_last_week",
	}, records[0])

	// Row order is not part of the contract
	recordsByStore := make(map[string][]string, 2)
	for _, record := range records[1:] {
		recordsByStore[record[0]] = record
	}
	assert.Equal(t, []string{"store-a", "30.00", "30.00", "0.50", "23.50", "0.50", "167.50"}, recordsByStore["store-a"])
	assert.Equal(t, []string{"store-b", "0.00", "60.00", "0.00", "24.00", "0.00", "168.00"}, recordsByStore["store-b"])
}

func TestReportArtifactStore_WriteEmptyRowSet(t *testing.T) {
	t.Parallel()

	store := newArtifactStore(t)
	ctx := context.Background()

	handle, err := store.Write(ctx, "01HEMPTY", nil)
	require.NoError(t, err)

	readCloser, err := store.Open(ctx, handle)
	require.NoError(t, err)
	defer readCloser.Close()

	records, err := csv.NewReader(readCloser).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "store_id", records[0][0])
}

func TestReportArtifactStore_ArtifactIsImmutable(t *testing.T) {
	t.Parallel()

	store := newArtifactStore(t)
	ctx := context.Background()

	first := []models.StoreReportRow{{StoreID: "store-a", UptimeLastHour: 60}}
	handle, err := store.Write(ctx, "01HREPORT", first)
	require.NoError(t, err)

	_, err = store.Write(ctx, "01HREPORT", []models.StoreReportRow{{StoreID: "store-b"}})
	require.Error(t, err)

	// First artifact survives untouched
	readCloser, err := store.Open(ctx, handle)
	require.NoError(t, err)
	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Contains(t, string(data), "store-a")
	assert.NotContains(t, string(data), "store-b")
}

func TestReportArtifactStore_OpenUnknownHandle(t *testing.T) {
	t.Parallel()

	store := newArtifactStore(t)

	_, err := store.Open(context.Background(), "reports/report_unknown.csv")

	assert.Error(t, err)
}
