package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"uptime-monitoring/internal/models"
	"uptime-monitoring/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSourceFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newCSVRepository(t *testing.T, pollSamples, businessHours, timezones string) DataRepository {
	t.Helper()
	dir := t.TempDir()
	return NewCSVDataRepository(configs.CSVSourceConfig{
		PollSamplesPath:   writeSourceFile(t, dir, "store_status.csv", pollSamples),
		BusinessHoursPath: writeSourceFile(t, dir, "business_hours.csv", businessHours),
		TimezonesPath:     writeSourceFile(t, dir, "timezones.csv", timezones),
	})
}

const emptyBusinessHoursCSV = "store_id,day,start_time_local,end_time_local\n"
const emptyTimezonesCSV = "store_id,timezone_str\n"

func TestCSVDataRepository_SamplesSortedStably(t *testing.T) {
	t.Parallel()

	repo := newCSVRepository(t,
		"store_id,status,timestamp_utc\n"+
			"store-2,active,2023-01-25 10:00:00\n"+
			"store-1,inactive,2023-01-25 09:00:00\n"+
			"store-3,active,2023-01-25 10:00:00\n",
		emptyBusinessHoursCSV, emptyTimezonesCSV)

	samples, err := repo.ListAllSamplesSortedByTimestamp(context.Background())

	require.NoError(t, err)
	require.Len(t, samples, 3)
	assert.Equal(t, "store-1", samples[0].StoreID)
	// Equal timestamps keep their file order
	assert.Equal(t, "store-2", samples[1].StoreID)
	assert.Equal(t, "store-3", samples[2].StoreID)
	assert.Equal(t, models.StatusInactive, samples[0].Status)
	assert.True(t, samples[0].TimestampUTC.Equal(time.Date(2023, 1, 25, 9, 0, 0, 0, time.UTC)))
}

func TestCSVDataRepository_ParsesFractionalZonedTimestamps(t *testing.T) {
	t.Parallel()

	repo := newCSVRepository(t,
		"store_id,status,timestamp_utc\n"+
			"store-1,active,2023-01-25 18:13:22.47922 UTC\n",
		emptyBusinessHoursCSV, emptyTimezonesCSV)

	samples, err := repo.ListAllSamplesSortedByTimestamp(context.Background())

	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.True(t, samples[0].TimestampUTC.Equal(
		time.Date(2023, 1, 25, 18, 13, 22, 479220000, time.UTC)))
}

func TestCSVDataRepository_DistinctStoreIDs(t *testing.T) {
	t.Parallel()

	repo := newCSVRepository(t,
		"store_id,status,timestamp_utc\n"+
			"store-a,active,2023-01-25 09:00:00\n"+
			"store-b,active,2023-01-25 09:30:00\n"+
			"store-a,inactive,2023-01-25 10:00:00\n",
		emptyBusinessHoursCSV, emptyTimezonesCSV)

	storeIDs, err := repo.ListDistinctStoreIDs(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"store-a", "store-b"}, storeIDs)
}

func TestCSVDataRepository_BusinessHours(t *testing.T) {
	t.Parallel()

	repo := newCSVRepository(t,
		"store_id,status,timestamp_utc\n",
		"store_id,day,start_time_local,end_time_local\n"+
			"store-a,0,09:00:00,17:30:00\n"+
			"store-a,6,10:15:00,14:00:00\n",
		emptyTimezonesCSV)

	entries, err := repo.ListAllBusinessHours(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.Monday, entries[0].DayOfWeek)
	assert.Equal(t, models.TimeOfDay{Hour: 9}, entries[0].StartTimeLocal)
	assert.Equal(t, models.TimeOfDay{Hour: 17, Minute: 30}, entries[0].EndTimeLocal)
	assert.Equal(t, models.Sunday, entries[1].DayOfWeek)
	assert.Equal(t, models.TimeOfDay{Hour: 10, Minute: 15}, entries[1].StartTimeLocal)
}

func TestCSVDataRepository_Timezones(t *testing.T) {
	t.Parallel()

	repo := newCSVRepository(t,
		"store_id,status,timestamp_utc\n",
		emptyBusinessHoursCSV,
		"store_id,timezone_str\n"+
			"store-a,America/Denver\n")

	timezones, err := repo.ListAllTimezones(context.Background())

	require.NoError(t, err)
	require.Len(t, timezones, 1)
	assert.Equal(t, models.StoreTimezone{StoreID: "store-a", TimezoneStr: "America/Denver"}, timezones[0])
}

func TestCSVDataRepository_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	repo := newCSVRepository(t,
		"store_id,status,timestamp_utc\n"+
			"store-a,offline,2023-01-25 09:00:00\n",
		emptyBusinessHoursCSV, emptyTimezonesCSV)

	_, err := repo.ListAllSamplesSortedByTimestamp(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestCSVDataRepository_RejectsInvalidDay(t *testing.T) {
	t.Parallel()

	repo := newCSVRepository(t,
		"store_id,status,timestamp_utc\n",
		"store_id,day,start_time_local,end_time_local\n"+
			"store-a,7,09:00:00,17:00:00\n",
		emptyTimezonesCSV)

	_, err := repo.ListAllBusinessHours(context.Background())

	assert.Error(t, err)
}

func TestCSVDataRepository_MissingSourceFile(t *testing.T) {
	t.Parallel()

	repo := NewCSVDataRepository(configs.CSVSourceConfig{
		PollSamplesPath:   filepath.Join(t.TempDir(), "does_not_exist.csv"),
		BusinessHoursPath: filepath.Join(t.TempDir(), "does_not_exist.csv"),
		TimezonesPath:     filepath.Join(t.TempDir(), "does_not_exist.csv"),
	})

	_, err := repo.ListAllSamplesSortedByTimestamp(context.Background())

	assert.Error(t, err)
}
