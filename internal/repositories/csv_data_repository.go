package repositories

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"uptime-monitoring/internal/models"
	"uptime-monitoring/internal/shared/configs"
	"uptime-monitoring/internal/shared/validators"
)

// Source files use a few timestamp spellings ("2023-01-25 18:13:22.47922 UTC"
// being the common one).
var pollTimestampLayouts = []string{
	"2006-01-02 15:04:05.999999999 MST",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type rawPollRecord struct {
	StoreID      string `validate:"required"`
	TimestampUTC string `validate:"required"`
	Status       string `validate:"required,oneof=active inactive"`
}

type rawBusinessHoursRecord struct {
	StoreID        string `validate:"required"`
	Day            int    `validate:"min=0,max=6"`
	StartTimeLocal string `validate:"required"`
	EndTimeLocal   string `validate:"required"`
}

type rawTimezoneRecord struct {
	StoreID     string `validate:"required"`
	TimezoneStr string `validate:"required"`
}

// csvDataRepository is the file-backed DataRepository. It reads the three
// source CSVs the original monitoring feed ships (poll samples, business
// hours, timezones), validates each row and sorts samples stably by
// timestamp so equal timestamps keep their ingestion order.
type csvDataRepository struct {
	cfg      configs.CSVSourceConfig
	validate *validators.Validate
}

func NewCSVDataRepository(cfg configs.CSVSourceConfig) DataRepository {
	return &csvDataRepository{cfg: cfg, validate: validators.New()}
}

func (r *csvDataRepository) ListDistinctStoreIDs(ctx context.Context) ([]string, error) {
	samples, err := r.ListAllSamplesSortedByTimestamp(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	storeIDs := make([]string, 0)
	for _, sample := range samples {
		if _, ok := seen[sample.StoreID]; ok {
			continue
		}
		seen[sample.StoreID] = struct{}{}
		storeIDs = append(storeIDs, sample.StoreID)
	}
	return storeIDs, nil
}

func (r *csvDataRepository) ListAllSamplesSortedByTimestamp(ctx context.Context) ([]models.PollSample, error) {
	var samples []models.PollSample
	err := r.readCSV(ctx, r.cfg.PollSamplesPath, func(record map[string]string, line int) error {
		raw := rawPollRecord{
			StoreID:      record["store_id"],
			TimestampUTC: record["timestamp_utc"],
			Status:       record["status"],
		}
		if err := r.validate.Struct(&raw); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		timestamp, err := parsePollTimestamp(raw.TimestampUTC)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		status, err := models.ParseStoreStatus(raw.Status)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		samples = append(samples, models.PollSample{
			StoreID:      raw.StoreID,
			TimestampUTC: timestamp,
			Status:       status,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Stable: equal timestamps keep ingestion order
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].TimestampUTC.Before(samples[j].TimestampUTC)
	})
	return samples, nil
}

func (r *csvDataRepository) ListAllBusinessHours(ctx context.Context) ([]models.BusinessHoursEntry, error) {
	var entries []models.BusinessHoursEntry
	err := r.readCSV(ctx, r.cfg.BusinessHoursPath, func(record map[string]string, line int) error {
		day, err := strconv.Atoi(record["day"])
		if err != nil {
			return fmt.Errorf("line %d: invalid day: %w", line, err)
		}
		raw := rawBusinessHoursRecord{
			StoreID:        record["store_id"],
			Day:            day,
			StartTimeLocal: record["start_time_local"],
			EndTimeLocal:   record["end_time_local"],
		}
		if err := r.validate.Struct(&raw); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		dayOfWeek, err := models.NewDayOfWeek(raw.Day)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		startTime, err := models.ParseTimeOfDay(raw.StartTimeLocal)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		endTime, err := models.ParseTimeOfDay(raw.EndTimeLocal)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		entries = append(entries, models.BusinessHoursEntry{
			StoreID:        raw.StoreID,
			DayOfWeek:      dayOfWeek,
			StartTimeLocal: startTime,
			EndTimeLocal:   endTime,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *csvDataRepository) ListAllTimezones(ctx context.Context) ([]models.StoreTimezone, error) {
	var timezones []models.StoreTimezone
	err := r.readCSV(ctx, r.cfg.TimezonesPath, func(record map[string]string, line int) error {
		raw := rawTimezoneRecord{
			StoreID:     record["store_id"],
			TimezoneStr: record["timezone_str"],
		}
		if err := r.validate.Struct(&raw); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		timezones = append(timezones, models.StoreTimezone{
			StoreID:     raw.StoreID,
			TimezoneStr: raw.TimezoneStr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return timezones, nil
}

// readCSV streams path row by row, passing each record to handle as a
// header-name -> value map.
func (r *csvDataRepository) readCSV(ctx context.Context, path string, handle func(record map[string]string, line int) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open source file %q: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header of %q: %w", path, err)
	}

	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", path, err)
		}

		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			}
		}
		if err := handle(record, line); err != nil {
			return fmt.Errorf("invalid record in %q: %w", path, err)
		}
	}
}

func parsePollTimestamp(s string) (time.Time, error) {
	for _, layout := range pollTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp: %q", s)
}
