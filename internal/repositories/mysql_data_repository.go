package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"uptime-monitoring/internal/models"

	_ "github.com/go-sql-driver/mysql"
)

// mysqlDataRepository reads the monitoring schema (poll_data, business_hours,
// timezones tables) over database/sql. Samples are ordered by timestamp with
// the insertion id as tie-break, matching the repository contract.
type mysqlDataRepository struct {
	db *sql.DB
}

func NewMySQLDataRepository(db *sql.DB) DataRepository {
	return &mysqlDataRepository{db: db}
}

// OpenMySQL opens a connection pool for the MySQL-backed data repository.
func OpenMySQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}
	db.SetMaxOpenConns(8)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

func (r *mysqlDataRepository) ListDistinctStoreIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT store_id FROM poll_data`)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct store ids: %w", err)
	}
	defer rows.Close()

	var storeIDs []string
	for rows.Next() {
		var storeID string
		if err := rows.Scan(&storeID); err != nil {
			return nil, fmt.Errorf("failed to scan store id: %w", err)
		}
		storeIDs = append(storeIDs, storeID)
	}
	return storeIDs, rows.Err()
}

func (r *mysqlDataRepository) ListAllSamplesSortedByTimestamp(ctx context.Context) ([]models.PollSample, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT store_id, timestamp_utc, status FROM poll_data ORDER BY timestamp_utc, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query poll samples: %w", err)
	}
	defer rows.Close()

	var samples []models.PollSample
	for rows.Next() {
		var (
			storeID   string
			timestamp time.Time
			rawStatus string
		)
		if err := rows.Scan(&storeID, &timestamp, &rawStatus); err != nil {
			return nil, fmt.Errorf("failed to scan poll sample: %w", err)
		}
		status, err := models.ParseStoreStatus(rawStatus)
		if err != nil {
			return nil, fmt.Errorf("invalid poll sample for store %s: %w", storeID, err)
		}
		samples = append(samples, models.PollSample{
			StoreID:      storeID,
			TimestampUTC: timestamp.UTC(),
			Status:       status,
		})
	}
	return samples, rows.Err()
}

func (r *mysqlDataRepository) ListAllBusinessHours(ctx context.Context) ([]models.BusinessHoursEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT store_id, day_of_week, start_time_local, end_time_local FROM business_hours`)
	if err != nil {
		return nil, fmt.Errorf("failed to query business hours: %w", err)
	}
	defer rows.Close()

	var entries []models.BusinessHoursEntry
	for rows.Next() {
		var (
			storeID  string
			day      int
			rawStart string
			rawEnd   string
		)
		if err := rows.Scan(&storeID, &day, &rawStart, &rawEnd); err != nil {
			return nil, fmt.Errorf("failed to scan business hours: %w", err)
		}
		dayOfWeek, err := models.NewDayOfWeek(day)
		if err != nil {
			return nil, fmt.Errorf("invalid business hours for store %s: %w", storeID, err)
		}
		startTime, err := models.ParseTimeOfDay(rawStart)
		if err != nil {
			return nil, fmt.Errorf("invalid business hours for store %s: %w", storeID, err)
		}
		endTime, err := models.ParseTimeOfDay(rawEnd)
		if err != nil {
			return nil, fmt.Errorf("invalid business hours for store %s: %w", storeID, err)
		}
		entries = append(entries, models.BusinessHoursEntry{
			StoreID:        storeID,
			DayOfWeek:      dayOfWeek,
			StartTimeLocal: startTime,
			EndTimeLocal:   endTime,
		})
	}
	return entries, rows.Err()
}

func (r *mysqlDataRepository) ListAllTimezones(ctx context.Context) ([]models.StoreTimezone, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT store_id, timezone_str FROM timezones`)
	if err != nil {
		return nil, fmt.Errorf("failed to query timezones: %w", err)
	}
	defer rows.Close()

	var timezones []models.StoreTimezone
	for rows.Next() {
		var tz models.StoreTimezone
		if err := rows.Scan(&tz.StoreID, &tz.TimezoneStr); err != nil {
			return nil, fmt.Errorf("failed to scan timezone: %w", err)
		}
		timezones = append(timezones, tz)
	}
	return timezones, rows.Err()
}
