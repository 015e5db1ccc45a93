package reports

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"uptime-monitoring/internal/models"
)

var (
	ErrNoSamples             = errors.New("store has no poll samples")
	ErrInvalidTimestampOrder = errors.New("poll samples are not sorted by timestamp")
)

// Samples are checked against the context every ctxCheckInterval pairs so a
// per-store timeout can bound stores with extremely dense histories.
const ctxCheckInterval = 1024

//go:generate mockgen -source=uptime_estimator.go -destination=./mocks/uptime_estimator_mock.go -package=mocks
type UptimeEstimator interface {
	// EstimateRow computes one store's report row from its sorted poll
	// samples and business hours. "Now" is the store's latest observed
	// sample timestamp, never the wall clock, so runs are reproducible.
	EstimateRow(ctx context.Context, storeID string, samples []models.PollSample, hours []models.BusinessHoursEntry, loc *time.Location) (*models.StoreReportRow, error)
}

type uptimeEstimator struct {
	windowResolver BusinessWindowResolver
}

func NewUptimeEstimator(windowResolver BusinessWindowResolver) UptimeEstimator {
	return &uptimeEstimator{windowResolver: windowResolver}
}

// EstimateRow uses a held-last-value model: a status observed at one sample is
// assumed to persist until the next sample. The last sample's status is not
// extrapolated past the last observation, and ranges with no sample coverage
// count as downtime. Both biases are deliberate: with sparse polling we would
// rather under-report uptime than invent it.
func (e *uptimeEstimator) EstimateRow(ctx context.Context, storeID string, samples []models.PollSample, hours []models.BusinessHoursEntry, loc *time.Location) (*models.StoreReportRow, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("store %s: %w", storeID, ErrNoSamples)
	}

	// Samples arrive sorted; the newest observation defines the store's "now".
	nowLocal := samples[len(samples)-1].TimestampUTC.In(loc)

	windows := e.windowResolver.Resolve(hours, nowLocal, loc)

	hourActive, hourInactive, err := e.estimateWindow(ctx, samples, windows.LastHour, loc)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", storeID, err)
	}
	dayActive, dayInactive, err := e.estimateWindow(ctx, samples, windows.LastDay, loc)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", storeID, err)
	}
	weekActive, weekInactive, err := e.estimateWindow(ctx, samples, windows.LastWeek, loc)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", storeID, err)
	}

	return &models.StoreReportRow{
		StoreID:          storeID,
		UptimeLastHour:   round2(hourActive),
		DowntimeLastHour: round2(hourInactive),
		UptimeLastDay:    round2(dayActive / 60),
		DowntimeLastDay:  round2(dayInactive / 60),
		UptimeLastWeek:   round2(weekActive / 60),
		DowntimeLastWeek: round2(weekInactive / 60),
	}, nil
}

// estimateWindow returns active and inactive minutes for one trailing range.
// Inactive is the window's wall-clock span minus active, so gaps with no
// sample coverage default to downtime.
func (e *uptimeEstimator) estimateWindow(ctx context.Context, samples []models.PollSample, window ResolvedWindow, loc *time.Location) (active float64, inactive float64, err error) {
	if !window.OpenDuringWindow {
		return 0, 0, nil
	}

	total := window.End.Sub(window.Start).Minutes()

	for i := 0; i < len(samples)-1; i++ {
		if i%ctxCheckInterval == 0 {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return 0, 0, ctxErr
			}
		}

		pairStart := samples[i].TimestampUTC.In(loc)
		pairEnd := samples[i+1].TimestampUTC.In(loc)
		if pairEnd.Before(pairStart) {
			return 0, 0, ErrInvalidTimestampOrder
		}

		if pairStart.After(window.End) || pairEnd.Before(window.Start) {
			continue
		}

		// Clip the held-value interval to the window
		periodStart := maxTime(pairStart, window.Start)
		periodEnd := minTime(pairEnd, window.End)

		if samples[i].Status == models.StatusActive {
			active += periodEnd.Sub(periodStart).Minutes()
		}
	}

	return active, total - active, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
