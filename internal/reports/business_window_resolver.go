package reports

import (
	"time"

	"uptime-monitoring/internal/models"
)

// ResolvedWindow is one trailing lookback range ending at the store's local
// "now". OpenDuringWindow reports whether at least one business-hours
// occurrence in the trailing week intersects the range; a closed window
// contributes zero uptime and zero downtime.
type ResolvedWindow struct {
	Start            time.Time
	End              time.Time
	OpenDuringWindow bool
}

// ResolvedWindows holds the three trailing windows for one store.
type ResolvedWindows struct {
	LastHour ResolvedWindow
	LastDay  ResolvedWindow
	LastWeek ResolvedWindow
}

//go:generate mockgen -source=business_window_resolver.go -destination=./mocks/business_window_resolver_mock.go -package=mocks
type BusinessWindowResolver interface {
	// Resolve anchors the store's business-hours entries to concrete calendar
	// days in the trailing week and marks which lookback windows they open.
	Resolve(hours []models.BusinessHoursEntry, nowLocal time.Time, loc *time.Location) *ResolvedWindows
}

type businessWindowResolver struct{}

func NewBusinessWindowResolver() BusinessWindowResolver {
	return &businessWindowResolver{}
}

func (r *businessWindowResolver) Resolve(hours []models.BusinessHoursEntry, nowLocal time.Time, loc *time.Location) *ResolvedWindows {
	if len(hours) == 0 {
		hours = alwaysOpenHours()
	}

	resolved := &ResolvedWindows{
		LastHour: ResolvedWindow{Start: nowLocal.Add(-time.Hour), End: nowLocal},
		LastDay:  ResolvedWindow{Start: nowLocal.AddDate(0, 0, -1), End: nowLocal},
		LastWeek: ResolvedWindow{Start: nowLocal.AddDate(0, 0, -7), End: nowLocal},
	}

	for _, entry := range hours {
		// Walk back over the trailing week; at most one day matches the
		// entry's weekday (cycle length 7).
		for i := 0; i < 7; i++ {
			businessDay := nowLocal.AddDate(0, 0, -i)
			if businessDay.Weekday() != entry.DayOfWeek.Weekday() {
				continue
			}

			occStart := entry.StartTimeLocal.AnchorTo(businessDay, loc)
			occEnd := entry.EndTimeLocal.AnchorTo(businessDay, loc)

			markOpen(&resolved.LastHour, occStart, occEnd, nowLocal)
			markOpen(&resolved.LastDay, occStart, occEnd, nowLocal)
			markOpen(&resolved.LastWeek, occStart, occEnd, nowLocal)
		}
	}

	return resolved
}

// markOpen flags the window open when the occurrence contains the window start
// or the local "now". Openness is a single flag per window: a trailing range is
// accounted once no matter how many entries or day-occurrences intersect it, so
// overlapping shifts cannot double-count the same interval.
func markOpen(w *ResolvedWindow, occStart, occEnd, nowLocal time.Time) {
	if w.OpenDuringWindow {
		return
	}
	if contains(occStart, occEnd, w.Start) || contains(occStart, occEnd, nowLocal) {
		w.OpenDuringWindow = true
	}
}

func contains(start, end, t time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// alwaysOpenHours synthesizes 24/7 coverage for stores with no declared
// business hours: one 00:00:00-23:59:59 entry per weekday.
func alwaysOpenHours() []models.BusinessHoursEntry {
	entries := make([]models.BusinessHoursEntry, 0, 7)
	for d := models.Monday; d <= models.Sunday; d++ {
		entries = append(entries, models.BusinessHoursEntry{
			DayOfWeek:      d,
			StartTimeLocal: models.TimeOfDay{Hour: 0, Minute: 0, Second: 0},
			EndTimeLocal:   models.TimeOfDay{Hour: 23, Minute: 59, Second: 59},
		})
	}
	return entries
}
