package reports

import (
	"testing"
	"time"

	"uptime-monitoring/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailyHours(start, end models.TimeOfDay) []models.BusinessHoursEntry {
	entries := make([]models.BusinessHoursEntry, 0, 7)
	for d := models.Monday; d <= models.Sunday; d++ {
		entries = append(entries, models.BusinessHoursEntry{
			StoreID:        "store-1",
			DayOfWeek:      d,
			StartTimeLocal: start,
			EndTimeLocal:   end,
		})
	}
	return entries
}

func TestResolve_NoBusinessHours_SynthesizesAlwaysOpen(t *testing.T) {
	t.Parallel()

	resolver := NewBusinessWindowResolver()

	// Wednesday
	nowLocal := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)
	resolved := resolver.Resolve(nil, nowLocal, time.UTC)

	assert.True(t, resolved.LastHour.OpenDuringWindow)
	assert.True(t, resolved.LastDay.OpenDuringWindow)
	assert.True(t, resolved.LastWeek.OpenDuringWindow)

	assert.Equal(t, nowLocal.Add(-time.Hour), resolved.LastHour.Start)
	assert.Equal(t, nowLocal.AddDate(0, 0, -1), resolved.LastDay.Start)
	assert.Equal(t, nowLocal.AddDate(0, 0, -7), resolved.LastWeek.Start)
	assert.Equal(t, nowLocal, resolved.LastHour.End)
	assert.Equal(t, nowLocal, resolved.LastDay.End)
	assert.Equal(t, nowLocal, resolved.LastWeek.End)
}

func TestResolve_EntryContainingNow_OpensAllWindows(t *testing.T) {
	t.Parallel()

	resolver := NewBusinessWindowResolver()

	hours := dailyHours(
		models.TimeOfDay{Hour: 8},
		models.TimeOfDay{Hour: 10},
	)

	// Wednesday 09:00, inside the 08:00-10:00 shift
	nowLocal := time.Date(2023, 1, 25, 9, 0, 0, 0, time.UTC)
	resolved := resolver.Resolve(hours, nowLocal, time.UTC)

	assert.True(t, resolved.LastHour.OpenDuringWindow)
	assert.True(t, resolved.LastDay.OpenDuringWindow)
	assert.True(t, resolved.LastWeek.OpenDuringWindow)
}

func TestResolve_ShiftOnOtherWeekday_AllWindowsClosed(t *testing.T) {
	t.Parallel()

	resolver := NewBusinessWindowResolver()

	// Monday-only shift; neither a window start nor "now" falls inside its
	// anchored occurrence, so no window opens
	hours := []models.BusinessHoursEntry{
		{
			StoreID:        "store-1",
			DayOfWeek:      models.Monday,
			StartTimeLocal: models.TimeOfDay{Hour: 8},
			EndTimeLocal:   models.TimeOfDay{Hour: 10},
		},
	}

	// Wednesday 09:00
	nowLocal := time.Date(2023, 1, 25, 9, 0, 0, 0, time.UTC)
	resolved := resolver.Resolve(hours, nowLocal, time.UTC)

	assert.False(t, resolved.LastHour.OpenDuringWindow)
	assert.False(t, resolved.LastDay.OpenDuringWindow)
	assert.False(t, resolved.LastWeek.OpenDuringWindow)
}

func TestResolve_WindowStartInsideOccurrence_Opens(t *testing.T) {
	t.Parallel()

	resolver := NewBusinessWindowResolver()

	// Shift ended before "now" but the last-hour window starts inside it
	hours := []models.BusinessHoursEntry{
		{
			StoreID:        "store-1",
			DayOfWeek:      models.Wednesday,
			StartTimeLocal: models.TimeOfDay{Hour: 8},
			EndTimeLocal:   models.TimeOfDay{Hour: 10, Minute: 30},
		},
	}

	// Wednesday 11:00; last-hour window starts at 10:00, inside 08:00-10:30
	nowLocal := time.Date(2023, 1, 25, 11, 0, 0, 0, time.UTC)
	resolved := resolver.Resolve(hours, nowLocal, time.UTC)

	assert.True(t, resolved.LastHour.OpenDuringWindow)
}

func TestResolve_WeekdayConventionAnchorsCorrectDay(t *testing.T) {
	t.Parallel()

	// 2023-01-25 is a Wednesday; models.Wednesday (2) must map onto it
	require.Equal(t, time.Wednesday, time.Date(2023, 1, 25, 0, 0, 0, 0, time.UTC).Weekday())
	assert.Equal(t, time.Wednesday, models.Wednesday.Weekday())
	assert.Equal(t, time.Monday, models.Monday.Weekday())
	assert.Equal(t, time.Sunday, models.Sunday.Weekday())
}

func TestResolve_OverlappingShifts_OpenOnce(t *testing.T) {
	t.Parallel()

	resolver := NewBusinessWindowResolver()

	hours := []models.BusinessHoursEntry{
		{
			StoreID:        "store-1",
			DayOfWeek:      models.Wednesday,
			StartTimeLocal: models.TimeOfDay{Hour: 8},
			EndTimeLocal:   models.TimeOfDay{Hour: 12},
		},
		{
			StoreID:        "store-1",
			DayOfWeek:      models.Wednesday,
			StartTimeLocal: models.TimeOfDay{Hour: 10},
			EndTimeLocal:   models.TimeOfDay{Hour: 14},
		},
	}

	// Wednesday 11:00, inside both shifts; openness is a single flag so the
	// trailing range cannot be accounted twice
	nowLocal := time.Date(2023, 1, 25, 11, 0, 0, 0, time.UTC)
	resolved := resolver.Resolve(hours, nowLocal, time.UTC)

	assert.True(t, resolved.LastHour.OpenDuringWindow)
	assert.True(t, resolved.LastDay.OpenDuringWindow)
	assert.True(t, resolved.LastWeek.OpenDuringWindow)
}
