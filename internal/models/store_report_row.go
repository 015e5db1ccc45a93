package models

// StoreReportRow is one store's estimated uptime/downtime over the three
// trailing windows, restricted to business hours. Hour-window values are in
// minutes, day/week-window values in hours; all rounded to 2 decimal places.
type StoreReportRow struct {
	StoreID          string
	UptimeLastHour   float64
	DowntimeLastHour float64
	UptimeLastDay    float64
	DowntimeLastDay  float64
	UptimeLastWeek   float64
	DowntimeLastWeek float64
}
