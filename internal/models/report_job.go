package models

import "time"

// ReportStatus is the lifecycle state of a report job. A job transitions
// exactly once, Running -> Complete or Running -> Failed, and never reverts.
type ReportStatus string

const (
	ReportRunning  ReportStatus = "Running"
	ReportComplete ReportStatus = "Complete"
	ReportFailed   ReportStatus = "Failed"
)

// ReportJob tracks one asynchronous report generation run. ReportID is an
// opaque unique token assigned at creation and never reused. ResultHandle
// references the finished CSV artifact and is empty while the job is Running
// or Failed.
type ReportJob struct {
	ReportID      string       `json:"reportId"`
	Status        ReportStatus `json:"status"`
	ResultHandle  string       `json:"resultHandle,omitempty"`
	FailureReason string       `json:"failureReason,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	CompletedAt   *time.Time   `json:"completedAt,omitempty"`
}

// NewRunningReportJob creates a fresh job in the Running state.
func NewRunningReportJob(reportID string, now time.Time) *ReportJob {
	return &ReportJob{
		ReportID:  reportID,
		Status:    ReportRunning,
		CreatedAt: now,
	}
}
