package http

import (
	"encoding/json"
	"net/http"

	"uptime-monitoring/internal/reports"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// TriggerReportResponse is the body returned when a report run is accepted.
type TriggerReportResponse struct {
	ReportID string `json:"report_id"`
}

type triggerReportHandler struct {
	reportService reports.ReportService
}

func NewTriggerReportHandler(reportService reports.ReportService) AppHttpHandler {
	return &triggerReportHandler{
		reportService: reportService,
	}
}

// Handle processes POST /trigger_report requests. The report is generated in
// the background; the caller polls GET /get_report/{reportID} for the result.
func (h *triggerReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	reportID, err := h.reportService.Trigger(r.Context())
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	return json.NewEncoder(w).Encode(TriggerReportResponse{ReportID: reportID})
}
