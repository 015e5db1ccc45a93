package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"uptime-monitoring/internal/models"
	"uptime-monitoring/internal/reports"

	"github.com/go-chi/chi/v5"
)

// ReportStatusResponse is the body returned while a report is not Complete.
type ReportStatusResponse struct {
	Status string `json:"status"`
}

type getReportHandler struct {
	reportService reports.ReportService
}

func NewGetReportHandler(reportService reports.ReportService) AppHttpHandler {
	return &getReportHandler{
		reportService: reportService,
	}
}

// Handle processes GET /get_report/{reportID} requests. Running and Failed
// jobs answer with their status; Complete jobs stream the CSV artifact.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	reportID := chi.URLParam(r, "reportID")

	job, err := h.reportService.Get(r.Context(), reportID)
	if err != nil {
		return err
	}

	if job.Status != models.ReportComplete {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return json.NewEncoder(w).Encode(ReportStatusResponse{Status: string(job.Status)})
	}

	artifact, err := h.reportService.OpenResult(r.Context(), job.ResultHandle)
	if err != nil {
		return err
	}
	defer artifact.Close()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("report_%s.csv", reportID)))
	w.WriteHeader(http.StatusOK)
	_, err = io.Copy(w, artifact)
	return err
}
