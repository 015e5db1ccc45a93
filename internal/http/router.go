package http

import (
	"net/http"

	"uptime-monitoring/internal/reports"
	"uptime-monitoring/internal/shared/loggers"
	"uptime-monitoring/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reports.ReportService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	triggerReportHandler := NewTriggerReportHandler(reportService)
	getReportHandler := NewGetReportHandler(reportService)

	// Routes
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Welcome to the Uptime Monitoring App"))
	})
	router.Post("/trigger_report", errorHandlingAdapter(triggerReportHandler))
	router.Get("/get_report/{reportID}", errorHandlingAdapter(getReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
