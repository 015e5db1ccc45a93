package reports

import (
	"fmt"

	"uptime-monitoring/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeReportNotFound = "REP_1000"

	codeInternalReportJobStoreFailed      = "REP_9000"
	codeInternalReportArtifactStoreFailed = "REP_9001"
	codeInternalStoreComputationFailed    = "REP_9002"
)

// errReportNotFound returns an error for lookups of unknown report IDs.
func errReportNotFound(reportID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, fmt.Sprintf("report %s not found", reportID), cause)
}

// errInternalReportJobStoreFailed returns an error when a report job store operation fails.
func errInternalReportJobStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportJobStoreFailed, fmt.Errorf("reportJobStoreFailed: %w", cause))
}

// errInternalReportArtifactStoreFailed returns an error when a report artifact store operation fails.
func errInternalReportArtifactStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportArtifactStoreFailed, fmt.Errorf("reportArtifactStoreFailed: %w", cause))
}

// errInternalStoreComputationFailed returns an error when one store's uptime computation fails.
func errInternalStoreComputationFailed(storeID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreComputationFailed, fmt.Errorf("storeComputationFailed for %s: %w", storeID, cause))
}
