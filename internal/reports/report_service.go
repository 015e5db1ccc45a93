package reports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"uptime-monitoring/internal/models"
	"uptime-monitoring/internal/repositories"
	"uptime-monitoring/internal/shared/loggers"
	"uptime-monitoring/internal/shared/metrics"
	"uptime-monitoring/internal/shared/svcerrors"
	"uptime-monitoring/internal/shared/ulid"
)

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// Trigger creates a new report job, starts the run in the background and
	// returns the fresh report ID immediately.
	Trigger(ctx context.Context) (string, error)
	// Get returns the job's current lifecycle state without ever blocking on
	// the computation.
	Get(ctx context.Context, reportID string) (*models.ReportJob, error)
	// OpenResult streams a Complete job's CSV artifact.
	OpenResult(ctx context.Context, resultHandle string) (io.ReadCloser, error)

	// Start provides the context background runs inherit; Stop waits for
	// in-flight runs to finish.
	Start(ctx context.Context)
	Stop()
}

// Options tune one service instance. Zero values fall back to sensible
// defaults (GOMAXPROCS workers, 10s per store).
type Options struct {
	WorkerCount     int
	StoreTimeout    time.Duration
	DefaultTimezone string
}

type reportService struct {
	dataRepository repositories.DataRepository
	jobStore       repositories.ReportJobStore
	artifactStore  repositories.ReportArtifactStore
	estimator      UptimeEstimator

	workerCount     int
	storeTimeout    time.Duration
	defaultTimezone string

	backgroundCtx context.Context
	runsWg        sync.WaitGroup

	logger loggers.Logger
}

func NewReportService(
	dataRepository repositories.DataRepository,
	jobStore repositories.ReportJobStore,
	artifactStore repositories.ReportArtifactStore,
	estimator UptimeEstimator,
	opts Options,
	logger loggers.Logger,
) ReportService {
	workerCount := opts.WorkerCount
	if workerCount <= 0 {
		workerCount = runtime.GOMAXPROCS(0)
	}
	storeTimeout := opts.StoreTimeout
	if storeTimeout <= 0 {
		storeTimeout = 10 * time.Second
	}
	defaultTimezone := opts.DefaultTimezone
	if defaultTimezone == "" {
		defaultTimezone = "America/Chicago"
	}

	return &reportService{
		dataRepository:  dataRepository,
		jobStore:        jobStore,
		artifactStore:   artifactStore,
		estimator:       estimator,
		workerCount:     workerCount,
		storeTimeout:    storeTimeout,
		defaultTimezone: defaultTimezone,
		backgroundCtx:   context.Background(),
		logger:          logger,
	}
}

func (s *reportService) Start(ctx context.Context) {
	s.backgroundCtx = ctx
}

func (s *reportService) Stop() {
	s.runsWg.Wait()
}

func (s *reportService) Trigger(ctx context.Context) (string, error) {
	reportID := ulid.NewULID()
	job := models.NewRunningReportJob(reportID, time.Now().UTC())

	if err := s.jobStore.Create(ctx, job); err != nil {
		svcErr := errInternalReportJobStoreFailed(err)
		metricReportTriggeredTotal.WithLabelValues(svcErr.Code).Inc()
		return "", svcErr
	}
	metricReportTriggeredTotal.WithLabelValues(metrics.ValueNoError).Inc()

	loggers.Ctx(ctx).Info().
		Str(loggers.FieldReportID, reportID).
		Msg("report job created, starting background run")

	// Hand off to the background; the trigger call never blocks on the run.
	s.runsWg.Add(1)
	go func() {
		defer s.runsWg.Done()
		s.run(s.backgroundCtx, reportID)
	}()

	return reportID, nil
}

func (s *reportService) Get(ctx context.Context, reportID string) (*models.ReportJob, error) {
	job, err := s.jobStore.Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, repositories.ErrReportJobNotFound) {
			return nil, errReportNotFound(reportID, err)
		}
		return nil, errInternalReportJobStoreFailed(err)
	}
	return job, nil
}

func (s *reportService) OpenResult(ctx context.Context, resultHandle string) (io.ReadCloser, error) {
	readCloser, err := s.artifactStore.Open(ctx, resultHandle)
	if err != nil {
		return nil, errInternalReportArtifactStoreFailed(err)
	}
	return readCloser, nil
}

// run drives one full report: bulk load, per-store fan-out over a bounded
// worker pool, fan-in of rows, artifact write, job transition.
func (s *reportService) run(ctx context.Context, reportID string) {
	runLogger := s.logger.With().Str(loggers.FieldReportID, reportID).Logger()
	ctx = runLogger.WithContext(ctx)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			runLogger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("report run panic recovered: %v", r)
			s.failJob(reportID, fmt.Sprintf("run panicked: %v", r))
			s.observeRun(start, string(models.ReportFailed))
		}
	}()

	index, err := s.loadStoreIndex(ctx)
	if err != nil {
		runLogger.Error().Err(err).Msg("report data unavailable")
		s.failJob(reportID, fmt.Sprintf("data unavailable: %v", err))
		s.observeRun(start, string(models.ReportFailed))
		return
	}
	runLogger.Info().Msgf("report data loaded: %d stores", len(index.storeIDs))

	rows := s.computeAllStores(ctx, index)

	if ctx.Err() != nil {
		runLogger.Warn().Msg("report run canceled before completion")
		s.failJob(reportID, "run canceled")
		s.observeRun(start, string(models.ReportFailed))
		return
	}

	handle, err := s.artifactStore.Write(ctx, reportID, rows)
	if err != nil {
		runLogger.Error().Err(err).Msg("failed to write report artifact")
		s.failJob(reportID, fmt.Sprintf("artifact write failed: %v", err))
		s.observeRun(start, string(models.ReportFailed))
		return
	}

	if err := s.jobStore.Complete(context.WithoutCancel(ctx), reportID, handle, time.Now().UTC()); err != nil {
		runLogger.Error().Err(err).Msg("failed to mark report complete")
		s.observeRun(start, string(models.ReportFailed))
		return
	}

	runLogger.Info().
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msgf("report complete: %d rows", len(rows))
	s.observeRun(start, string(models.ReportComplete))
}

// storeIndex holds one run's bulk-loaded data partitioned by store.
type storeIndex struct {
	storeIDs  []string
	samples   map[string][]models.PollSample
	hours     map[string][]models.BusinessHoursEntry
	locations map[string]*time.Location
	defaultTZ *time.Location
}

func (s *reportService) loadStoreIndex(ctx context.Context) (*storeIndex, error) {
	storeIDs, err := s.dataRepository.ListDistinctStoreIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list store ids: %w", err)
	}
	samples, err := s.dataRepository.ListAllSamplesSortedByTimestamp(ctx)
	if err != nil {
		return nil, fmt.Errorf("list poll samples: %w", err)
	}
	hours, err := s.dataRepository.ListAllBusinessHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("list business hours: %w", err)
	}
	timezones, err := s.dataRepository.ListAllTimezones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list timezones: %w", err)
	}

	defaultTZ, err := time.LoadLocation(s.defaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("load default timezone %q: %w", s.defaultTimezone, err)
	}

	index := &storeIndex{
		storeIDs:  storeIDs,
		samples:   make(map[string][]models.PollSample),
		hours:     make(map[string][]models.BusinessHoursEntry),
		locations: make(map[string]*time.Location),
		defaultTZ: defaultTZ,
	}
	for _, sample := range samples {
		index.samples[sample.StoreID] = append(index.samples[sample.StoreID], sample)
	}
	for _, entry := range hours {
		index.hours[entry.StoreID] = append(index.hours[entry.StoreID], entry)
	}
	for _, tz := range timezones {
		loc, err := time.LoadLocation(tz.TimezoneStr)
		if err != nil {
			// Bad zone for one store falls back to the default; the run
			// is not aborted for it
			loggers.Ctx(ctx).Warn().
				Str(loggers.FieldStoreID, tz.StoreID).
				Msgf("unknown timezone %q, using default", tz.TimezoneStr)
			continue
		}
		index.locations[tz.StoreID] = loc
	}

	return index, nil
}

// computeAllStores fans store IDs out to the worker pool and fans rows back in
// over a channel. Workers never touch a shared collection; the single
// collector goroutine below owns the result slice.
func (s *reportService) computeAllStores(ctx context.Context, index *storeIndex) []models.StoreReportRow {
	storeIDCh := make(chan string)
	rowCh := make(chan models.StoreReportRow)

	var workersWg sync.WaitGroup
	for workerID := 0; workerID < s.workerCount; workerID++ {
		workerID := workerID
		workersWg.Add(1)
		go func() {
			defer workersWg.Done()
			s.runStoreWorker(ctx, workerID, index, storeIDCh, rowCh)
		}()
	}

	go func() {
		defer close(storeIDCh)
		for _, storeID := range index.storeIDs {
			select {
			case <-ctx.Done():
				// Stop dispatching; in-flight stores finish but the run
				// will not complete
				return
			case storeIDCh <- storeID:
			}
		}
	}()

	go func() {
		workersWg.Wait()
		close(rowCh)
	}()

	rows := make([]models.StoreReportRow, 0, len(index.storeIDs))
	for row := range rowCh {
		rows = append(rows, row)
	}
	return rows
}

func (s *reportService) runStoreWorker(ctx context.Context, workerID int, index *storeIndex, storeIDCh <-chan string, rowCh chan<- models.StoreReportRow) {
	workerLogger := loggers.Ctx(ctx).With().
		Int(loggers.FieldWorkerID, workerID).
		Logger()

	for storeID := range storeIDCh {
		row, err := s.computeStore(workerLogger.WithContext(ctx), storeID, index)
		if err != nil {
			// A failed store never aborts the run; its row is omitted
			svcErr, ok := svcerrors.AsServiceError(err)
			if !ok {
				svcErr = errInternalStoreComputationFailed(storeID, err)
			}
			workerLogger.Error().
				Err(svcErr.Cause).
				Str(loggers.FieldStoreID, storeID).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg("store computation failed")
			metricStoreComputedTotal.WithLabelValues(svcErr.Code).Inc()
			continue
		}
		metricStoreComputedTotal.WithLabelValues(metrics.ValueNoError).Inc()
		rowCh <- *row
	}
}

func (s *reportService) computeStore(ctx context.Context, storeID string, index *storeIndex) (row *models.StoreReportRow, err error) {
	// Bound pathological stores (extremely dense sample histories)
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Str(loggers.FieldStoreID, storeID).
				Msg("store computation panic recovered")
			row = nil
			err = errInternalStoreComputationFailed(storeID, fmt.Errorf("panic: %v", r))
		}
	}()

	samples := index.samples[storeID]
	hours := index.hours[storeID]
	loc, ok := index.locations[storeID]
	if !ok {
		loc = index.defaultTZ
	}

	return s.estimator.EstimateRow(storeCtx, storeID, samples, hours, loc)
}

func (s *reportService) failJob(reportID string, reason string) {
	// The job record must reflect the failure even when the run context is
	// already canceled
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.jobStore.Fail(ctx, reportID, reason, time.Now().UTC()); err != nil {
		s.logger.Error().Err(err).
			Str(loggers.FieldReportID, reportID).
			Msg("failed to mark report failed")
	}
}

func (s *reportService) observeRun(start time.Time, status string) {
	metricReportRunsTotal.WithLabelValues(status).Inc()
	metricReportRunDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
}
