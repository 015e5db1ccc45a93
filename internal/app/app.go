package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "uptime-monitoring/internal/http"
	"uptime-monitoring/internal/reports"
	"uptime-monitoring/internal/repositories"
	"uptime-monitoring/internal/shared/configs"
	"uptime-monitoring/internal/shared/filestorages"
	"uptime-monitoring/internal/shared/loggers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	reportService    reports.ReportService
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "uptime-monitoring").
		Logger()

	// Initialize blob store backing job records and report artifacts
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize data repository for the configured source
	dataRepository, err := newDataRepository(config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize data repository: %w", err)
	}

	// Initialize report pipeline
	jobStore := repositories.NewReportJobStore(fileStorage)
	artifactStore := repositories.NewReportArtifactStore(fileStorage)
	windowResolver := reports.NewBusinessWindowResolver()
	estimator := reports.NewUptimeEstimator(windowResolver)
	reportLogger := appLogger.With().Str(loggers.FieldComponent, "reports").Logger()
	reportService := reports.NewReportService(
		dataRepository,
		jobStore,
		artifactStore,
		estimator,
		reports.Options{
			WorkerCount:     config.Report.WorkerCount,
			StoreTimeout:    time.Duration(config.Report.StoreTimeoutSeconds) * time.Second,
			DefaultTimezone: config.Report.DefaultTimezone,
		},
		reportLogger,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		server:        server,
		reportService: reportService,
	}, nil
}

func newDataRepository(config *configs.Config) (repositories.DataRepository, error) {
	switch config.Report.DataSource {
	case "mysql":
		db, err := repositories.OpenMySQL(config.Report.MySQL.DSN)
		if err != nil {
			return nil, err
		}
		return repositories.NewMySQLDataRepository(db), nil
	default:
		return repositories.NewCSVDataRepository(config.Report.CSV), nil
	}
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting uptime-monitoring service on port %d (log_level=%s, data_source=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Report.DataSource)

	// background report runs inherit this context
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.reportService.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel in-flight report runs
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background report runs cancelled")
	}

	// 3) Wait for report runs to finish
	app.reportService.Stop()
	app.appLogger.Info().Msg("Background report runs stopped")

	return nil
}
