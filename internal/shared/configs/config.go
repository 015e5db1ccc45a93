package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Report      ReportConfig      `mapstructure:"report" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// ReportConfig holds report generation configuration.
type ReportConfig struct {
	// WorkerCount bounds the report worker pool. 0 means GOMAXPROCS.
	WorkerCount         int    `mapstructure:"worker_count" validate:"min=0,max=256"`
	StoreTimeoutSeconds int    `mapstructure:"store_timeout_seconds" validate:"required,min=1"`
	DefaultTimezone     string `mapstructure:"default_timezone" validate:"required"`
	DataSource          string `mapstructure:"data_source" validate:"required,oneof=csv mysql"`

	CSV   CSVSourceConfig   `mapstructure:"csv"`
	MySQL MySQLSourceConfig `mapstructure:"mysql"`
}

// CSVSourceConfig holds the source file paths for the CSV-backed data repository.
// Required when data_source is "csv".
type CSVSourceConfig struct {
	PollSamplesPath   string `mapstructure:"poll_samples_path"`
	BusinessHoursPath string `mapstructure:"business_hours_path"`
	TimezonesPath     string `mapstructure:"timezones_path"`
}

// MySQLSourceConfig holds the connection settings for the MySQL-backed data
// repository. Required when data_source is "mysql".
type MySQLSourceConfig struct {
	DSN string `mapstructure:"dsn"`
}
