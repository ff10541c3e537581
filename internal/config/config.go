package config

import (
	"filplus/pkg/serrors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// GitHub access, the reconciliation loop, background workers and graceful
// shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel is the minimum level of emitted logs (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"info" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the origins allowed to call the API. "*" allows any origin
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-default:"*" env-separator:"," yaml:"corsOrigins"`
		// Profiling exposes pprof endpoints under /debug when enabled
		Profiling bool `env:"HTTP_PROFILING" env-default:"false" yaml:"profiling"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"filplus" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// GitHub contains settings for reading the allocator registry and application issues
	GitHub struct {
		// BaseURL is the root of the GitHub REST API
		BaseURL string `env:"GITHUB_BASE_URL" env-default:"https://api.github.com" yaml:"baseUrl"`
		// Token authenticates requests. Anonymous requests are heavily rate limited
		Token string `env:"GITHUB_TOKEN" yaml:"token"`
		// Owner is the owner of the registry repository
		Owner string `env:"GITHUB_OWNER" env-default:"filecoin-project" yaml:"owner"`
		// Repo is the registry repository holding allocator files and application issues
		Repo string `env:"GITHUB_REPO" env-default:"Allocator-Registry" yaml:"repo"`
		// AllocatorsDir is the directory of allocator JSON files inside the repository
		AllocatorsDir string `env:"GITHUB_ALLOCATORS_DIR" env-default:"Allocators" yaml:"allocatorsDir"`
		// Timeout bounds a single HTTP request to GitHub
		Timeout time.Duration `env:"GITHUB_TIMEOUT" env-default:"15s" yaml:"timeout"`
		// UserAgent is sent with every request
		UserAgent string `env:"GITHUB_USER_AGENT" env-default:"filplus" yaml:"userAgent"`
		// RateLimitMaxWait is how long a request may wait for rate limit budget before failing
		RateLimitMaxWait time.Duration `env:"GITHUB_RATE_LIMIT_MAX_WAIT" env-default:"30s" yaml:"rateLimitMaxWait"`
	} `yaml:"github"`

	// Reconciler contains settings of the loop mirroring allocator files into applications
	Reconciler struct {
		// Enabled starts the loop with the serve command
		Enabled bool `env:"RECONCILER_ENABLED" env-default:"true" yaml:"enabled"`
		// Interval is the time between two ticks
		Interval time.Duration `env:"RECONCILER_INTERVAL" env-default:"1m" yaml:"interval"`
		// Concurrency is the number of applications processed in parallel within a tick
		Concurrency int `env:"RECONCILER_CONCURRENCY" env-default:"4" yaml:"concurrency"`
		// CacheCapacity bounds the number of fingerprints kept in memory
		CacheCapacity int `env:"RECONCILER_CACHE_CAPACITY" env-default:"10000" yaml:"cacheCapacity"`
	} `yaml:"reconciler"`

	// Worker contains settings of the background job workers
	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is the number of times a failing job is attempted
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// UniquePeriod deduplicates refresh requests of the same application within the period
		UniquePeriod time.Duration `env:"WORKER_UNIQUE_PERIOD" env-default:"1m" yaml:"uniquePeriod"`
		// IssueSyncInterval is the period of the issue synchronization job. Zero disables it
		IssueSyncInterval time.Duration `env:"WORKER_ISSUE_SYNC_INTERVAL" env-default:"15m" yaml:"issueSyncInterval"`
		// IssueLabel restricts synchronized issues to the ones carrying this label
		IssueLabel string `env:"WORKER_ISSUE_LABEL" env-default:"application" yaml:"issueLabel"`
	} `yaml:"worker"`

	// Application contains defaults of newly created applications
	Application struct {
		// InitialDatacap is the datacap of a new application's details projection
		InitialDatacap int64 `env:"APPLICATION_INITIAL_DATACAP" env-default:"5" yaml:"initialDatacap"`
	} `yaml:"application"`

	// Pagination contains the limits of paginated listings
	Pagination struct {
		// DefaultLimit is the page size used when none is requested
		DefaultLimit int `env:"PAGINATION_DEFAULT_LIMIT" env-default:"10" yaml:"defaultLimit"`
		// MaxLimit is the largest page size accepted
		MaxLimit int `env:"PAGINATION_MAX_LIMIT" env-default:"100" yaml:"maxLimit"`
	} `yaml:"pagination"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.GitHub.Owner == "" || c.GitHub.Repo == "":
		return serrors.With(serrors.ErrConfiguration, "github owner and repo are required")
	case c.Reconciler.Interval <= 0:
		return serrors.With(serrors.ErrConfiguration, "reconciler interval must be positive")
	case c.Reconciler.Concurrency < 1:
		return serrors.With(serrors.ErrConfiguration, "reconciler concurrency must be at least 1")
	case c.Reconciler.CacheCapacity < 1:
		return serrors.With(serrors.ErrConfiguration, "reconciler cache capacity must be at least 1")
	case c.Worker.UniquePeriod <= 0:
		return serrors.With(serrors.ErrConfiguration, "worker unique period must be positive")
	case c.Pagination.DefaultLimit < 1 || c.Pagination.MaxLimit < c.Pagination.DefaultLimit:
		return serrors.With(serrors.ErrConfiguration, "pagination limits must satisfy 1 <= default <= max")
	}

	return nil
}
