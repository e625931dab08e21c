package httpd

import (
	"flag"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/tiwaryash/httpd/specs"
)

const (
	DefaultPort        = 4221
	DefaultHost        = "127.0.0.1"
	DefaultWorkerCount = 4

	// DefaultDrainTimeout bounds how long Serve waits for in-flight
	// connections after shutdown before abandoning them.
	DefaultDrainTimeout = 10 * time.Second

	drainPollInterval = 50 * time.Millisecond
)

// Config is the startup configuration surface: flags with environment
// overrides. Flags win over environment, environment wins over defaults.
type Config struct {
	Port      int
	Host      string
	Directory string
	Workers   int
	Verbose   bool
}

func DefaultConfig() Config {
	return Config{
		Port:      DefaultPort,
		Host:      DefaultHost,
		Directory: ".",
		Workers:   DefaultWorkerCount,
	}
}

// ApplyEnv overlays recognized environment variables onto the config.
// Call it before RegisterFlags so explicit flags still take precedence.
func (cfg *Config) ApplyEnv() {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("HTTP_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("FILE_DIRECTORY"); v != "" {
		cfg.Directory = v
	}
	if v := os.Getenv("WORKER_THREADS"); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			cfg.Workers = workers
		}
	}
	if v := os.Getenv("HTTP_VERBOSE"); v != "" {
		if verbose, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = verbose
		}
	}
}

// RegisterFlags binds the config fields to the given flag set, using the
// current field values as defaults.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&cfg.Port, "port", cfg.Port, "port to bind the server to")
	fs.StringVar(&cfg.Host, "host", cfg.Host, "host address to bind to")
	fs.StringVar(&cfg.Directory, "directory", cfg.Directory, "directory to serve files from")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of connection workers")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
}

// Validate rejects configurations the server must not start with.
func (cfg Config) Validate() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return specs.NewError(specs.KindConfig, "port must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.Workers <= 0 {
		return specs.NewError(specs.KindConfig, "number of workers must be greater than 0")
	}
	return nil
}

// Addr returns the host:port pair to bind.
func (cfg Config) Addr() string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}
