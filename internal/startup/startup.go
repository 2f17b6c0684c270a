package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"photoframe/internal/logging"

	"github.com/ilyakaznacheev/cleanenv"
)

// Build-time variables (injected via -ldflags)
var (
	Version = "dev"
	Commit  = "unknown"
)

// MinIntervalMS is the floor for the client refresh interval.
const MinIntervalMS = 250

// Config holds the server configuration.
type Config struct {
	MediaDir        string `env:"MEDIA_DIR"`
	Host            string `env:"HOST" env-default:"127.0.0.1"`
	Port            int    `env:"PORT" env-default:"8000"`
	IntervalMS      int    `env:"INTERVAL_MS" env-default:"3000"`
	AllFiles        bool   `env:"ALL_FILES" env-default:"false"`
	StatusFile      string `env:"STATUS_FILE" env-default:"/run/photoframe/screen-state"`
	OverrideMarker  string `env:"OVERRIDE_MARKER" env-default:"batch-scan"`
	CacheSize       int    `env:"META_CACHE_SIZE" env-default:"10000"`
	MetricsEnabled  bool   `env:"METRICS_ENABLED" env-default:"true"`
	WatchDrift      bool   `env:"WATCH_DRIFT" env-default:"true"`
	WarmCache       bool   `env:"WARM_METADATA" env-default:"false"`
	LogHealthChecks bool   `env:"LOG_HEALTH_CHECKS" env-default:"false"`
}

// FromEnv reads the server configuration from the environment.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}

// Finalize validates the configuration after flag overrides. args holds
// the positional CLI arguments; the first, when present, is the media
// directory and wins over MEDIA_DIR.
func (c *Config) Finalize(args []string) error {
	if len(args) > 0 {
		c.MediaDir = args[0]
	}
	if c.MediaDir == "" {
		return fmt.Errorf("no media directory given (positional argument or MEDIA_DIR)")
	}

	abs, err := filepath.Abs(c.MediaDir)
	if err != nil {
		return fmt.Errorf("resolve media directory: %w", err)
	}
	c.MediaDir = abs

	if c.IntervalMS < MinIntervalMS {
		logging.Warn("interval-ms %d below minimum, clamping to %d", c.IntervalMS, MinIntervalMS)
		c.IntervalMS = MinIntervalMS
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogSummary logs the effective configuration the way operators see it in
// the journal.
func (c *Config) LogSummary() {
	logging.Info("photoframe %s (%s) %s/%s go %s",
		Version, Commit, runtime.GOOS, runtime.GOARCH, runtime.Version())
	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  MEDIA_DIR:        %s", c.MediaDir)
	logging.Info("  LISTEN:           %s", c.Addr())
	logging.Info("  INTERVAL_MS:      %d", c.IntervalMS)
	logging.Info("  ALL_FILES:        %v", c.AllFiles)
	logging.Info("  STATUS_FILE:      %s", c.StatusFile)
	logging.Info("  OVERRIDE_MARKER:  %s", c.OverrideMarker)
	logging.Info("  META_CACHE_SIZE:  %d", c.CacheSize)
	logging.Info("  METRICS_ENABLED:  %v", c.MetricsEnabled)
	logging.Info("  WATCH_DRIFT:      %v", c.WatchDrift)
	logging.Info("  WARM_METADATA:    %v", c.WarmCache)
	logging.Info("  LOG_LEVEL:        %s", logging.GetLevel())
}

// DaemonConfig holds the motion daemon configuration.
type DaemonConfig struct {
	StatusFile string `env:"STATUS_FILE"`
	GPIOPin    string `env:"PIR_GPIO_PIN" env-default:"GPIO17"`
	QuietSecs  int    `env:"QUIET_SECS" env-default:"300"`
	Display    string `env:"DISPLAY" env-default:":0"`
	Xauthority string `env:"XAUTHORITY"`
}

// DaemonFromEnv reads the daemon configuration from the environment.
func DaemonFromEnv() (*DaemonConfig, error) {
	var cfg DaemonConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}

// Finalize validates the daemon configuration after flag overrides. The
// first positional argument, when present, is the status file path.
func (c *DaemonConfig) Finalize(args []string) error {
	if len(args) > 0 {
		c.StatusFile = args[0]
	}
	if c.StatusFile == "" {
		return fmt.Errorf("no status file given (positional argument or STATUS_FILE)")
	}

	abs, err := filepath.Abs(c.StatusFile)
	if err != nil {
		return fmt.Errorf("resolve status file: %w", err)
	}
	c.StatusFile = abs

	// xset talks to the X server; the daemon usually runs outside the
	// desktop session, so the display location is exported explicitly.
	os.Setenv("DISPLAY", c.Display)
	if c.Xauthority != "" {
		os.Setenv("XAUTHORITY", c.Xauthority)
	}
	return nil
}

// QuietPeriod returns the quiet period as a duration.
func (c *DaemonConfig) QuietPeriod() time.Duration {
	return time.Duration(c.QuietSecs) * time.Second
}
