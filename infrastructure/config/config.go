package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mstoykov/envconfig"
	"gopkg.in/yaml.v3"
)

// Browser driver names accepted by Config.Browser.
const (
	BrowserPlaywright = "playwright"
	BrowserSelenium   = "selenium"
)

// Config holds everything needed to build a driver and a page layer. It is
// resolved once and passed into constructors; nothing reads configuration
// from package-level state.
type Config struct {
	// BaseURL is prepended to relative paths passed to Visit. Required,
	// must be absolute.
	BaseURL string `yaml:"base_url" envconfig:"PAGEKIT_BASE_URL"`

	// Browser selects the driver implementation.
	Browser string `yaml:"browser" envconfig:"PAGEKIT_BROWSER" default:"playwright"`

	// Headless controls whether the browser window is shown.
	Headless bool `yaml:"headless" envconfig:"PAGEKIT_HEADLESS" default:"true"`

	// SlowMo delays every driver operation by the given number of
	// milliseconds. Debugging aid, zero in normal runs.
	SlowMo float64 `yaml:"slow_mo" envconfig:"PAGEKIT_SLOW_MO"`

	// DriverPath points at the chromedriver binary for the selenium
	// driver. Empty means discover it from common locations and PATH.
	DriverPath string `yaml:"driver_path" envconfig:"PAGEKIT_DRIVER_PATH"`

	// DriverPort is the port the chromedriver service listens on.
	DriverPort int `yaml:"driver_port" envconfig:"PAGEKIT_DRIVER_PORT" default:"9515"`

	// ElementTimeout bounds WaitDisplayed polling on page objects.
	ElementTimeout time.Duration `yaml:"element_timeout" envconfig:"PAGEKIT_ELEMENT_TIMEOUT" default:"5s"`

	// ArtifactsDir receives failure screenshots taken by the harness.
	// Empty disables screenshot capture.
	ArtifactsDir string `yaml:"artifacts_dir" envconfig:"PAGEKIT_ARTIFACTS_DIR"`
}

// Load - resolves configuration from a .env file (optional) and environment variables
func Load() (Config, error) {
	// .env file is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile - resolves configuration from a YAML file
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{
		Browser:        BrowserPlaywright,
		Headless:       true,
		DriverPort:     9515,
		ElementTimeout: 5 * time.Second,
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validate - checks required fields and value ranges
func (c Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required (set PAGEKIT_BASE_URL)")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("base URL %q must be absolute", c.BaseURL)
	}

	switch c.Browser {
	case BrowserPlaywright, BrowserSelenium:
	default:
		return fmt.Errorf("unknown browser %q (expected %q or %q)", c.Browser, BrowserPlaywright, BrowserSelenium)
	}

	if c.ElementTimeout <= 0 {
		return fmt.Errorf("element timeout must be positive, got %s", c.ElementTimeout)
	}

	return nil
}
