package harness

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pagekit/application/pages"
	"pagekit/domain/interfaces"
	"pagekit/infrastructure/browser"
	"pagekit/infrastructure/config"

	"github.com/sirupsen/logrus"
)

// Harness owns the driver for exactly one test: it builds the session before
// the test body runs and tears it down afterwards, so page objects can never
// outlive the session they were created against. When the test failed and an
// artifacts directory is configured, a screenshot of the final page state is
// saved before the session closes.
type Harness struct {
	t      *testing.T
	cfg    config.Config
	driver interfaces.Driver
	logger logrus.FieldLogger
}

// Option adjusts how a Harness is built.
type Option func(*Harness)

// WithDriver - injects a prebuilt driver instead of building one from config
func WithDriver(driver interfaces.Driver) Option {
	return func(h *Harness) {
		h.driver = driver
	}
}

// WithLogger - overrides the default logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// New - builds a driver for the test and registers its teardown
func New(t *testing.T, cfg config.Config, opts ...Option) *Harness {
	t.Helper()

	h := &Harness{t: t, cfg: cfg}
	for _, opt := range opts {
		opt(h)
	}

	if h.logger == nil {
		logger := logrus.New()
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		h.logger = logger
	}

	if h.driver == nil {
		driver, err := browser.New(cfg, h.logger)
		if err != nil {
			t.Fatalf("failed to initialize browser: %v", err)
		}
		h.driver = driver
	}

	t.Cleanup(func() {
		if t.Failed() {
			h.captureFailure()
		}
		if err := h.driver.Close(); err != nil {
			h.logger.Warnf("Failed to close driver: %v", err)
		}
	})

	return h
}

// Driver - the driver owned by this harness
func (h *Harness) Driver() interfaces.Driver {
	return h.driver
}

// Base - a page base bound to this harness's driver and configuration
func (h *Harness) Base() *pages.Base {
	return pages.NewBase(h.driver, h.cfg, h.logger)
}

// captureFailure - saves a screenshot of the final page state
func (h *Harness) captureFailure() {
	if h.cfg.ArtifactsDir == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	png, err := h.driver.Screenshot(ctx)
	if err != nil {
		h.logger.Warnf("Failed to capture failure screenshot: %v", err)
		return
	}

	if err := os.MkdirAll(h.cfg.ArtifactsDir, 0o755); err != nil {
		h.logger.Warnf("Failed to create artifacts directory: %v", err)
		return
	}

	name := strings.ReplaceAll(h.t.Name(), "/", "_")
	path := filepath.Join(h.cfg.ArtifactsDir, fmt.Sprintf("%s.png", name))
	if err := os.WriteFile(path, png, 0o644); err != nil {
		h.logger.Warnf("Failed to write failure screenshot: %v", err)
		return
	}

	h.logger.Infof("Saved failure screenshot to %s", path)
}
