package harness

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pagekit/domain/entities"
	"pagekit/domain/interfaces"
	"pagekit/infrastructure/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDriver struct {
	closed      bool
	screenshots int
}

func (d *stubDriver) Navigate(ctx context.Context, url string) error { return nil }

func (d *stubDriver) FindElement(ctx context.Context, locator entities.Locator) (interfaces.Element, error) {
	return nil, interfaces.ErrElementNotFound
}

func (d *stubDriver) CurrentURL(ctx context.Context) (string, error) { return "", nil }

func (d *stubDriver) Title(ctx context.Context) (string, error) { return "", nil }

func (d *stubDriver) Screenshot(ctx context.Context) ([]byte, error) {
	d.screenshots++
	return []byte("png-bytes"), nil
}

func (d *stubDriver) Close() error {
	d.closed = true
	return nil
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig() config.Config {
	return config.Config{
		BaseURL:        "https://example.test",
		ElementTimeout: time.Second,
	}
}

func TestHarnessClosesDriverAfterTest(t *testing.T) {
	driver := &stubDriver{}

	t.Run("borrows the driver", func(t *testing.T) {
		h := New(t, testConfig(), WithDriver(driver), WithLogger(quietLogger()))
		assert.Same(t, driver, h.Driver())
		assert.False(t, driver.closed, "driver must stay open for the test body")
	})

	assert.True(t, driver.closed, "driver must be closed once the test is over")
}

func TestHarnessBuildsPageBase(t *testing.T) {
	driver := &stubDriver{}
	h := New(t, testConfig(), WithDriver(driver), WithLogger(quietLogger()))

	base := h.Base()
	require.NotNil(t, base)
	assert.Same(t, driver, base.Driver())
}

func TestCaptureFailureWritesScreenshot(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.ArtifactsDir = dir

	driver := &stubDriver{}
	h := &Harness{t: t, cfg: cfg, driver: driver, logger: quietLogger()}

	h.captureFailure()

	assert.Equal(t, 1, driver.screenshots)
	data, err := os.ReadFile(filepath.Join(dir, "TestCaptureFailureWritesScreenshot.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestCaptureFailureDisabledWithoutArtifactsDir(t *testing.T) {
	driver := &stubDriver{}
	h := &Harness{t: t, cfg: testConfig(), driver: driver, logger: quietLogger()}

	h.captureFailure()

	assert.Zero(t, driver.screenshots)
}
