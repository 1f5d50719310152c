package browser

import (
	"fmt"

	"pagekit/domain/interfaces"
	"pagekit/infrastructure/config"

	"github.com/sirupsen/logrus"
)

// New - builds the driver selected by the configuration
func New(cfg config.Config, logger logrus.FieldLogger) (interfaces.Driver, error) {
	switch cfg.Browser {
	case config.BrowserPlaywright:
		return NewPlaywrightDriver(cfg, logger)
	case config.BrowserSelenium:
		return NewSeleniumDriver(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown browser %q", cfg.Browser)
	}
}
