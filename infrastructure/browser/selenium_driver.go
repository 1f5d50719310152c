package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"pagekit/domain/entities"
	"pagekit/domain/interfaces"
	"pagekit/infrastructure/config"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

type seleniumDriver struct {
	wd      selenium.WebDriver
	service *selenium.Service
	logger  logrus.FieldLogger
}

// findChromeDriver - finds the chromedriver executable path
func findChromeDriver(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured, nil
		}
		return "", fmt.Errorf("chromedriver not found at configured path %s", configured)
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("chromedriver not found; install it or set the driver path")
}

// findChromeBinary - finds the Chrome/Chromium browser executable path
func findChromeBinary() string {
	if path := os.Getenv("CHROME_BINARY_PATH"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	chromePaths := []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
	}

	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	return ""
}

// NewSeleniumDriver - starts a chromedriver service and opens a session against it
func NewSeleniumDriver(cfg config.Config, logger logrus.FieldLogger) (interfaces.Driver, error) {
	driverPath, err := findChromeDriver(cfg.DriverPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find chromedriver: %w", err)
	}
	logger.Infof("Using chromedriver at: %s", driverPath)

	service, err := selenium.NewChromeDriverService(driverPath, cfg.DriverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w", err)
	}

	caps := selenium.Capabilities{
		"browserName": "chrome",
	}

	args := []string{
		"--disable-dev-shm-usage",
		"--no-sandbox",
	}
	if cfg.Headless {
		args = append(args, "--headless=new")
	}

	chromeCaps := chrome.Capabilities{
		Args: args,
	}
	if binary := findChromeBinary(); binary != "" {
		logger.Infof("Using Chrome binary at: %s", binary)
		chromeCaps.Path = binary
	}
	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", cfg.DriverPort))
	if err != nil {
		service.Stop()
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}

	return &seleniumDriver{
		wd:      wd,
		service: service,
		logger:  logger,
	}, nil
}

// Navigate - navigates to the specified URL
func (d *seleniumDriver) Navigate(ctx context.Context, url string) error {
	d.logger.Infof("Navigating to: %s", url)

	if err := d.wd.Get(url); err != nil {
		return &interfaces.NavigationError{URL: url, Err: err}
	}
	return nil
}

// FindElement - resolves a locator against the current page, without waiting
func (d *seleniumDriver) FindElement(ctx context.Context, locator entities.Locator) (interfaces.Element, error) {
	by, err := seleniumBy(locator.Strategy)
	if err != nil {
		return nil, err
	}

	el, err := d.wd.FindElement(by, locator.Query)
	if err != nil {
		if strings.Contains(err.Error(), "no such element") {
			return nil, fmt.Errorf("%s: %w", locator, interfaces.ErrElementNotFound)
		}
		return nil, fmt.Errorf("failed to resolve %s: %w", locator, err)
	}

	return &seleniumElement{el: el}, nil
}

// CurrentURL - returns the current page URL
func (d *seleniumDriver) CurrentURL(ctx context.Context) (string, error) {
	return d.wd.CurrentURL()
}

// Title - returns the current page title
func (d *seleniumDriver) Title(ctx context.Context) (string, error) {
	return d.wd.Title()
}

// Screenshot - captures the current viewport as PNG
func (d *seleniumDriver) Screenshot(ctx context.Context) ([]byte, error) {
	return d.wd.Screenshot()
}

// Close - quits the session and stops the chromedriver service
func (d *seleniumDriver) Close() error {
	var closeErr error

	if d.wd != nil {
		if err := d.wd.Quit(); err != nil {
			closeErr = fmt.Errorf("failed to quit webdriver: %w", err)
		}
		d.wd = nil
	}

	if d.service != nil {
		if err := d.service.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop chromedriver: %w", err)
		}
		d.service = nil
	}

	return closeErr
}

type seleniumElement struct {
	el selenium.WebElement
}

// Click - clicks the element
func (e *seleniumElement) Click(ctx context.Context) error {
	if err := e.el.Click(); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

// SendKeys - types text into the element, replacing existing content
func (e *seleniumElement) SendKeys(ctx context.Context, text string) error {
	if err := e.el.Clear(); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}
	if err := e.el.SendKeys(text); err != nil {
		return fmt.Errorf("type failed: %w", err)
	}
	return nil
}

// IsDisplayed - reports whether the element is visible
func (e *seleniumElement) IsDisplayed(ctx context.Context) (bool, error) {
	return e.el.IsDisplayed()
}

// seleniumBy - translates a locator strategy into a selenium By constant
func seleniumBy(strategy entities.Strategy) (string, error) {
	switch strategy {
	case entities.StrategyID:
		return selenium.ByID, nil
	case entities.StrategyCSS:
		return selenium.ByCSSSelector, nil
	case entities.StrategyName:
		return selenium.ByName, nil
	case entities.StrategyXPath:
		return selenium.ByXPATH, nil
	default:
		return "", fmt.Errorf("unsupported locator strategy %q", strategy)
	}
}
