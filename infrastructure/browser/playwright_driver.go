package browser

import (
	"context"
	"fmt"
	"strings"

	"pagekit/domain/entities"
	"pagekit/domain/interfaces"
	"pagekit/infrastructure/config"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

type playwrightDriver struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	timeout float64 // milliseconds, per element operation
	logger  logrus.FieldLogger
}

// NewPlaywrightDriver - launches a Chromium session driven through playwright
func NewPlaywrightDriver(cfg config.Config, logger logrus.FieldLogger) (interfaces.Driver, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(cfg.SlowMo),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.OnDialog(func(dialog playwright.Dialog) {
		dialog.Accept()
	})

	return &playwrightDriver{
		pw:      pw,
		browser: browser,
		context: browserCtx,
		page:    page,
		timeout: float64(cfg.ElementTimeout.Milliseconds()),
		logger:  logger,
	}, nil
}

// Navigate - navigates to the specified URL
func (d *playwrightDriver) Navigate(ctx context.Context, url string) error {
	d.logger.Infof("Navigating to: %s", url)

	_, err := d.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(30000),
	})
	if err != nil {
		return &interfaces.NavigationError{URL: url, Err: err}
	}
	return nil
}

// FindElement - resolves a locator against the current page, without waiting
func (d *playwrightDriver) FindElement(ctx context.Context, locator entities.Locator) (interfaces.Element, error) {
	selector, err := playwrightSelector(locator)
	if err != nil {
		return nil, err
	}

	loc := d.page.Locator(selector)
	count, err := loc.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", locator, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%s: %w", locator, interfaces.ErrElementNotFound)
	}

	return &playwrightElement{loc: loc.First(), timeout: d.timeout}, nil
}

// CurrentURL - returns the current page URL
func (d *playwrightDriver) CurrentURL(ctx context.Context) (string, error) {
	return d.page.URL(), nil
}

// Title - returns the current page title
func (d *playwrightDriver) Title(ctx context.Context) (string, error) {
	return d.page.Title()
}

// Screenshot - captures the current viewport as PNG
func (d *playwrightDriver) Screenshot(ctx context.Context) ([]byte, error) {
	return d.page.Screenshot()
}

// Close - shuts the browser session down
func (d *playwrightDriver) Close() error {
	var closeErr error

	if d.context != nil {
		if err := d.context.Close(); err != nil && !isAlreadyClosed(err) {
			closeErr = fmt.Errorf("failed to close context: %w", err)
		}
		d.context = nil
	}

	if d.browser != nil {
		if err := d.browser.Close(); err != nil && !isAlreadyClosed(err) {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to close browser: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to close browser: %w", err)
			}
		}
		d.browser = nil
	}

	if d.pw != nil {
		if err := d.pw.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
		d.pw = nil
	}

	return closeErr
}

type playwrightElement struct {
	loc     playwright.Locator
	timeout float64
}

// Click - clicks the element
func (e *playwrightElement) Click(ctx context.Context) error {
	if err := e.loc.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(e.timeout),
	}); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

// SendKeys - types text into the element, replacing existing content
func (e *playwrightElement) SendKeys(ctx context.Context, text string) error {
	if err := e.loc.Fill(text, playwright.LocatorFillOptions{
		Timeout: playwright.Float(e.timeout),
	}); err != nil {
		return fmt.Errorf("type failed: %w", err)
	}
	return nil
}

// IsDisplayed - reports whether the element is visible
func (e *playwrightElement) IsDisplayed(ctx context.Context) (bool, error) {
	return e.loc.IsVisible()
}

// playwrightSelector - translates a locator into a playwright selector string
func playwrightSelector(locator entities.Locator) (string, error) {
	switch locator.Strategy {
	case entities.StrategyID:
		return fmt.Sprintf("[id=%q]", locator.Query), nil
	case entities.StrategyCSS:
		return locator.Query, nil
	case entities.StrategyName:
		return fmt.Sprintf("[name=%q]", locator.Query), nil
	case entities.StrategyXPath:
		return "xpath=" + locator.Query, nil
	default:
		return "", fmt.Errorf("unsupported locator strategy %q", locator.Strategy)
	}
}

// isAlreadyClosed - reports whether an error just means the session is gone
func isAlreadyClosed(err error) bool {
	s := err.Error()
	return strings.Contains(s, "closed") || strings.Contains(s, "target closed")
}
