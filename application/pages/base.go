package pages

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"pagekit/domain/entities"
	"pagekit/domain/interfaces"
	"pagekit/infrastructure/config"

	"github.com/sirupsen/logrus"
)

// Base is the vocabulary every page object is built from. It is the only
// component that talks to the driver; concrete pages compose a Base and
// express user workflows through its primitives.
//
// A Base borrows its driver from the enclosing test and never creates or
// closes it. Every primitive resolves its locator freshly, so a handle from
// an earlier call can never go stale in between.
type Base struct {
	driver  interfaces.Driver
	baseURL string
	timeout time.Duration
	logger  logrus.FieldLogger
}

// NewBase - wraps a driver with a resolved base URL and element wait budget
func NewBase(driver interfaces.Driver, cfg config.Config, logger logrus.FieldLogger) *Base {
	return &Base{
		driver:  driver,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.ElementTimeout,
		logger:  logger,
	}
}

// Driver - exposes the underlying driver for collaborators like the harness
func (b *Base) Driver() interfaces.Driver {
	return b.driver
}

// Visit - navigates to a path, resolving relative paths against the base URL
func (b *Base) Visit(ctx context.Context, path string) error {
	target := path
	if u, err := url.Parse(path); err != nil || !u.IsAbs() {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		target = b.baseURL + path
	}

	return b.driver.Navigate(ctx, target)
}

// Find - resolves a locator against the current page state
func (b *Base) Find(ctx context.Context, locator entities.Locator) (interfaces.Element, error) {
	return b.driver.FindElement(ctx, locator)
}

// Click - resolves a locator and clicks the element
func (b *Base) Click(ctx context.Context, locator entities.Locator) error {
	b.logger.Infof("Clicking on: %s", locator)

	el, err := b.Find(ctx, locator)
	if err != nil {
		return err
	}
	return el.Click(ctx)
}

// Type - resolves a locator and types text into the element
func (b *Base) Type(ctx context.Context, locator entities.Locator, text string) error {
	b.logger.Infof("Typing into: %s", locator)

	el, err := b.Find(ctx, locator)
	if err != nil {
		return err
	}
	return el.SendKeys(ctx, text)
}

// IsDisplayed - reports whether the element is visible. An absent element
// reads as not displayed: ErrElementNotFound is swallowed here, and only
// here, so tests can assert on missing banners without error plumbing.
func (b *Base) IsDisplayed(ctx context.Context, locator entities.Locator) (bool, error) {
	el, err := b.Find(ctx, locator)
	if err != nil {
		if errors.Is(err, interfaces.ErrElementNotFound) {
			return false, nil
		}
		return false, err
	}
	return el.IsDisplayed(ctx)
}

// WaitDisplayed - polls IsDisplayed until the element is visible or the
// wait budget runs out
func (b *Base) WaitDisplayed(ctx context.Context, locator entities.Locator) error {
	deadline := time.Now().Add(b.timeout)
	for {
		displayed, err := b.IsDisplayed(ctx, locator)
		if err != nil {
			return err
		}
		if displayed {
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%s not displayed after %s: %w", locator, b.timeout, interfaces.ErrElementNotFound)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}
