package pages

import (
	"context"
	"fmt"
	"io"

	"pagekit/domain/entities"
	"pagekit/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// fakeDriver is an in-memory driver: a set of pages keyed by absolute URL,
// each holding elements keyed by locator. Navigation switches the current
// page; element clicks can mutate page state through callbacks, which is
// enough to script a whole login flow without a browser.
type fakeDriver struct {
	current string
	visited []string
	pages   map[string]map[entities.Locator]*fakeElement
	navErr  error
	closed  bool
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		pages: make(map[string]map[entities.Locator]*fakeElement),
	}
}

func (d *fakeDriver) addElement(url string, locator entities.Locator, el *fakeElement) {
	if d.pages[url] == nil {
		d.pages[url] = make(map[entities.Locator]*fakeElement)
	}
	d.pages[url][locator] = el
}

func (d *fakeDriver) removeElement(url string, locator entities.Locator) {
	delete(d.pages[url], locator)
}

func (d *fakeDriver) Navigate(ctx context.Context, url string) error {
	if d.navErr != nil {
		return &interfaces.NavigationError{URL: url, Err: d.navErr}
	}
	d.visited = append(d.visited, url)
	d.current = url
	return nil
}

func (d *fakeDriver) FindElement(ctx context.Context, locator entities.Locator) (interfaces.Element, error) {
	el, ok := d.pages[d.current][locator]
	if !ok {
		return nil, fmt.Errorf("%s: %w", locator, interfaces.ErrElementNotFound)
	}
	return el, nil
}

func (d *fakeDriver) CurrentURL(ctx context.Context) (string, error) {
	return d.current, nil
}

func (d *fakeDriver) Title(ctx context.Context) (string, error) {
	return "fake page", nil
}

func (d *fakeDriver) Screenshot(ctx context.Context) ([]byte, error) {
	return []byte("png"), nil
}

func (d *fakeDriver) Close() error {
	d.closed = true
	return nil
}

type fakeElement struct {
	displayed    bool
	text         string
	clicks       int
	onClick      func()
	displayedErr error
}

func (e *fakeElement) Click(ctx context.Context) error {
	e.clicks++
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}

func (e *fakeElement) SendKeys(ctx context.Context, text string) error {
	e.text = text
	return nil
}

func (e *fakeElement) IsDisplayed(ctx context.Context) (bool, error) {
	if e.displayedErr != nil {
		return false, e.displayedErr
	}
	return e.displayed, nil
}

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
