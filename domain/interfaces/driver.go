package interfaces

import (
	"context"
	"errors"
	"fmt"

	"pagekit/domain/entities"
)

// ErrElementNotFound is returned by Driver.FindElement when the locator
// matches nothing at call time. Match it with errors.Is.
var ErrElementNotFound = errors.New("element not found")

// NavigationError reports a failed navigation attempt.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// Driver defines the browser automation capability the page layer is built
// on. Implementations live in infrastructure/browser; the page layer only
// borrows a Driver and never creates or closes one.
type Driver interface {
	// Navigate navigates to an absolute URL
	Navigate(ctx context.Context, url string) error

	// FindElement resolves a locator against the current page state.
	// It does not wait: a locator matching nothing at call time fails
	// with ErrElementNotFound.
	FindElement(ctx context.Context, locator entities.Locator) (Element, error)

	// CurrentURL returns the current page URL
	CurrentURL(ctx context.Context) (string, error)

	// Title returns the current page title
	Title(ctx context.Context) (string, error)

	// Screenshot captures the current viewport as PNG
	Screenshot(ctx context.Context) ([]byte, error)

	// Close shuts the browser session down
	Close() error
}

// Element is a transient handle to one resolved page element. It is valid
// only for the operation that obtained it; callers re-resolve the locator
// for every interaction instead of caching handles.
type Element interface {
	// Click clicks the element
	Click(ctx context.Context) error

	// SendKeys types text into the element, replacing existing content
	SendKeys(ctx context.Context, text string) error

	// IsDisplayed reports whether the element is visible
	IsDisplayed(ctx context.Context) (bool, error)
}
