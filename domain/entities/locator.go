package entities

import "fmt"

// Strategy identifies how a locator query is interpreted by a driver.
type Strategy string

const (
	StrategyID    Strategy = "id"
	StrategyCSS   Strategy = "css"
	StrategyName  Strategy = "name"
	StrategyXPath Strategy = "xpath"
)

// Locator identifies one element within a page: a lookup strategy plus its
// query string. Locators are plain comparable values; two locators are equal
// exactly when strategy and query match. They are created once, typically as
// fields of a page object, and never mutated.
type Locator struct {
	Strategy Strategy
	Query    string
}

// ID - locator matching the element with the given id attribute
func ID(query string) Locator {
	return Locator{Strategy: StrategyID, Query: query}
}

// CSS - locator matching the first element selected by a CSS selector
func CSS(query string) Locator {
	return Locator{Strategy: StrategyCSS, Query: query}
}

// Name - locator matching the first element with the given name attribute
func Name(query string) Locator {
	return Locator{Strategy: StrategyName, Query: query}
}

// XPath - locator matching the first element selected by an XPath expression
func XPath(query string) Locator {
	return Locator{Strategy: StrategyXPath, Query: query}
}

// String - renders the locator for logs and error messages
func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Strategy, l.Query)
}
