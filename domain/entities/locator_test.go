package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocatorConstructors(t *testing.T) {
	tests := []struct {
		locator  Locator
		strategy Strategy
		query    string
	}{
		{ID("login"), StrategyID, "login"},
		{CSS(".flash.success"), StrategyCSS, ".flash.success"},
		{Name("username"), StrategyName, "username"},
		{XPath("//button"), StrategyXPath, "//button"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.strategy, tt.locator.Strategy)
		assert.Equal(t, tt.query, tt.locator.Query)
	}
}

func TestLocatorValueEquality(t *testing.T) {
	assert.Equal(t, ID("login"), ID("login"))
	assert.NotEqual(t, ID("login"), CSS("login"))
	assert.NotEqual(t, ID("login"), ID("logout"))

	// comparable, usable as a map key
	seen := map[Locator]bool{ID("login"): true}
	assert.True(t, seen[ID("login")])
}

func TestLocatorString(t *testing.T) {
	assert.Equal(t, "id=login", ID("login").String())
	assert.Equal(t, "css=.flash.error", CSS(".flash.error").String())
	assert.Equal(t, "name=password", Name("password").String())
	assert.Equal(t, "xpath=//h2", XPath("//h2").String())
}
