package pages

import (
	"context"
	"fmt"

	"pagekit/domain/entities"
)

// SecureAreaPage drives the screen shown after a successful login.
type SecureAreaPage struct {
	*Base

	header entities.Locator
	logout entities.Locator
}

// AttachSecureArea - binds to the secure area already loaded in the browser,
// failing fast if the logout control is not displayed
func AttachSecureArea(ctx context.Context, base *Base) (*SecureAreaPage, error) {
	p := &SecureAreaPage{
		Base:   base,
		header: entities.CSS("h2"),
		logout: entities.CSS(`a[href="/logout"]`),
	}

	if err := p.WaitDisplayed(ctx, p.logout); err != nil {
		return nil, fmt.Errorf("secure area did not load: %w", err)
	}

	return p, nil
}

// LogOut - ends the session and returns to the login screen
func (p *SecureAreaPage) LogOut(ctx context.Context) (*LoginPage, error) {
	if err := p.Click(ctx, p.logout); err != nil {
		return nil, err
	}

	login, err := OpenLogin(ctx, p.Base)
	if err != nil {
		return nil, fmt.Errorf("logout did not return to login: %w", err)
	}
	return login, nil
}
