package pages

import (
	"context"
	"fmt"

	"pagekit/domain/entities"
)

// LoginPage drives the login screen. All its locators stay private: tests
// interact through workflow actions and yes/no queries only.
type LoginPage struct {
	*Base

	form     entities.Locator
	username entities.Locator
	password entities.Locator
	submit   entities.Locator
	success  entities.Locator
	failure  entities.Locator
}

// OpenLogin - navigates to the login screen and fails unless the form shows up
func OpenLogin(ctx context.Context, base *Base) (*LoginPage, error) {
	p := &LoginPage{
		Base:     base,
		form:     entities.ID("login"),
		username: entities.ID("username"),
		password: entities.ID("password"),
		submit:   entities.CSS(`button[type="submit"]`),
		success:  entities.CSS(".flash.success"),
		failure:  entities.CSS(".flash.error"),
	}

	if err := p.Visit(ctx, "/login"); err != nil {
		return nil, err
	}
	if err := p.WaitDisplayed(ctx, p.form); err != nil {
		return nil, fmt.Errorf("login page did not load: %w", err)
	}

	return p, nil
}

// LogIn - submits the login form with the given credentials
func (p *LoginPage) LogIn(ctx context.Context, username, password string) error {
	if err := p.Type(ctx, p.username, username); err != nil {
		return err
	}
	if err := p.Type(ctx, p.password, password); err != nil {
		return err
	}
	return p.Click(ctx, p.submit)
}

// SuccessMessagePresent - reports whether the success flash is displayed
func (p *LoginPage) SuccessMessagePresent(ctx context.Context) (bool, error) {
	return p.IsDisplayed(ctx, p.success)
}

// FailureMessagePresent - reports whether the failure flash is displayed
func (p *LoginPage) FailureMessagePresent(ctx context.Context) (bool, error) {
	return p.IsDisplayed(ctx, p.failure)
}
