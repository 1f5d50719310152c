// Command pagekit-demo drives the login flow of the configured application
// end to end, as a smoke check of the configured driver and base URL.
package main

import (
	"context"
	"fmt"
	"os"

	"pagekit/application/pages"
	"pagekit/infrastructure/browser"
	"pagekit/infrastructure/config"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	driver, err := browser.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}
	defer driver.Close()

	username := os.Getenv("PAGEKIT_USERNAME")
	if username == "" {
		username = "tomsmith"
	}
	password := os.Getenv("PAGEKIT_PASSWORD")
	if password == "" {
		password = "SuperSecretPassword!"
	}

	ctx := context.Background()
	base := pages.NewBase(driver, cfg, logger)

	login, err := pages.OpenLogin(ctx, base)
	if err != nil {
		return err
	}

	if err := login.LogIn(ctx, username, password); err != nil {
		return err
	}

	secure, err := pages.AttachSecureArea(ctx, base)
	if err != nil {
		failed, ferr := login.FailureMessagePresent(ctx)
		if ferr == nil && failed {
			return fmt.Errorf("login rejected for user %s", username)
		}
		return err
	}
	logger.Infof("Logged in as %s", username)

	if _, err := secure.LogOut(ctx); err != nil {
		return err
	}
	logger.Info("Logged out, flow complete")

	return nil
}
