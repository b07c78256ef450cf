package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/estudia-app/estudia/internal/api"
	"github.com/estudia-app/estudia/internal/cli"
	"github.com/estudia-app/estudia/internal/config"
	"github.com/estudia-app/estudia/internal/session"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newAPIClient(cfg *config.Config) (*api.Client, error) {
	client, err := api.NewClient(
		cfg.Backend.BaseURL,
		api.WithCookieFile(cfg.Session.CookieFile),
		api.WithRetryAttempts(cfg.Backend.RetryAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("api.NewClient > %w", err)
	}
	return client, nil
}

// requireLogin resolves the stored session cookie to a user. Commands that
// touch notebooks call this first so an expired session fails with a hint
// instead of a raw 401.
func requireLogin(ctx context.Context, client *api.Client) (api.User, error) {
	auth := session.NewAuth(client)
	if err := auth.Check(ctx); err != nil {
		return api.User{}, fmt.Errorf(`you are not logged in; run "estudia login" first`)
	}
	user, _ := auth.CurrentUser()
	return user, nil
}

func parseNotebookID(arg string) (int64, error) {
	notebookID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid notebook id %q", arg)
	}
	return notebookID, nil
}

// newNotificationCenter builds the toast queue with a stdout renderer, so
// background failures surface in the terminal as they happen.
func newNotificationCenter() *session.NotificationCenter {
	return session.NewNotificationCenter(session.WithSink(func(notification session.Notification) {
		cli.RenderNotification(os.Stdout, notification)
	}))
}
