package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/estudia-app/estudia/internal/api"
)

// Auth holds the current authenticated user. It rehydrates via the "who am I"
// endpoint and derives the authenticated flag from user presence.
type Auth struct {
	mu     sync.Mutex
	client api.AuthAPI
	user   *api.User
}

func NewAuth(client api.AuthAPI) *Auth {
	return &Auth{client: client}
}

// Check resolves the session cookie to a user record. On failure the user is
// cleared; an expired session is a normal state, not a crash.
func (auth *Auth) Check(ctx context.Context) error {
	user, err := auth.client.Me(ctx)

	auth.mu.Lock()
	defer auth.mu.Unlock()
	if err != nil {
		auth.user = nil
		slog.Default().Debug("session check failed", "error", err)
		return fmt.Errorf("client.Me > %w", err)
	}
	auth.user = &user
	return nil
}

// Login exchanges credentials for a session and re-fetches the user record.
func (auth *Auth) Login(ctx context.Context, email, password string) error {
	if err := auth.client.Login(ctx, email, password); err != nil {
		return fmt.Errorf("client.Login > %w", err)
	}
	return auth.Check(ctx)
}

// Register creates an account plus session and re-fetches the user record.
func (auth *Auth) Register(ctx context.Context, params api.RegisterParams) error {
	if err := auth.client.Register(ctx, params); err != nil {
		return fmt.Errorf("client.Register > %w", err)
	}
	return auth.Check(ctx)
}

// Logout destroys the session. The local user is only cleared when the
// backend confirmed.
func (auth *Auth) Logout(ctx context.Context) error {
	if err := auth.client.Logout(ctx); err != nil {
		return fmt.Errorf("client.Logout > %w", err)
	}
	auth.mu.Lock()
	defer auth.mu.Unlock()
	auth.user = nil
	return nil
}

// CurrentUser returns the authenticated user, if any.
func (auth *Auth) CurrentUser() (api.User, bool) {
	auth.mu.Lock()
	defer auth.mu.Unlock()
	if auth.user == nil {
		return api.User{}, false
	}
	return *auth.user, true
}

func (auth *Auth) IsAuthenticated() bool {
	_, ok := auth.CurrentUser()
	return ok
}

// GoogleLoginURL returns the OAuth redirect target for browser-based login.
func (auth *Auth) GoogleLoginURL() string {
	return auth.client.GoogleLoginURL()
}
