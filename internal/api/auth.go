package api

import (
	"context"
	"fmt"
)

// RegisterParams are the fields the backend needs to create an account.
// Username doubles as the email address.
type RegisterParams struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session cookie. The backend expects a
// multipart form (OAuth2 password flow style) rather than JSON. On success
// the cookie is stored in the jar and persisted when a jar file is configured.
func (client *Client) Login(ctx context.Context, username, password string) error {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		Post("/auth/login")
	if err != nil {
		return fmt.Errorf("httpClient.Post(/auth/login) > %w", err)
	}
	if response.IsError() {
		return responseError(response)
	}

	if err := client.SaveCookies(); err != nil {
		return fmt.Errorf("SaveCookies > %w", err)
	}
	return nil
}

// Register creates an account and a session in one call.
func (client *Client) Register(ctx context.Context, params RegisterParams) error {
	if err := client.postJSON(ctx, "/auth/register", params, nil); err != nil {
		return err
	}
	if err := client.SaveCookies(); err != nil {
		return fmt.Errorf("SaveCookies > %w", err)
	}
	return nil
}

// Logout destroys the backend session and drops the local cookie either way.
func (client *Client) Logout(ctx context.Context) error {
	err := client.postJSON(ctx, "/auth/logout", nil, nil)
	if clearErr := client.ClearCookies(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

// Me resolves the current session cookie to a user record.
func (client *Client) Me(ctx context.Context) (User, error) {
	var user User
	if err := client.getJSON(ctx, "/auth/me", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// GoogleLoginURL returns the browser redirect target for OAuth login.
func (client *Client) GoogleLoginURL() string {
	return client.BaseURL() + "/auth/login/google"
}
