package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const DefaultMaxRetryAttempts = 3

// Client is a typed HTTP client for the Estud.IA backend. Every method maps
// to exactly one endpoint. The session cookie issued by /auth/login is kept in
// a cookie jar and, when a jar file is configured, survives between runs.
type Client struct {
	httpClient       *resty.Client
	baseURL          *url.URL
	jar              http.CookieJar
	cookieFile       string
	maxRetryAttempts uint
}

type Option func(*Client)

// WithCookieFile persists the session cookie to path across invocations.
func WithCookieFile(path string) Option {
	return func(c *Client) {
		c.cookieFile = path
	}
}

// WithRetryAttempts overrides the retry budget for idempotent requests.
func WithRetryAttempts(attempts uint) Option {
	return func(c *Client) {
		c.maxRetryAttempts = attempts
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse(%s) > %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookiejar.New > %w", err)
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	httpClient.SetCookieJar(jar)
	// resty v3 silently drops DELETE request bodies unless this is enabled;
	// the batch delete-various endpoints take an id list in the body.
	httpClient.SetAllowMethodDeletePayload(true)

	client := &Client{
		httpClient:       httpClient,
		baseURL:          parsed,
		jar:              jar,
		maxRetryAttempts: DefaultMaxRetryAttempts,
	}
	for _, opt := range opts {
		opt(client)
	}

	if client.cookieFile != "" {
		if err := client.loadCookies(); err != nil {
			// A broken jar file should not block the client; the user can
			// log in again.
			slog.Default().Warn("failed to load session cookies", "file", client.cookieFile, "error", err)
		}
	}
	return client, nil
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// BaseURL returns the configured backend base URL without a trailing slash.
func (client *Client) BaseURL() string {
	return strings.TrimSuffix(client.baseURL.String(), "/")
}

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (client *Client) loadCookies() error {
	contents, err := os.ReadFile(client.cookieFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("os.ReadFile(%s) > %w", client.cookieFile, err)
	}

	var stored []storedCookie
	if err := json.Unmarshal(contents, &stored); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
	}
	client.jar.SetCookies(client.baseURL, cookies)
	return nil
}

// SaveCookies writes the cookies currently held for the backend origin to the
// configured jar file. It is a no-op when no jar file was configured.
func (client *Client) SaveCookies() error {
	if client.cookieFile == "" {
		return nil
	}

	cookies := client.jar.Cookies(client.baseURL)
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value})
	}

	contents, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(client.cookieFile), 0o700); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := os.WriteFile(client.cookieFile, contents, 0o600); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", client.cookieFile, err)
	}
	return nil
}

// ClearCookies drops the in-memory session cookie and removes the jar file.
func (client *Client) ClearCookies() error {
	client.jar.SetCookies(client.baseURL, []*http.Cookie{})
	if client.cookieFile == "" {
		return nil
	}
	if err := os.Remove(client.cookieFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove(%s) > %w", client.cookieFile, err)
	}
	return nil
}

// responseError converts a non-2xx response into an *Error, keeping the
// backend's detail/message fields when the body is JSON.
func responseError(response *resty.Response) error {
	apiErr := &Error{StatusCode: response.StatusCode()}
	// Best effort: plain-text error bodies leave Detail/Message empty.
	_ = json.Unmarshal([]byte(response.String()), apiErr)
	return apiErr
}

// isRetryableError reports whether a request is worth retrying: transport
// failures, 5xx responses and rate limiting. 4xx responses are final.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == http.StatusTooManyRequests
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "EOF") {
		return true
	}
	return false
}

// withRetry wraps fn with a backoff retry loop. Only idempotent requests go
// through here; message and generation creates are issued exactly once.
func (client *Client) withRetry(ctx context.Context, fn func() error) error {
	return retry.Do(
		func() error {
			if err := fn(); err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
	)
}

// getJSON performs a GET with retries and decodes the response into out.
func (client *Client) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	return client.withRetry(ctx, func() error {
		request := client.httpClient.R().
			SetContext(ctx).
			SetResult(out)
		if len(query) > 0 {
			request.SetQueryParams(query)
		}
		response, err := request.Get(path)
		if err != nil {
			return fmt.Errorf("httpClient.Get(%s) > %w", path, err)
		}
		if response.IsError() {
			return responseError(response)
		}
		return nil
	})
}

// postJSON performs a single POST without retries. body may be nil; out may
// be nil for endpoints whose response the caller ignores.
func (client *Client) postJSON(ctx context.Context, path string, body, out any) error {
	request := client.httpClient.R().SetContext(ctx)
	if body != nil {
		request.SetBody(body)
	}
	if out != nil {
		request.SetResult(out)
	}
	response, err := request.Post(path)
	if err != nil {
		return fmt.Errorf("httpClient.Post(%s) > %w", path, err)
	}
	if response.IsError() {
		return responseError(response)
	}
	return nil
}

// deleteJSON performs a DELETE, optionally with a JSON body (the batch source
// deletion endpoints take an id list in the request body).
func (client *Client) deleteJSON(ctx context.Context, path string, body, out any) error {
	request := client.httpClient.R().SetContext(ctx)
	if body != nil {
		request.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		request.SetResult(out)
	}
	response, err := request.Delete(path)
	if err != nil {
		return fmt.Errorf("httpClient.Delete(%s) > %w", path, err)
	}
	if response.IsError() {
		return responseError(response)
	}
	return nil
}
