package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// TokenSource supplies the current bearer token; an empty string means
// unauthenticated. *session.Store satisfies it.
type TokenSource interface {
	Token() string
}

// Client talks to the tracker backend. One instance is shared by all
// resource calls; it is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	breaker *gobreaker.CircuitBreaker

	// OnUnauthorized runs once per 401 response, before the error is
	// returned. The TUI installs a hook that clears the session and
	// switches to the login view.
	OnUnauthorized func()
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "tracker-backend",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
		breaker: breaker,
	}
}

// envelope is the standard `{ data, message }` response wrapper. Some
// endpoints return raw arrays instead; decode falls back to the whole
// body for those.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// errEnvelope is the error response shape, including the conflict
// details a 409 carries.
type errEnvelope struct {
	Message string `json:"message"`
	Err     string `json:"error"`
	Data    struct {
		Details *ConflictDetails `json:"details"`
	} `json:"data"`
}

type httpResult struct {
	status int
	body   []byte
}

// get/post/put/patch/del are thin wrappers so resource files read like
// the endpoint table.

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, true)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out, true)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out, true)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}

// anon issues a request without the Authorization header, for the
// pre-login endpoints (auth, invitation details/accept).
func (c *Client) anon(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, method, path, body, out, false)
}

// do executes one request and maps any non-2xx response to *Error.
// The circuit breaker wraps the network exchange only: 4xx responses are
// domain outcomes and must not trip it, 5xx and transport failures do.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindValidation, Message: fmt.Sprintf("encoding request: %v", err)}
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	if authed {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	res, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		result := httpResult{status: resp.StatusCode, body: data}
		if resp.StatusCode >= 500 {
			// Counted as a failure; the result still flows back so
			// the server message survives.
			return result, errServerStatus
		}
		return result, nil
	})

	if err != nil && !errors.Is(err, errServerStatus) {
		slog.Debug("request failed", "method", method, "path", path,
			"request_id", requestID, "elapsed", time.Since(start), "err", err)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return &Error{Kind: KindNetwork, Message: "server unavailable, retrying shortly"}
		}
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}

	result := res.(httpResult)
	slog.Debug("request", "method", method, "path", path,
		"request_id", requestID, "status", result.status, "elapsed", time.Since(start))

	if result.status < 200 || result.status > 299 {
		return c.errorFrom(result)
	}

	if out == nil || result.status == http.StatusNoContent || len(result.body) == 0 {
		return nil
	}
	return decodeBody(result.body, out)
}

// errServerStatus marks a 5xx inside the breaker so it counts as a
// failure without losing the response.
var errServerStatus = errors.New("server status")

// errorFrom maps a non-2xx response to *Error per the taxonomy.
func (c *Client) errorFrom(result httpResult) error {
	var env errEnvelope
	_ = json.Unmarshal(result.body, &env)

	message := env.Message
	if message == "" {
		message = env.Err
	}

	apiErr := &Error{Status: result.status, Message: message}
	switch {
	case result.status == http.StatusUnauthorized:
		apiErr.Kind = KindUnauthorized
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
	case result.status == http.StatusForbidden:
		apiErr.Kind = KindForbidden
	case result.status == http.StatusNotFound:
		apiErr.Kind = KindNotFound
	case result.status == http.StatusConflict:
		apiErr.Kind = KindConflict
		apiErr.Details = env.Data.Details
	case result.status >= 500:
		apiErr.Kind = KindServer
	default:
		apiErr.Kind = KindValidation
	}
	return apiErr
}

// decodeBody unwraps the `{ data, message }` envelope when present and
// falls back to decoding the raw body (array endpoints).
func decodeBody(body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return &Error{Kind: KindServer, Message: fmt.Sprintf("decoding response: %v", err)}
			}
			return nil
		}
		// An envelope without data (e.g. `{ "message": "ok" }`) leaves
		// out at its zero value.
		if env.Message != "" {
			return nil
		}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindServer, Message: fmt.Sprintf("decoding response: %v", err)}
	}
	return nil
}
