// Package api is the HTTP adapter for the banking backend. One Client
// implements all of the ports API interfaces; every request carries the
// persisted bearer token when one exists, and any 401 response triggers the
// global unauthorized hook before the error surfaces.
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
	"net/url"
	"strings"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         ports.TokenStore
	onUnauthorized func()
	log            *slog.Logger
}

var (
	_ ports.AuthAPI         = (*Client)(nil)
	_ ports.BankAPI         = (*Client)(nil)
	_ ports.GoalsAPI        = (*Client)(nil)
	_ ports.TransactionsAPI = (*Client)(nil)
)

func NewClient(baseURL string, httpClient *http.Client, tokens ports.TokenStore, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		log:     log,
	}
}

// SetUnauthorizedHook registers the callback invoked whenever the backend
// answers 401, regardless of which endpoint was called.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.send(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	if err := c.attachToken(ctx, request); err != nil {
		return err
	}

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return decodeError(response.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// attachToken adds the bearer header when a token is persisted. A missing
// token is tolerated; the request proceeds unauthenticated and the backend
// decides.
func (c *Client) attachToken(ctx context.Context, request *http.Request) error {
	if c.tokens == nil {
		return nil
	}

	token, err := c.tokens.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			c.log.Debug("no session token for request", "path", request.URL.Path)
			return nil
		}
		return fmt.Errorf("load session token: %w", err)
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	return nil
}

// decodeError maps a non-2xx response onto domain.RequestError, extracting
// the backend's message and field-level validation errors when present.
func decodeError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
		Errors  []struct {
			Msg   string `json:"msg"`
			Param string `json:"param"`
		} `json:"errors"`
	}
	// the body may not be JSON at all; the status alone is still an error
	_ = json.Unmarshal(body, &payload)

	reqErr := &domain.RequestError{Status: status, Message: payload.Message}
	for _, fieldErr := range payload.Errors {
		reqErr.FieldErrors = append(reqErr.FieldErrors, domain.FieldError{
			Field: fieldErr.Param,
			Msg:   fieldErr.Msg,
		})
	}
	if reqErr.Message == "" && len(reqErr.FieldErrors) == 0 {
		reqErr.Message = strings.TrimSpace(string(body))
	}

	return reqErr
}
