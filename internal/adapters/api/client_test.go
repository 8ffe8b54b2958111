package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htdinh/pfob-cli/internal/domain"
)

type memoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *memoryTokenStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", domain.ErrTokenNotFound
	}
	return s.token, nil
}

func (s *memoryTokenStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func TestClientAttachesBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"recipients": []any{}})
	}))
	defer server.Close()

	tokens := &memoryTokenStore{token: "tok-123"}
	client := NewClient(server.URL, server.Client(), tokens, nil)

	_, err := client.Recipients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientToleratesMissingToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"recipients": []any{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), &memoryTokenStore{}, nil)

	_, err := client.Recipients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientUnauthorizedFiresHook(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "jwt expired"})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), &memoryTokenStore{token: "stale"}, nil)

	hookCalls := 0
	client.SetUnauthorizedHook(func() { hookCalls++ })

	_, err := client.Accounts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, hookCalls)

	var reqErr *domain.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "jwt expired", reqErr.Message)
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantFields  int
	}{
		{
			name:        "message field wins",
			status:      http.StatusBadRequest,
			body:        `{"message":"insufficient balance"}`,
			wantMessage: "insufficient balance",
		},
		{
			name:       "validation errors carried",
			status:     http.StatusUnprocessableEntity,
			body:       `{"errors":[{"msg":"amount must be positive","param":"amount"}]}`,
			wantFields: 1,
		},
		{
			name:        "plain text body becomes message",
			status:      http.StatusBadGateway,
			body:        "upstream down\n",
			wantMessage: "upstream down",
		},
		{
			name:   "empty body keeps bare status",
			status: http.StatusInternalServerError,
			body:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := decodeError(tt.status, []byte(tt.body))

			var reqErr *domain.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.status, reqErr.Status)
			assert.Equal(t, tt.wantMessage, reqErr.Message)
			assert.Len(t, reqErr.FieldErrors, tt.wantFields)
		})
	}
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{"goals": []any{}})
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", server.Client(), nil, nil)

	_, err := client.Goals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/goals", gotPath)
}

func TestClientTokenStoreFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), failingTokenStore{}, nil)

	_, err := client.Goals(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load session token")
}

type failingTokenStore struct{}

func (failingTokenStore) Load(_ context.Context) (string, error) {
	return "", errors.New("disk unreadable")
}

func (failingTokenStore) Save(_ context.Context, _ string) error { return nil }

func (failingTokenStore) Clear(_ context.Context) error { return nil }
