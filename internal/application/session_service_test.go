package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htdinh/pfob-cli/internal/domain"
)

type fakeAuthAPI struct {
	login       domain.LoginResult
	loginErr    error
	register    domain.Registration
	registerErr error
	profile     domain.User
	profileErr  error

	profileCalls int
}

func (f *fakeAuthAPI) Login(context.Context, domain.Credentials) (domain.LoginResult, error) {
	if f.loginErr != nil {
		return domain.LoginResult{}, f.loginErr
	}
	return f.login, nil
}

func (f *fakeAuthAPI) Register(context.Context, domain.RegisterRequest) (domain.Registration, error) {
	if f.registerErr != nil {
		return domain.Registration{}, f.registerErr
	}
	return f.register, nil
}

func (f *fakeAuthAPI) Profile(context.Context) (domain.User, error) {
	f.profileCalls++
	if f.profileErr != nil {
		return domain.User{}, f.profileErr
	}
	return f.profile, nil
}

type memoryTokenStore struct {
	token    string
	loadErr  error
	saveErr  error
	clearErr error
}

func (m *memoryTokenStore) Load(context.Context) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	if m.token == "" {
		return "", domain.ErrTokenNotFound
	}
	return m.token, nil
}

func (m *memoryTokenStore) Save(_ context.Context, token string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.token = token
	return nil
}

func (m *memoryTokenStore) Clear(context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.token = ""
	return nil
}

func TestLoginPersistsTokenAndSetsUser(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{login: domain.LoginResult{Token: "tok-123", User: domain.User{ID: 1, Email: "an@example.com"}}}
	tokens := &memoryTokenStore{}
	service := NewSessionService(auth, tokens, nil)

	user, err := service.Login(context.Background(), domain.Credentials{Email: "an@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "tok-123", tokens.token)

	session := service.Session()
	assert.True(t, session.Authenticated())
	assert.Equal(t, "tok-123", session.Token)
}

func TestLoginPropagatesBackendErrorUnchanged(t *testing.T) {
	t.Parallel()

	backendErr := &domain.RequestError{Status: http.StatusBadRequest, Message: "wrong password"}
	auth := &fakeAuthAPI{loginErr: backendErr}
	tokens := &memoryTokenStore{}
	service := NewSessionService(auth, tokens, nil)

	_, err := service.Login(context.Background(), domain.Credentials{})
	require.Error(t, err)
	assert.Equal(t, backendErr, err)
	assert.Empty(t, tokens.token)
	assert.False(t, service.Session().Authenticated())
}

func TestRegisterReturnsFullPayload(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{register: domain.Registration{
		Token:    "tok-456",
		User:     domain.User{ID: 2, FullName: "Binh"},
		Identity: &domain.IdentityInfo{Phone: "0901234567"},
	}}
	tokens := &memoryTokenStore{}
	service := NewSessionService(auth, tokens, nil)

	result, err := service.Register(context.Background(), domain.RegisterRequest{FullName: "Binh"})
	require.NoError(t, err)
	require.NotNil(t, result.Identity)
	assert.Equal(t, "0901234567", result.Identity.Phone)
	assert.Equal(t, "tok-456", tokens.token)
	assert.True(t, service.Session().Authenticated())
}

func TestBootstrapWithoutTokenLeavesLoggedOut(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{}
	service := NewSessionService(auth, &memoryTokenStore{}, nil)

	service.Bootstrap(context.Background())

	session := service.Session()
	assert.False(t, session.Loading)
	assert.False(t, session.Authenticated())
	assert.Zero(t, auth.profileCalls)
}

func TestBootstrapRestoresSessionFromPersistedToken(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{profile: domain.User{ID: 7, Email: "chi@example.com"}}
	tokens := &memoryTokenStore{token: "persisted"}
	service := NewSessionService(auth, tokens, nil)

	service.Bootstrap(context.Background())

	session := service.Session()
	assert.False(t, session.Loading)
	require.True(t, session.Authenticated())
	assert.Equal(t, int64(7), session.User.ID)
	assert.Equal(t, "persisted", session.Token)
}

func TestBootstrapClearsTokenWhenProfileFetchFails(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{profileErr: &domain.RequestError{Status: http.StatusUnauthorized}}
	tokens := &memoryTokenStore{token: "stale"}
	service := NewSessionService(auth, tokens, nil)

	service.Bootstrap(context.Background())

	assert.Empty(t, tokens.token)
	assert.False(t, service.Session().Authenticated())
}

func TestBootstrapRunsOnce(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{profile: domain.User{ID: 7}}
	tokens := &memoryTokenStore{token: "persisted"}
	service := NewSessionService(auth, tokens, nil)

	service.Bootstrap(context.Background())
	service.Bootstrap(context.Background())

	assert.Equal(t, 1, auth.profileCalls)
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{login: domain.LoginResult{Token: "tok", User: domain.User{ID: 1}}}
	tokens := &memoryTokenStore{}
	service := NewSessionService(auth, tokens, nil)

	_, err := service.Login(context.Background(), domain.Credentials{})
	require.NoError(t, err)

	// even a failing token store does not surface from Logout
	tokens.clearErr = errors.New("disk full")
	service.Logout(context.Background())

	assert.False(t, service.Session().Authenticated())
}

func TestInvalidateClearsPersistedTokenAndSession(t *testing.T) {
	t.Parallel()

	auth := &fakeAuthAPI{login: domain.LoginResult{Token: "tok", User: domain.User{ID: 1}}}
	tokens := &memoryTokenStore{}
	service := NewSessionService(auth, tokens, nil)

	_, err := service.Login(context.Background(), domain.Credentials{})
	require.NoError(t, err)

	service.Invalidate(context.Background())

	assert.Empty(t, tokens.token)
	assert.False(t, service.Session().Authenticated())
}
