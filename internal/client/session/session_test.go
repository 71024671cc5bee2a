package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/gateway"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/errs"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

type fakeAPI struct {
	creds *gateway.Credentials
	user  *models.User
	err   error
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*gateway.Credentials, error) {
	return f.creds, f.err
}

func (f *fakeAPI) Register(ctx context.Context, username, email, password string) (*gateway.Credentials, error) {
	return f.creds, f.err
}

func (f *fakeAPI) Me(ctx context.Context) (*models.User, error) {
	return f.user, f.err
}

type memStore struct {
	token string
}

func (m *memStore) Load() (string, error) { return m.token, nil }
func (m *memStore) Save(t string) error   { m.token = t; return nil }
func (m *memStore) Clear() error          { m.token = ""; return nil }

func TestManager_LoginSuccess(t *testing.T) {
	api := &fakeAPI{creds: &gateway.Credentials{Token: "tok", User: models.User{ID: "u1", Username: "alice"}}}
	store := &memStore{}
	m := NewManager(api, store)

	require.NoError(t, m.Login(context.Background(), "a@b.c", "secret1"))
	assert.Equal(t, Authenticated, m.State())
	assert.Equal(t, "alice", m.User().Username)
	assert.Equal(t, "tok", store.token)
}

func TestManager_LoginFailureReturnsToAnonymous(t *testing.T) {
	api := &fakeAPI{err: errs.ErrUnauthorized}
	store := &memStore{}
	m := NewManager(api, store)

	err := m.Login(context.Background(), "a@b.c", "wrong")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, Anonymous, m.State())
	assert.Nil(t, m.User())
	assert.Empty(t, store.token)
}

func TestManager_RegisterLogsIn(t *testing.T) {
	api := &fakeAPI{creds: &gateway.Credentials{Token: "tok", User: models.User{ID: "u1"}}}
	m := NewManager(api, &memStore{})

	require.NoError(t, m.Register(context.Background(), "alice", "a@b.c", "secret1"))
	assert.Equal(t, Authenticated, m.State())
}

func TestManager_Logout(t *testing.T) {
	api := &fakeAPI{creds: &gateway.Credentials{Token: "tok", User: models.User{ID: "u1"}}}
	store := &memStore{}
	m := NewManager(api, store)
	require.NoError(t, m.Login(context.Background(), "a@b.c", "secret1"))

	m.Logout()
	assert.Equal(t, Anonymous, m.State())
	assert.Nil(t, m.User())
	assert.Empty(t, store.token)
}

func TestManager_Resume(t *testing.T) {
	t.Run("no stored token stays anonymous", func(t *testing.T) {
		m := NewManager(&fakeAPI{}, &memStore{})
		require.NoError(t, m.Resume(context.Background()))
		assert.Equal(t, Anonymous, m.State())
	})

	t.Run("valid token authenticates", func(t *testing.T) {
		api := &fakeAPI{user: &models.User{ID: "u1", Username: "alice"}}
		m := NewManager(api, &memStore{token: "tok"})
		require.NoError(t, m.Resume(context.Background()))
		assert.Equal(t, Authenticated, m.State())
		assert.Equal(t, "u1", m.User().ID)
	})

	t.Run("rejected token is cleared without error", func(t *testing.T) {
		store := &memStore{token: "stale"}
		m := NewManager(&fakeAPI{err: errs.ErrUnauthorized}, store)
		require.NoError(t, m.Resume(context.Background()))
		assert.Equal(t, Anonymous, m.State())
		assert.Empty(t, store.token)
	})

	t.Run("network failure keeps the token", func(t *testing.T) {
		store := &memStore{token: "tok"}
		m := NewManager(&fakeAPI{err: errs.ErrNetwork}, store)
		err := m.Resume(context.Background())
		assert.ErrorIs(t, err, errs.ErrNetwork)
		assert.Equal(t, Anonymous, m.State())
		assert.Equal(t, "tok", store.token)
	})
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	store := NewFileTokenStore(path)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "missing file should read as no token")

	require.NoError(t, store.Save("tok"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing twice should not fail")
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
