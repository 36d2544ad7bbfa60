package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talariafits/talaria/internal/client/storage"
	"github.com/talariafits/talaria/internal/models"
)

// memStorage is an in-memory SessionStorage for tests.
type memStorage struct {
	token    string
	hasToken bool
	users    []models.User
	hasUser  bool

	failSave bool
}

func (m *memStorage) SaveToken(ctx context.Context, token string) error {
	if m.failSave {
		return fmt.Errorf("disk full")
	}
	m.token = token
	m.hasToken = true
	return nil
}

func (m *memStorage) GetToken(ctx context.Context) (string, error) {
	if !m.hasToken {
		return "", storage.ErrTokenNotFound
	}
	return m.token, nil
}

func (m *memStorage) DeleteToken(ctx context.Context) error {
	m.token = ""
	m.hasToken = false
	return nil
}

func (m *memStorage) SaveUser(ctx context.Context, users []models.User) error {
	if m.failSave {
		return fmt.Errorf("disk full")
	}
	m.users = users
	m.hasUser = true
	return nil
}

func (m *memStorage) GetUser(ctx context.Context) ([]models.User, error) {
	if !m.hasUser {
		return nil, storage.ErrUserNotFound
	}
	return m.users, nil
}

func (m *memStorage) DeleteUser(ctx context.Context) error {
	m.users = nil
	m.hasUser = false
	return nil
}

func (m *memStorage) DeviceID(ctx context.Context) (string, error) {
	return "test-device", nil
}

var _ storage.SessionStorage = (*memStorage)(nil)

const userPayload = `[{"_id":"u-1","name":"Ana","email":"ana@example.com","sneakerSize":"9.5"}]`

func TestManager_LoadingUntilRestore(t *testing.T) {
	m := NewManager(&memStorage{}, nil)

	assert.True(t, m.Loading())
	assert.False(t, m.IsAuthenticated())

	m.Restore(context.Background())

	assert.False(t, m.Loading())
	assert.False(t, m.IsAuthenticated())
}

func TestManager_Login(t *testing.T) {
	store := &memStorage{}
	m := NewManager(store, nil)
	ctx := context.Background()

	err := m.Login(ctx, "token-abc", []byte(userPayload))

	require.NoError(t, err)
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "token-abc", m.Token())
	assert.Equal(t, "u-1", m.UserID())
	assert.Equal(t, "Ana", m.User().Name)

	// Both entries must be persisted
	assert.True(t, store.hasToken)
	require.Len(t, store.users, 1)
	assert.Equal(t, "u-1", store.users[0].ID)
}

func TestManager_Login_ObjectPayload(t *testing.T) {
	store := &memStorage{}
	m := NewManager(store, nil)

	err := m.Login(context.Background(), "token-abc", []byte(`{"_id":"u-2","name":"Ben"}`))

	require.NoError(t, err)
	assert.Equal(t, "u-2", m.UserID())
	// Normalized to the array form on disk
	require.Len(t, store.users, 1)
}

func TestManager_Login_InvalidPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty array", payload: `[]`},
		{name: "missing id", payload: `[{"name":"nobody"}]`},
		{name: "garbage", payload: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(&memStorage{}, nil)

			err := m.Login(context.Background(), "token-abc", []byte(tt.payload))

			require.Error(t, err)
			assert.False(t, m.IsAuthenticated())
			assert.Empty(t, m.Token())
		})
	}
}

func TestManager_Login_PersistFailure(t *testing.T) {
	m := NewManager(&memStorage{failSave: true}, nil)

	err := m.Login(context.Background(), "token-abc", []byte(userPayload))

	require.Error(t, err)
	assert.False(t, m.IsAuthenticated())
}

func TestManager_RestoreRoundtrip(t *testing.T) {
	store := &memStorage{}
	ctx := context.Background()

	first := NewManager(store, nil)
	require.NoError(t, first.Login(ctx, "token-abc", []byte(userPayload)))

	// A fresh manager over the same store simulates an app relaunch
	second := NewManager(store, nil)
	second.Restore(ctx)

	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "token-abc", second.Token())
	assert.Equal(t, "u-1", second.UserID())
	assert.Equal(t, "Ana", second.User().Name)
}

func TestManager_Restore_TokenWithoutUser(t *testing.T) {
	store := &memStorage{}
	require.NoError(t, store.SaveToken(context.Background(), "orphan-token"))

	m := NewManager(store, nil)
	m.Restore(context.Background())

	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
}

func TestManager_Restore_EmptyUserRecord(t *testing.T) {
	store := &memStorage{}
	ctx := context.Background()
	require.NoError(t, store.SaveToken(ctx, "token"))
	require.NoError(t, store.SaveUser(ctx, []models.User{}))

	m := NewManager(store, nil)
	m.Restore(ctx)

	assert.False(t, m.IsAuthenticated())
}

func TestManager_Logout(t *testing.T) {
	store := &memStorage{}
	ctx := context.Background()
	m := NewManager(store, nil)
	require.NoError(t, m.Login(ctx, "token-abc", []byte(userPayload)))

	m.Logout(ctx)

	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
	assert.Nil(t, m.User())
	assert.False(t, store.hasToken)
	assert.False(t, store.hasUser)

	// A relaunch must come up unauthenticated
	fresh := NewManager(store, nil)
	fresh.Restore(ctx)
	assert.False(t, fresh.IsAuthenticated())
}

func TestManager_SetUser(t *testing.T) {
	store := &memStorage{}
	ctx := context.Background()
	m := NewManager(store, nil)
	require.NoError(t, m.Login(ctx, "token-abc", []byte(userPayload)))

	updated := &models.User{ID: "u-1", Name: "Ana Maria", SneakerSize: "10"}
	require.NoError(t, m.SetUser(ctx, updated))

	assert.Equal(t, "Ana Maria", m.User().Name)
	require.Len(t, store.users, 1)
	assert.Equal(t, "Ana Maria", store.users[0].Name)
}

func TestManager_SetUser_NilLogsOut(t *testing.T) {
	store := &memStorage{}
	ctx := context.Background()
	m := NewManager(store, nil)
	require.NoError(t, m.Login(ctx, "token-abc", []byte(userPayload)))

	require.NoError(t, m.SetUser(ctx, nil))

	assert.False(t, m.IsAuthenticated())
	assert.False(t, store.hasToken)
}
