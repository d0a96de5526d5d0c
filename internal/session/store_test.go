package session

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

func signToken(t *testing.T, email string, role domain.Role, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestStore_SetTokenDerivesIdentity(t *testing.T) {
	store := NewStore(NewMemoryStorage(), nil)
	token := signToken(t, "alice@example.com", domain.RoleAdmin, time.Now().Add(time.Hour))

	require.NoError(t, store.SetToken(token))

	assert.Equal(t, token, store.Token())
	assert.Equal(t, domain.RoleAdmin, store.CurrentRole())
	ident := store.CurrentIdentity()
	require.NotNil(t, ident)
	assert.Equal(t, "alice@example.com", ident.Email)
	assert.True(t, store.IsAuthenticated(time.Now()))
}

func TestStore_SetTokenRejectsMalformed(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, nil)

	require.Error(t, store.SetToken("not-a-token"))

	assert.Equal(t, "", store.Token())
	assert.Nil(t, store.CurrentIdentity())
	persisted, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "", persisted, "a rejected token must not be persisted")
}

func TestStore_SetTokenPersists(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, nil)
	token := signToken(t, "bob@example.com", domain.RoleStaff, time.Now().Add(time.Hour))

	require.NoError(t, store.SetToken(token))

	persisted, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, token, persisted)
}

func TestStore_InitializeRestoresSession(t *testing.T) {
	storage := NewMemoryStorage()
	token := signToken(t, "carol@example.com", domain.RoleSuperAdmin, time.Now().Add(time.Hour))
	require.NoError(t, storage.Save(token))

	store := NewStore(storage, nil)
	require.NoError(t, store.Initialize())

	assert.Equal(t, domain.RoleSuperAdmin, store.CurrentRole())
	ident := store.CurrentIdentity()
	require.NotNil(t, ident)
	assert.Equal(t, "carol@example.com", ident.Email)
}

func TestStore_InitializeLeavesStaleTokenUntouched(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save("corrupted-token-bytes"))

	store := NewStore(storage, nil)
	require.NoError(t, store.Initialize(), "an undecodable persisted token is not an error")

	assert.Equal(t, "", store.Token())
	assert.Nil(t, store.CurrentIdentity())
	persisted, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "corrupted-token-bytes", persisted, "initialize must not delete data it did not write")
}

func TestStore_IsAuthenticated(t *testing.T) {
	store := NewStore(NewMemoryStorage(), nil)
	now := time.Now()

	assert.False(t, store.IsAuthenticated(now), "empty session")

	expired := signToken(t, "dave@example.com", domain.RoleStaff, now.Add(-time.Second))
	require.NoError(t, store.SetToken(expired))
	assert.False(t, store.IsAuthenticated(now), "expired token regardless of role claim")
	assert.Equal(t, domain.RoleStaff, store.CurrentRole(), "role stays readable even when expired")

	live := signToken(t, "dave@example.com", domain.RoleStaff, now.Add(time.Hour))
	require.NoError(t, store.SetToken(live))
	assert.True(t, store.IsAuthenticated(now))
}

func TestStore_LogoutClearsAndIsIdempotent(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, nil)
	token := signToken(t, "erin@example.com", domain.RoleAdmin, time.Now().Add(time.Hour))
	require.NoError(t, store.SetToken(token))

	var notifications int
	store.SubscribeRole(func(domain.Role) { notifications++ })
	notifications = 0 // discard the replay

	require.NoError(t, store.Logout())
	assert.Equal(t, "", store.Token())
	assert.Nil(t, store.CurrentIdentity())
	assert.Equal(t, domain.RoleNone, store.CurrentRole())
	persisted, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "", persisted)
	assert.Equal(t, 1, notifications)

	// Second logout observes nothing and publishes nothing.
	require.NoError(t, store.Logout())
	assert.Equal(t, 1, notifications, "repeated logout must not publish again")
}

func TestStore_SubscribeReplaysCurrentValue(t *testing.T) {
	store := NewStore(NewMemoryStorage(), nil)
	token := signToken(t, "frank@example.com", domain.RoleStaff, time.Now().Add(time.Hour))
	require.NoError(t, store.SetToken(token))

	var gotRole domain.Role
	var roleCalls int
	store.SubscribeRole(func(r domain.Role) {
		gotRole = r
		roleCalls++
	})
	assert.Equal(t, 1, roleCalls, "late subscriber receives the current value immediately")
	assert.Equal(t, domain.RoleStaff, gotRole)

	var gotIdent *Identity
	store.SubscribeIdentity(func(ident *Identity) { gotIdent = ident })
	require.NotNil(t, gotIdent)
	assert.Equal(t, "frank@example.com", gotIdent.Email)
}

func TestStore_ObserversRunInSubscriptionOrder(t *testing.T) {
	store := NewStore(NewMemoryStorage(), nil)

	var order []string
	store.SubscribeRole(func(domain.Role) { order = append(order, "first") })
	store.SubscribeRole(func(domain.Role) { order = append(order, "second") })
	order = nil // drop replays

	token := signToken(t, "grace@example.com", domain.RoleAdmin, time.Now().Add(time.Hour))
	require.NoError(t, store.SetToken(token))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestStore_ObserverSeesConsistentState(t *testing.T) {
	store := NewStore(NewMemoryStorage(), nil)
	token := signToken(t, "heidi@example.com", domain.RoleSuperAdmin, time.Now().Add(time.Hour))

	// Token and identity must have changed together by the time any
	// observer runs.
	store.SubscribeRole(func(role domain.Role) {
		if role == domain.RoleNone {
			return
		}
		assert.Equal(t, token, store.Token())
		ident := store.CurrentIdentity()
		require.NotNil(t, ident)
		assert.Equal(t, "heidi@example.com", ident.Email)
	})

	require.NoError(t, store.SetToken(token))
}

func TestStore_Unsubscribe(t *testing.T) {
	store := NewStore(NewMemoryStorage(), nil)

	var calls int
	unsubscribe := store.SubscribeRole(func(domain.Role) { calls++ })
	assert.Equal(t, 1, calls)

	unsubscribe()
	token := signToken(t, "ivan@example.com", domain.RoleStaff, time.Now().Add(time.Hour))
	require.NoError(t, store.SetToken(token))
	assert.Equal(t, 1, calls, "unsubscribed observer must not fire")
}

func TestStore_ExpiresSoon(t *testing.T) {
	store := NewStore(NewMemoryStorage(), nil)
	now := time.Now()

	assert.False(t, store.ExpiresSoon(now, 0), "logged out session never warns")

	token := signToken(t, "judy@example.com", domain.RoleStaff, now.Add(2*time.Minute))
	require.NoError(t, store.SetToken(token))
	assert.True(t, store.ExpiresSoon(now, 0))
	assert.False(t, store.ExpiresSoon(now, time.Minute))
}
