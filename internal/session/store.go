// Package session holds the console's single source of truth for the current
// credential: the raw bearer token plus the identity derived from it.
package session

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

// Identity is what the console knows about the signed-in account, rederived
// from the token on every change and never persisted on its own.
type Identity struct {
	Email string
	Role  domain.Role
}

// RoleObserver receives the current role on subscription and after every
// session change. An empty role means unauthenticated.
type RoleObserver func(domain.Role)

// IdentityObserver receives the current identity on subscription and after
// every session change. nil means unauthenticated.
type IdentityObserver func(*Identity)

type roleSub struct {
	id int
	fn RoleObserver
}

type identitySub struct {
	id int
	fn IdentityObserver
}

// Store owns the current token and derived identity. It is constructed once
// at startup and handed to the guard, the API client and the UI; all of them
// read through it rather than holding their own copies.
type Store struct {
	storage Storage
	logger  *zap.Logger

	mu           sync.Mutex
	token        string
	identity     *Identity
	nextSubID    int
	roleSubs     []roleSub
	identitySubs []identitySub
}

// NewStore builds a store over the given storage. The store starts logged
// out; call Initialize to pick up a persisted token.
func NewStore(storage Storage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{storage: storage, logger: logger}
}

// Initialize loads any persisted token and derives identity from it. A token
// that no longer decodes leaves the store logged out but stays on disk
// untouched; this code only deletes tokens it wrote through Logout.
func (s *Store) Initialize() error {
	raw, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("load persisted token: %w", err)
	}
	if raw == "" {
		return nil
	}

	claims, err := auth.DecodeToken(raw)
	if err != nil {
		s.logger.Warn("persisted token does not decode, starting logged out", zap.Error(err))
		return nil
	}

	s.mu.Lock()
	s.token = raw
	s.identity = &Identity{Email: claims.Email(), Role: claims.Role}
	s.mu.Unlock()
	return nil
}

// SetToken persists the token, derives identity and notifies observers.
// Token and identity change together: no observer ever sees the new token
// with a stale identity. A token that does not decode is rejected without
// touching current state.
func (s *Store) SetToken(raw string) error {
	claims, err := auth.DecodeToken(raw)
	if err != nil {
		return err
	}
	if err := s.storage.Save(raw); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	identity := &Identity{Email: claims.Email(), Role: claims.Role}

	s.mu.Lock()
	s.token = raw
	s.identity = identity
	roleSubs, identitySubs := s.snapshotSubsLocked()
	s.mu.Unlock()

	s.logger.Debug("session token set", zap.String("email", identity.Email), zap.String("role", string(identity.Role)))
	notify(roleSubs, identitySubs, identity.Role, identity)
	return nil
}

// Logout clears the persisted token and in-memory identity and notifies
// observers of the absence. Logging out while already logged out is a no-op
// and publishes nothing.
func (s *Store) Logout() error {
	s.mu.Lock()
	if s.token == "" && s.identity == nil {
		s.mu.Unlock()
		return nil
	}
	s.token = ""
	s.identity = nil
	roleSubs, identitySubs := s.snapshotSubsLocked()
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		return fmt.Errorf("clear persisted token: %w", err)
	}

	s.logger.Debug("session cleared")
	notify(roleSubs, identitySubs, domain.RoleNone, nil)
	return nil
}

// Token returns the current raw token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// CurrentRole returns the current role; RoleNone when logged out.
func (s *Store) CurrentRole() domain.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return domain.RoleNone
	}
	return s.identity.Role
}

// CurrentIdentity returns a copy of the current identity, or nil when
// logged out.
func (s *Store) CurrentIdentity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	ident := *s.identity
	return &ident
}

// IsAuthenticated reports whether a decodable, unexpired token is held at
// now. This is a local liveness check: it never calls the server and can be
// stale relative to server-side revocation.
func (s *Store) IsAuthenticated(now time.Time) bool {
	raw := s.Token()
	if raw == "" {
		return false
	}
	claims, err := auth.DecodeToken(raw)
	if err != nil {
		return false
	}
	return !claims.Expired(now)
}

// ExpiresSoon reports whether the current token is within window of its
// expiry. Advisory only; false when logged out.
func (s *Store) ExpiresSoon(now time.Time, window time.Duration) bool {
	raw := s.Token()
	if raw == "" {
		return false
	}
	claims, err := auth.DecodeToken(raw)
	if err != nil {
		return false
	}
	return claims.ExpiresSoon(now, window)
}

// SubscribeRole registers an observer for role changes. The observer is
// invoked immediately with the current role, then synchronously in
// subscription order on every SetToken/Logout. The returned func removes
// the subscription.
func (s *Store) SubscribeRole(fn RoleObserver) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.roleSubs = append(s.roleSubs, roleSub{id: id, fn: fn})
	current := domain.RoleNone
	if s.identity != nil {
		current = s.identity.Role
	}
	s.mu.Unlock()

	fn(current)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.roleSubs {
			if sub.id == id {
				s.roleSubs = append(s.roleSubs[:i], s.roleSubs[i+1:]...)
				return
			}
		}
	}
}

// SubscribeIdentity registers an observer for identity changes with the same
// replay and ordering semantics as SubscribeRole.
func (s *Store) SubscribeIdentity(fn IdentityObserver) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.identitySubs = append(s.identitySubs, identitySub{id: id, fn: fn})
	var current *Identity
	if s.identity != nil {
		ident := *s.identity
		current = &ident
	}
	s.mu.Unlock()

	fn(current)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.identitySubs {
			if sub.id == id {
				s.identitySubs = append(s.identitySubs[:i], s.identitySubs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) snapshotSubsLocked() ([]roleSub, []identitySub) {
	roleSubs := append([]roleSub(nil), s.roleSubs...)
	identitySubs := append([]identitySub(nil), s.identitySubs...)
	return roleSubs, identitySubs
}

// notify runs outside the store lock so observers may read back through the
// store without deadlocking; state was already swapped as one step.
func notify(roleSubs []roleSub, identitySubs []identitySub, role domain.Role, ident *Identity) {
	for _, sub := range roleSubs {
		sub.fn(role)
	}
	for _, sub := range identitySubs {
		if ident == nil {
			sub.fn(nil)
			continue
		}
		copyIdent := *ident
		sub.fn(&copyIdent)
	}
}
