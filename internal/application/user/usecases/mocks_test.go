package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/contracthub-inc/contracthub/internal/domain/user"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/session"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
)

type mockUserRepository struct {
	users  map[string]*user.User
	nextID uint
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[string]*user.User{}}
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	m.nextID++
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.users[u.Email()] = u
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	for _, u := range m.users {
		if u.ID() == userID {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := m.users[strings.ToLower(strings.TrimSpace(email))]; ok {
		return u, nil
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.users[strings.ToLower(strings.TrimSpace(email))]
	return ok, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, userID := range ids {
		if u, err := m.GetByID(ctx, userID); err == nil {
			out = append(out, u)
		}
	}
	return out, nil
}

// prefixHasher stores "h:" + password; good enough to tell hashes apart.
type prefixHasher struct{}

func (prefixHasher) Hash(p string) (string, error) { return "h:" + p, nil }

func (prefixHasher) Verify(p, hash string) error {
	if hash != "h:"+p {
		return errors.NewUnauthorizedError("mismatch")
	}
	return nil
}

// burnCountingHasher records how often a login burned a comparison.
type burnCountingHasher struct {
	prefixHasher
	burns int
}

func (h *burnCountingHasher) Burn(string) { h.burns++ }

type mockSessionStore struct {
	sessions  map[string]*session.Session
	CreateErr error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: map[string]*session.Session{}}
}

func (m *mockSessionStore) Create(ctx context.Context, sess *session.Session) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, sessionID string, role authorization.UserRole) (string, time.Time, error)
}

func (m *mockTokenIssuer) Generate(userID uint, sessionID string, role authorization.UserRole) (string, time.Time, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, sessionID, role)
	}
	return "token-" + sessionID, time.Now().Add(time.Hour), nil
}
