package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"alostudio/internal/shared/apperrors"
	"alostudio/internal/shared/config"
	"alostudio/pkg/logger"
)

type fakeRepository struct {
	admins   map[string]*Admin
	sessions map[uuid.UUID]*Session
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		admins:   make(map[string]*Admin),
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (f *fakeRepository) GetAdminByUsername(_ context.Context, username string) (*Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, apperrors.NotFound("admin")
	}
	return admin, nil
}

func (f *fakeRepository) GetAdminByID(_ context.Context, id uuid.UUID) (*Admin, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, apperrors.NotFound("admin")
}

func (f *fakeRepository) CreateAdmin(_ context.Context, admin *Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	f.admins[admin.Username] = admin
	return nil
}

func (f *fakeRepository) CreateSession(_ context.Context, session *Session) error {
	session.ID = uuid.New()
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeRepository) GetSessionByID(_ context.Context, id uuid.UUID) (*Session, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, apperrors.NotFound("session")
	}
	copied := *session
	return &copied, nil
}

func (f *fakeRepository) ExtendSession(_ context.Context, id uuid.UUID, expiresAt time.Time) error {
	f.sessions[id].ExpiresAt = expiresAt
	return nil
}

func (f *fakeRepository) RevokeSession(_ context.Context, id uuid.UUID, revokedAt time.Time) error {
	f.sessions[id].RevokedAt = &revokedAt
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
	}
}

func seededService(t *testing.T) (Service, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.CreateAdmin(context.Background(), &Admin{
		Username:     "admin",
		PasswordHash: string(hash),
	}))

	return NewService(repo, testConfig(), logger.GetDefault()), repo
}

func TestLogin(t *testing.T) {
	svc, _ := seededService(t)

	result, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.NotEmpty(t, result.SessionToken)
	assert.Equal(t, "admin", result.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, time.Minute)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "letmein"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "root", Password: "admin123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))
}

func TestVerifySlidesExpiry(t *testing.T) {
	svc, repo := seededService(t)

	login, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	// Age the session close to its deadline
	var sessionID uuid.UUID
	for id, s := range repo.sessions {
		sessionID = id
		s.ExpiresAt = time.Now().Add(time.Minute)
	}

	verified, err := svc.Verify(context.Background(), login.SessionToken)
	require.NoError(t, err)
	assert.True(t, verified.Valid)
	assert.Equal(t, "admin", verified.Username)

	// Expiry moved back out to a full window
	assert.WithinDuration(t, time.Now().Add(time.Hour), repo.sessions[sessionID].ExpiresAt, time.Minute)
}

func TestVerifyExpiredSession(t *testing.T) {
	svc, repo := seededService(t)

	login, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	for _, s := range repo.sessions {
		s.ExpiresAt = time.Now().Add(-time.Minute)
	}

	_, err = svc.Verify(context.Background(), login.SessionToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))
}

func TestVerifyAfterLogout(t *testing.T) {
	svc, _ := seededService(t)

	login, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.SessionToken))

	// The token itself is still well within its hour, but the session
	// row is revoked
	_, err = svc.Verify(context.Background(), login.SessionToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))
}

func TestVerifyGarbageToken(t *testing.T) {
	svc, _ := seededService(t)

	_, err := svc.Verify(context.Background(), "not-a-jwt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))
}

func TestVerifyTokenSignedWithWrongSecret(t *testing.T) {
	svc, repo := seededService(t)

	login, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	other := NewService(repo, &config.Config{
		Session: config.SessionConfig{Secret: "different-secret", Duration: time.Hour},
	}, logger.GetDefault())

	_, err = other.Verify(context.Background(), login.SessionToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthenticated))
}
