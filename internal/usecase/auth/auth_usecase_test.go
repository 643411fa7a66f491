package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testIdentitySecret = "shared-identity-secret"
	testJWTSecret      = "0123456789abcdef0123456789abcdef"
)

type fakeSessionRepo struct {
	sessions map[string]string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]string)}
}

func (r *fakeSessionRepo) Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	r.sessions[sessionID] = userID
	return nil
}

func (r *fakeSessionRepo) GetUserID(ctx context.Context, sessionID string) (string, error) {
	if userID, ok := r.sessions[sessionID]; ok {
		return userID, nil
	}
	return "", domain.ErrSessionNotFound
}

func (r *fakeSessionRepo) Delete(ctx context.Context, sessionID string) error {
	delete(r.sessions, sessionID)
	return nil
}

type fakeProfileRepo struct {
	byUserID map[string]*domain.Profile
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return nil }
func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}
func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if p, ok := r.byUserID[userID]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}
func (r *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error { return nil }
func (r *fakeProfileRepo) SetComplete(ctx context.Context, id string, complete bool) error {
	return nil
}
func (r *fakeProfileRepo) FindCandidates(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Profile, error) {
	return nil, nil
}

func sign(userID string, issuedAt int64) string {
	mac := hmac.New(sha256.New, []byte(testIdentitySecret))
	fmt.Fprintf(mac, "%s.%d", userID, issuedAt)
	return hex.EncodeToString(mac.Sum(nil))
}

func signedRequest(userID string) *SessionRequest {
	issuedAt := time.Now().Unix()
	return &SessionRequest{
		UserID:    userID,
		IssuedAt:  issuedAt,
		Signature: sign(userID, issuedAt),
	}
}

func newFixture(profiles ...*domain.Profile) (*AuthUseCase, *fakeSessionRepo) {
	sessionRepo := newFakeSessionRepo()
	profileRepo := &fakeProfileRepo{byUserID: map[string]*domain.Profile{}}
	for _, p := range profiles {
		profileRepo.byUserID[p.UserID] = p
	}
	uc := NewAuthUseCase(sessionRepo, profileRepo, testIdentitySecret, testJWTSecret, time.Hour, zap.NewNop())
	return uc, sessionRepo
}

func TestCreateSessionMintsValidToken(t *testing.T) {
	uc, sessionRepo := newFixture()

	resp, err := uc.CreateSession(context.Background(), signedRequest("user_1"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.HasProfile)
	assert.Len(t, sessionRepo.sessions, 1)

	userID, sessionID, err := uc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", userID)
	assert.NotEmpty(t, sessionID)
}

func TestCreateSessionReportsExistingProfile(t *testing.T) {
	uc, _ := newFixture(&domain.Profile{ID: "profile-1", UserID: "user_1"})

	resp, err := uc.CreateSession(context.Background(), signedRequest("user_1"))
	require.NoError(t, err)
	assert.True(t, resp.HasProfile)
}

func TestCreateSessionRejectsBadSignature(t *testing.T) {
	uc, sessionRepo := newFixture()

	req := signedRequest("user_1")
	req.Signature = sign("user_2", req.IssuedAt)

	_, err := uc.CreateSession(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	assert.Empty(t, sessionRepo.sessions)
}

func TestCreateSessionRejectsStalePayload(t *testing.T) {
	uc, _ := newFixture()

	issuedAt := time.Now().Add(-10 * time.Minute).Unix()
	req := &SessionRequest{
		UserID:    "user_1",
		IssuedAt:  issuedAt,
		Signature: sign("user_1", issuedAt),
	}

	_, err := uc.CreateSession(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestCreateSessionRejectsFuturePayload(t *testing.T) {
	uc, _ := newFixture()

	issuedAt := time.Now().Add(5 * time.Minute).Unix()
	req := &SessionRequest{
		UserID:    "user_1",
		IssuedAt:  issuedAt,
		Signature: sign("user_1", issuedAt),
	}

	_, err := uc.CreateSession(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	uc, _ := newFixture()

	_, _, err := uc.Authenticate(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAuthenticateRejectsTokenSignedWithOtherKey(t *testing.T) {
	uc, _ := newFixture()
	other := NewAuthUseCase(newFakeSessionRepo(), &fakeProfileRepo{byUserID: map[string]*domain.Profile{}},
		testIdentitySecret, "another-jwt-secret-another-jwt-se", time.Hour, zap.NewNop())

	resp, err := other.CreateSession(context.Background(), signedRequest("user_1"))
	require.NoError(t, err)

	_, _, err = uc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestLogoutRevokesSessionImmediately(t *testing.T) {
	uc, _ := newFixture()

	resp, err := uc.CreateSession(context.Background(), signedRequest("user_1"))
	require.NoError(t, err)

	_, sessionID, err := uc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), sessionID))

	// The JWT itself is still unexpired but the session is gone.
	_, _, err = uc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
