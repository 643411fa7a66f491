package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// signatureMaxAge bounds how old a signed identity payload may be.
const signatureMaxAge = 5 * time.Minute

type AuthUseCase struct {
	sessionRepo    repository.SessionRepository
	profileRepo    repository.ProfileRepository
	identitySecret string
	jwtSecret      string
	sessionTTL     time.Duration
	logger         *zap.Logger
}

func NewAuthUseCase(
	sessionRepo repository.SessionRepository,
	profileRepo repository.ProfileRepository,
	identitySecret string,
	jwtSecret string,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		sessionRepo:    sessionRepo,
		profileRepo:    profileRepo,
		identitySecret: identitySecret,
		jwtSecret:      jwtSecret,
		sessionTTL:     sessionTTL,
		logger:         logger,
	}
}

// SessionRequest is the payload the identity provider hands to the web
// client: the stable external user id, an issue timestamp and an
// HMAC-SHA256 signature over both, keyed with the shared secret.
type SessionRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	IssuedAt  int64  `json:"issued_at" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// SessionResponse carries the minted session token
type SessionResponse struct {
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
	HasProfile bool      `json:"has_profile"`
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// CreateSession verifies the identity provider's signature, mints a
// session JWT and records the session in the session store.
func (uc *AuthUseCase) CreateSession(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	if err := uc.verifySignature(req); err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(uc.sessionTTL)

	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.UserID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := uc.sessionRepo.Save(ctx, sessionID, req.UserID, uc.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	hasProfile := true
	if _, err := uc.profileRepo.GetByUserID(ctx, req.UserID); err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		hasProfile = false
	}

	uc.logger.Info("session created", zap.String("user_id", req.UserID))

	return &SessionResponse{
		Token:      token,
		ExpiresAt:  expiresAt,
		HasProfile: hasProfile,
	}, nil
}

// Authenticate validates a bearer token: signature, expiry and session
// liveness. It returns the external user id and the session id.
func (uc *AuthUseCase) Authenticate(ctx context.Context, tokenString string) (string, string, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", "", domain.ErrSessionNotFound
	}

	userID, err := uc.sessionRepo.GetUserID(ctx, claims.SessionID)
	if err != nil {
		return "", "", err
	}
	if userID != claims.Subject {
		return "", "", domain.ErrSessionNotFound
	}

	return userID, claims.SessionID, nil
}

// Logout revokes the session; the JWT becomes useless immediately.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessionRepo.Delete(ctx, sessionID)
}

func (uc *AuthUseCase) verifySignature(req *SessionRequest) error {
	issuedAt := time.Unix(req.IssuedAt, 0)
	if time.Since(issuedAt) > signatureMaxAge || time.Until(issuedAt) > time.Minute {
		return domain.ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(uc.identitySecret))
	fmt.Fprintf(mac, "%s.%d", req.UserID, req.IssuedAt)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		return domain.ErrInvalidSignature
	}
	return nil
}
