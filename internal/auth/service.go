package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"alostudio/internal/shared/apperrors"
	"alostudio/internal/shared/config"
	"alostudio/pkg/logger"
)

// Service interface defines the contract for admin session management
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	// Verify checks a token against its session row and slides the
	// expiry forward on success.
	Verify(ctx context.Context, token string) (*VerifyResponse, error)
	Logout(ctx context.Context, token string) error
}

// service implements the Service interface
type service struct {
	repo   Repository
	config *config.Config
	logger *logger.Logger
}

func NewService(repo Repository, cfg *config.Config, log *logger.Logger) Service {
	return &service{repo: repo, config: cfg, logger: log}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	admin, err := s.repo.GetAdminByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.LogAuthFailure(ctx, "unknown username", "")
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthenticated)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.LogAuthFailure(ctx, "password mismatch", "")
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthenticated)
	}

	session := &Session{
		AdminID:   admin.ID,
		ExpiresAt: time.Now().Add(s.config.Session.Duration),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.signToken(session, admin)
	if err != nil {
		return nil, err
	}

	s.logger.LogAuthSuccess(ctx, admin.ID.String(), "password")
	return &LoginResponse{
		SessionToken: token,
		ExpiresAt:    session.ExpiresAt,
		Username:     admin.Username,
	}, nil
}

func (s *service) Verify(ctx context.Context, token string) (*VerifyResponse, error) {
	claims, session, err := s.resolveSession(ctx, token)
	if err != nil {
		return nil, err
	}

	// Sliding expiry: every verified request buys another full window.
	newExpiry := time.Now().Add(s.config.Session.Duration)
	if err := s.repo.ExtendSession(ctx, session.ID, newExpiry); err != nil {
		return nil, fmt.Errorf("failed to extend session: %w", err)
	}

	return &VerifyResponse{
		Valid:     true,
		Username:  claims.Username,
		ExpiresAt: newExpiry,
	}, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	_, session, err := s.resolveSession(ctx, token)
	if err != nil {
		return err
	}
	return s.repo.RevokeSession(ctx, session.ID, time.Now())
}

// resolveSession validates the token signature, then checks the session
// row it points at. Any failure collapses to ErrUnauthenticated so the
// caller cannot probe which check tripped.
func (s *service) resolveSession(ctx context.Context, token string) (*SessionClaims, *Session, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.Session.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, nil, fmt.Errorf("%w: invalid session token", apperrors.ErrUnauthenticated)
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid session token", apperrors.ErrUnauthenticated)
	}

	session, err := s.repo.GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: session not found", apperrors.ErrUnauthenticated)
		}
		return nil, nil, err
	}

	if session.RevokedAt != nil {
		return nil, nil, fmt.Errorf("%w: session revoked", apperrors.ErrUnauthenticated)
	}
	if time.Now().After(session.ExpiresAt) {
		// Lazy expiry, no background sweep.
		return nil, nil, fmt.Errorf("%w: session expired", apperrors.ErrUnauthenticated)
	}

	return claims, session, nil
}

func (s *service) signToken(session *Session, admin *Admin) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SessionID: session.ID.String(),
		AdminID:   admin.ID.String(),
		Username:  admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   "alostudio",
			Subject:  admin.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Session.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
