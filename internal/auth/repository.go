package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alostudio/internal/shared/apperrors"
)

type Repository interface {
	GetAdminByUsername(ctx context.Context, username string) (*Admin, error)
	GetAdminByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	CreateAdmin(ctx context.Context, admin *Admin) error

	CreateSession(ctx context.Context, session *Session) error
	GetSessionByID(ctx context.Context, id uuid.UUID) (*Session, error)
	ExtendSession(ctx context.Context, id uuid.UUID, expiresAt time.Time) error
	RevokeSession(ctx context.Context, id uuid.UUID, revokedAt time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAdminByUsername(ctx context.Context, username string) (*Admin, error) {
	var admin Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("admin")
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repository) GetAdminByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	var admin Admin
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("admin")
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repository) CreateAdmin(ctx context.Context, admin *Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *repository) CreateSession(ctx context.Context, session *Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *repository) GetSessionByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	var session Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("session")
		}
		return nil, err
	}
	return &session, nil
}

func (r *repository) ExtendSession(ctx context.Context, id uuid.UUID, expiresAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Session{}).
		Where("id = ?", id).
		Update("expires_at", expiresAt).Error
}

func (r *repository) RevokeSession(ctx context.Context, id uuid.UUID, revokedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Session{}).
		Where("id = ?", id).
		Update("revoked_at", revokedAt).Error
}
