package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Admin is a back-office account. There is no self-service signup;
// accounts are seeded or created out of band.
type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(60);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName sets the table name for Admin
func (Admin) TableName() string {
	return "admins"
}

// Session is the server-side authority for an admin login. The JWT only
// carries the session id; revocation and expiry live here, so a logout
// takes effect immediately regardless of the token lifetime.
type Session struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AdminID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"admin_id"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName sets the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// SessionClaims is the JWT payload. The session row, not the token, is
// the source of truth for validity.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	AdminID   string `json:"admin_id"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// LoginRequest represents admin login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Username     string    `json:"username"`
}

// VerifyResponse represents a successful session check
type VerifyResponse struct {
	Valid     bool      `json:"valid"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}
