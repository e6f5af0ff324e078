package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User represents an account in the system. A user signs in with email and
// password or through Google; the Google token fields are populated once the
// account is linked for Calendar and Drive access.
type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email    string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name     string    `json:"name" gorm:"type:varchar(255);not null"`
	IsActive bool      `json:"is_active" gorm:"default:true;not null"`

	PasswordHash *string `json:"-" gorm:"column:password_hash;type:text"` // Never expose in JSON

	// Google account linkage
	GoogleID           *string    `json:"-" gorm:"column:google_id;type:varchar(255);index"`
	GoogleAccessToken  *string    `json:"-" gorm:"column:google_access_token;type:text"`
	GoogleRefreshToken *string    `json:"-" gorm:"column:google_refresh_token;type:text"`
	GoogleTokenExpiry  *time.Time `json:"-" gorm:"column:google_token_expiry;type:timestamp"`

	// Profile
	AvatarURL *string `json:"avatar_url,omitempty" gorm:"type:varchar(500)"`
	Timezone  string  `json:"timezone" gorm:"type:varchar(50);default:'UTC';not null"`

	// Status
	IsEmailVerified bool       `json:"is_email_verified" gorm:"default:false;not null"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty" gorm:"type:timestamp"`

	// Preferences (stored as JSONB in PostgreSQL)
	NotificationPreferences datatypes.JSON `json:"notification_preferences" gorm:"type:jsonb;default:'{}'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewUser creates a new user with default values
func NewUser(email, name string) *User {
	now := time.Now()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		IsActive:        true,
		IsEmailVerified: false,
		Timezone:        "UTC",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NewGoogleUser creates a new user from a Google sign-in
func NewGoogleUser(email, name, googleID string) *User {
	user := NewUser(email, name)
	user.GoogleID = &googleID
	user.IsEmailVerified = true // Google verifies emails
	return user
}

// GoogleConnected reports whether the account has Google tokens linked.
func (u *User) GoogleConnected() bool {
	return u.GoogleRefreshToken != nil && *u.GoogleRefreshToken != ""
}

// LinkGoogle stores the token set obtained from the OAuth exchange. A missing
// refresh token keeps the previously stored one.
func (u *User) LinkGoogle(googleID, accessToken, refreshToken string, expiry time.Time) {
	u.GoogleID = &googleID
	u.GoogleAccessToken = &accessToken
	if refreshToken != "" {
		u.GoogleRefreshToken = &refreshToken
	}
	u.GoogleTokenExpiry = &expiry
	u.UpdatedAt = time.Now()
}

// UpdateLastLogin updates the last login timestamp
func (u *User) UpdateLastLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	return nil
}

// PublicUser returns a user with sensitive fields removed
type PublicUser struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	AvatarURL       *string   `json:"avatar_url,omitempty"`
	GoogleConnected bool      `json:"google_connected"`
	IsEmailVerified bool      `json:"is_email_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToPublic converts User to PublicUser
func (u *User) ToPublic() *PublicUser {
	return &PublicUser{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		AvatarURL:       u.AvatarURL,
		GoogleConnected: u.GoogleConnected(),
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
	}
}
