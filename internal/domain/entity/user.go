package entity

import (
	"time"

	"github.com/sangkips/till-pos/internal/domain/enum"
)

// DefaultEmail is the sentinel shown when a user never set an email address.
const DefaultEmail = "Not set"

// User represents a stored user record in the credential file.
// The password hash is only ever handled inside the store; any read that
// leaves the store goes through Profile, which strips it.
type User struct {
	Password     string    `json:"password"`
	Role         enum.Role `json:"role"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profile_image"`
	CreatedDate  string    `json:"created_date"`
	LastLogin    *string   `json:"last_login"`
}

// Profile is the user-facing view of a record: no password hash, and every
// missing field backfilled with its default. Building the defaults here is
// the single normalization point; callers never patch fields themselves.
type Profile struct {
	Username     string    `json:"username"`
	Role         enum.Role `json:"role"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profile_image"`
	CreatedDate  string    `json:"created_date"`
	LastLogin    *string   `json:"last_login"`
}

// NewProfile derives a Profile from a stored record, applying defaults for
// any missing or empty field.
func NewProfile(username string, u *User) Profile {
	p := Profile{
		Username:     username,
		Role:         u.Role,
		FullName:     u.FullName,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
		CreatedDate:  u.CreatedDate,
		LastLogin:    u.LastLogin,
	}
	if !p.Role.Valid() {
		p.Role = enum.RoleCashier
	}
	if p.FullName == "" {
		p.FullName = username
	}
	if p.Email == "" {
		p.Email = DefaultEmail
	}
	if p.CreatedDate == "" {
		p.CreatedDate = time.Now().Format(time.RFC3339)
	}
	return p
}

// HasProfileImage reports whether a custom avatar is set. An empty path
// means the UI should fall back to its placeholder graphic.
func (p *Profile) HasProfileImage() bool {
	return p.ProfileImage != ""
}
