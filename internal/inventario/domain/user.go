// Package domain holds the core entity types shared by the store, services
// and HTTP layers.
package domain

import "time"

// Role is a user's access level.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleUserManager Role = "User Manager"
	RoleUser        Role = "User"
)

// CanManageUsers reports whether the role may administer other accounts.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin || r == RoleUserManager
}

// SeesAllAssets reports whether the role sees every record rather than only
// its own equipment, licenses and tickets.
func (r Role) SeesAllAssets() bool {
	return r == RoleAdmin || r == RoleUserManager
}

type User struct {
	ID           int64
	Username     string // unique, immutable after creation
	RealName     string
	Email        string
	Role         Role
	PasswordHash string     // bcrypt encoded
	MFAEnabled   bool       // second factor active
	MFASecret    *string    // TOTP secret (nullable, base32 encoded)
	LastLogin    *time.Time // nullable
	AvatarURL    *string
	SSOProvider  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the stripped representation safe to return to clients and
// persist on the client side. It never carries the password hash or the
// TOTP secret.
type PublicUser struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	RealName    string     `json:"realName"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"`
	MFAEnabled  bool       `json:"is2FAEnabled"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	AvatarURL   *string    `json:"avatarUrl,omitempty"`
	SSOProvider *string    `json:"ssoProvider,omitempty"`
}

// Public strips credential material from the user. Every read path returning
// a user to a client goes through this one function.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		RealName:    u.RealName,
		Email:       u.Email,
		Role:        u.Role,
		MFAEnabled:  u.MFAEnabled,
		LastLogin:   u.LastLogin,
		AvatarURL:   u.AvatarURL,
		SSOProvider: u.SSOProvider,
	}
}
