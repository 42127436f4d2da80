package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
	"github.com/mrrinformatica/inventario/pkg/cryptox"
	"github.com/mrrinformatica/inventario/pkg/jwtx"
	"github.com/mrrinformatica/inventario/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers unknown usernames and wrong passwords
	// alike: the caller must not be able to tell which one happened.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// LoginResult is the outcome of a password check. Exactly one of the three
// shapes applies: a completed login (User+Token set), a pending second
// factor (Requires2FA), or a forced enrollment (Requires2FASetup).
type LoginResult struct {
	User  *domain.PublicUser
	Token string

	Requires2FA      bool
	Requires2FASetup bool
	UserID           int64
}

// AuthService authenticates users and mints session tokens.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Login validates a username/password pair. When the account has an active
// second factor, or policy forces enrollment, the result carries only the
// user id and a flag: no session is established and no side effects run
// until the second factor succeeds.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	// Reject empty credentials server-side regardless of client validation.
	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("login failed", "username", username, "reason", "unknown user")
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("failed to load user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("login failed", "username", username, "reason", "password mismatch")
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("failed to verify password: %w", err)
	}

	// Active second factor takes precedence: hold the login open.
	if user.MFAEnabled && user.MFASecret != nil && *user.MFASecret != "" {
		return LoginResult{Requires2FA: true, UserID: user.ID}, nil
	}

	// Policy may force enrollment before the first full login.
	settings, err := s.Store.Settings().Get(ctx)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.TwoFAEnabled && settings.Require2FA && !user.MFAEnabled {
		return LoginResult{Requires2FASetup: true, UserID: user.ID}, nil
	}

	return s.completeLogin(ctx, user)
}

// CompleteLogin finishes a login whose second factor has been verified:
// it runs the deferred side effects and mints the session token.
func (s *AuthService) CompleteLogin(ctx context.Context, userID int64) (LoginResult, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("failed to load user: %w", err)
	}
	return s.completeLogin(ctx, user)
}

// completeLogin stamps last_login, appends the LOGIN audit entry and mints
// the token. The two side effects are best-effort and independent: neither
// failure blocks the login or the other effect.
func (s *AuthService) completeLogin(ctx context.Context, user domain.User) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	if err := s.Store.Users().UpdateLastLogin(ctx, user.ID); err != nil {
		log.Warn("last-login update failed", "user_id", user.ID, "err", err)
	}

	logAction(ctx, s.Store, user.Username, domain.AuditLogin, domain.TargetUser,
		idRef(user.ID), "Login efetuado com sucesso")

	token, err := s.mintToken(user)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to mint session token: %w", err)
	}

	pub := user.Public()
	now := time.Now().UTC()
	pub.LastLogin = &now

	return LoginResult{User: &pub, Token: token, UserID: user.ID}, nil
}

func (s *AuthService) mintToken(user domain.User) (string, error) {
	amr := []string{"pwd"}
	if user.MFAEnabled {
		amr = append(amr, "otp")
	}

	claims := jwtx.NewSessionClaims(
		strconv.FormatInt(user.ID, 10),
		user.Username,
		string(user.Role),
		user.RealName,
		amr,
		s.TokenTTL,
		s.Issuer,
		time.Now().UTC(),
	)
	return s.Signer.Sign(claims)
}
