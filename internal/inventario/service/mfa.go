package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
)

var (
	ErrInvalidTOTPCode   = errors.New("invalid TOTP code")
	ErrMFANotEnrolled    = errors.New("no TOTP secret enrolled for this user")
	ErrMFAAlreadyEnabled = errors.New("MFA already enabled for this user")
)

// totpOpts accepts the previous and next time step alongside the current one
// to absorb clock drift between server and authenticator app.
var totpOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// Enrollment carries a freshly generated TOTP secret and its otpauth://
// provisioning URI for QR rendering.
type Enrollment struct {
	Secret          string
	ProvisioningURI string
}

// MFAService manages the TOTP second factor.
type MFAService struct {
	Store  store.Store
	Issuer string // issuer name shown in authenticator apps
}

// GenerateSecret creates a TOTP secret for the user and stores it as
// pending. It does NOT enable the second factor - Enable must verify a code
// first. Re-enrollment over an active factor is rejected; disable first.
func (s *MFAService) GenerateSecret(ctx context.Context, userID int64) (Enrollment, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return Enrollment{}, fmt.Errorf("failed to load user: %w", err)
	}
	if user.MFAEnabled {
		return Enrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Username,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return Enrollment{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, userID, key.Secret()); err != nil {
		return Enrollment{}, fmt.Errorf("failed to store MFA secret: %w", err)
	}

	return Enrollment{Secret: key.Secret(), ProvisioningURI: key.URL()}, nil
}

// Verify checks a code against the user's stored secret. It mutates nothing:
// a valid code stays valid for the remainder of its time window, so the same
// code may verify more than once.
func (s *MFAService) Verify(ctx context.Context, userID int64, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	return validateCode(code, user.MFASecret)
}

// Enable verifies a code against the pending secret and, if valid, flips
// the enabled flag and audits the change. A wrong code leaves the pending
// secret in place so the user can retry.
func (s *MFAService) Enable(ctx context.Context, userID int64, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user.MFAEnabled {
		return ErrMFAAlreadyEnabled
	}
	if err := validateCode(code, user.MFASecret); err != nil {
		return err
	}

	if err := s.Store.Users().EnableMFA(ctx, userID); err != nil {
		return fmt.Errorf("failed to enable MFA: %w", err)
	}

	logAction(ctx, s.Store, user.Username, domain.Audit2FAEnable, domain.TargetUser,
		idRef(user.ID), "2FA ativado")
	return nil
}

// Disable clears the flag and the secret and audits the change. actor is
// the username performing the operation: the owner, or an admin resetting
// another account.
func (s *MFAService) Disable(ctx context.Context, actor string, userID int64) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.Store.Users().DisableMFA(ctx, userID); err != nil {
		return fmt.Errorf("failed to disable MFA: %w", err)
	}

	logAction(ctx, s.Store, actor, domain.Audit2FADisable, domain.TargetUser,
		idRef(user.ID), fmt.Sprintf("2FA desativado para %s", user.Username))
	return nil
}

func validateCode(code string, secret *string) error {
	if secret == nil || *secret == "" {
		return ErrMFANotEnrolled
	}

	valid, err := totp.ValidateCustom(code, *secret, timeNow().UTC(), totpOpts)
	if err != nil {
		return fmt.Errorf("failed to validate TOTP code: %w", err)
	}
	if !valid {
		return ErrInvalidTOTPCode
	}
	return nil
}
