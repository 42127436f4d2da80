package service

import (
	"context"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
)

// codeAt generates the TOTP code valid at the given instant, using the same
// parameters the service validates with.
func codeAt(t *testing.T, secret string, at time.Time) string {
	t.Helper()

	code, err := totp.GenerateCodeCustom(secret, at.UTC(), totpOpts)
	require.NoError(t, err)
	return code
}

func TestGenerateSecretStoresPendingSecret(t *testing.T) {
	st := newTestStore(t)
	svc := &MFAService{Store: st, Issuer: "inventario-test"}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)

	enr, err := svc.GenerateSecret(ctx, id)
	require.NoError(t, err)
	require.NotEmpty(t, enr.Secret)
	require.Contains(t, enr.ProvisioningURI, "otpauth://totp/")
	require.Contains(t, enr.ProvisioningURI, "alice")

	// The secret is pending: stored but not enabled.
	u, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.False(t, u.MFAEnabled)
	require.NotNil(t, u.MFASecret)
	require.Equal(t, enr.Secret, *u.MFASecret)
}

func TestGenerateSecretRejectsActiveFactor(t *testing.T) {
	st := newTestStore(t)
	svc := &MFAService{Store: st, Issuer: "inventario-test"}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)
	enr, err := svc.GenerateSecret(ctx, id)
	require.NoError(t, err)
	require.NoError(t, svc.Enable(ctx, id, codeAt(t, enr.Secret, time.Now())))

	// Re-enrollment over an active factor must be an explicit disable-first.
	_, err = svc.GenerateSecret(ctx, id)
	require.ErrorIs(t, err, ErrMFAAlreadyEnabled)
}

func TestEnableWrongCodeKeepsPendingSecret(t *testing.T) {
	st := newTestStore(t)
	svc := &MFAService{Store: st, Issuer: "inventario-test"}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)
	enr, err := svc.GenerateSecret(ctx, id)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Enable(ctx, id, "000000"), ErrInvalidTOTPCode)

	// Pending secret survives a wrong code: a retry with the right one works.
	u, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.False(t, u.MFAEnabled)
	require.NotNil(t, u.MFASecret)

	require.NoError(t, svc.Enable(ctx, id, codeAt(t, enr.Secret, time.Now())))

	u, err = st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.True(t, u.MFAEnabled)

	enables := auditEntries(t, st, domain.Audit2FAEnable)
	require.Len(t, enables, 1)
	require.Equal(t, "alice", enables[0].Username)
}

func TestEnableWithoutEnrollment(t *testing.T) {
	st := newTestStore(t)
	svc := &MFAService{Store: st, Issuer: "inventario-test"}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)

	require.ErrorIs(t, svc.Enable(ctx, id, "123456"), ErrMFANotEnrolled)
	require.ErrorIs(t, svc.Verify(ctx, id, "123456"), ErrMFANotEnrolled)
}

func TestVerifyIsRepeatableWithinWindow(t *testing.T) {
	st := newTestStore(t)
	svc := &MFAService{Store: st, Issuer: "inventario-test"}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)
	enr, err := svc.GenerateSecret(ctx, id)
	require.NoError(t, err)
	require.NoError(t, svc.Enable(ctx, id, codeAt(t, enr.Secret, time.Now())))

	// Pin the clock so the window cannot roll over mid-test.
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = time.Now })

	code := codeAt(t, enr.Secret, fixed)

	// Codes are not single-use: the same code verifies again within its window.
	require.NoError(t, svc.Verify(ctx, id, code))
	require.NoError(t, svc.Verify(ctx, id, code))
}

func TestVerifyAcceptsAdjacentSteps(t *testing.T) {
	st := newTestStore(t)
	svc := &MFAService{Store: st, Issuer: "inventario-test"}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)
	enr, err := svc.GenerateSecret(ctx, id)
	require.NoError(t, err)
	require.NoError(t, svc.Enable(ctx, id, codeAt(t, enr.Secret, time.Now())))

	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = time.Now })

	// One step of skew either way is accepted, two steps is not.
	require.NoError(t, svc.Verify(ctx, id, codeAt(t, enr.Secret, fixed.Add(-30*time.Second))))
	require.NoError(t, svc.Verify(ctx, id, codeAt(t, enr.Secret, fixed.Add(30*time.Second))))
	require.ErrorIs(t, svc.Verify(ctx, id, codeAt(t, enr.Secret, fixed.Add(-90*time.Second))), ErrInvalidTOTPCode)
}

func TestDisableClearsFactor(t *testing.T) {
	st := newTestStore(t)
	svc := &MFAService{Store: st, Issuer: "inventario-test"}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)
	enr, err := svc.GenerateSecret(ctx, id)
	require.NoError(t, err)
	require.NoError(t, svc.Enable(ctx, id, codeAt(t, enr.Secret, time.Now())))

	require.NoError(t, svc.Disable(ctx, "admin", id))

	u, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.False(t, u.MFAEnabled)
	require.Nil(t, u.MFASecret)

	disables := auditEntries(t, st, domain.Audit2FADisable)
	require.Len(t, disables, 1)
	require.Equal(t, "admin", disables[0].Username)

	// Enrollment is possible again after the reset.
	_, err = svc.GenerateSecret(ctx, id)
	require.NoError(t, err)
}
