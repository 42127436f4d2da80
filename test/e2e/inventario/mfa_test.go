package inventario_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrrinformatica/inventario/pkg/inventsdk"
)

// TestMFAEnrollmentAndLogin exercises the full second-factor lifecycle:
// enrollment, the two-step login it forces afterwards, and disablement.
func TestMFAEnrollmentAndLogin(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := inventsdk.NewSDKClient(baseURL)
	admin := loginAdmin(t, client)

	user := createUser(t, admin, "ana.tech", "Segredo123!", inventsdk.RoleUser)
	secret, session := enrollMFA(t, client, user.ID)
	require.True(t, session.User().MFAEnabled)

	t.Run("login now holds on the second factor", func(t *testing.T) {
		resp, err := client.Login(t.Context(), "ana.tech", "Segredo123!")
		require.NoError(t, err)
		require.True(t, resp.Requires2FA)
		require.Equal(t, user.ID, resp.UserID)
		require.Nil(t, resp.User, "no record before verification")
		require.Empty(t, resp.Token)

		// A wrong code is retryable.
		_, err = client.Verify2FA(t.Context(), user.ID, "000000")
		require.ErrorIs(t, err, inventsdk.ErrInvalidCode)

		verified, err := client.Verify2FA(t.Context(), user.ID, generateTOTP(t, secret))
		require.NoError(t, err)
		require.NotNil(t, verified.User)
		require.NotEmpty(t, verified.Token)
		require.Equal(t, "ana.tech", verified.User.Username)
	})

	t.Run("re-enrollment over an active factor is rejected", func(t *testing.T) {
		_, err := client.Generate2FA(t.Context(), user.ID)
		require.ErrorIs(t, err, inventsdk.ErrAlreadyEnabled)
	})

	t.Run("audit records the activation", func(t *testing.T) {
		entries, err := admin.Audit(t.Context(), 0)
		require.NoError(t, err)
		found := false
		for _, e := range entries {
			if e.ActionType == "2FA_ENABLE" && e.Username == "ana.tech" {
				found = true
			}
		}
		require.True(t, found, "2FA_ENABLE audit entry expected")
	})

	t.Run("admin can disable another account's factor", func(t *testing.T) {
		require.NoError(t, admin.Disable2FAForUser(t.Context(), user.ID))

		resp, err := client.Login(t.Context(), "ana.tech", "Segredo123!")
		require.NoError(t, err)
		require.False(t, resp.Requires2FA)
		require.NotNil(t, resp.User)
		require.False(t, resp.User.MFAEnabled)
	})
}

// TestMFAForcedEnrollment flips the policy switch and checks a fresh account
// is routed to setup instead of verification.
func TestMFAForcedEnrollment(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := inventsdk.NewSDKClient(baseURL)
	admin := loginAdmin(t, client)

	settings, err := admin.GetSettings(t.Context())
	require.NoError(t, err)
	settings.TwoFAEnabled = true
	settings.Require2FA = true
	_, err = admin.SaveSettings(t.Context(), *settings)
	require.NoError(t, err)

	user := createUser(t, admin, "rookie", "Segredo123!", inventsdk.RoleUser)

	resp, err := client.Login(t.Context(), "rookie", "Segredo123!")
	require.NoError(t, err)
	require.True(t, resp.Requires2FASetup, "policy should force enrollment")
	require.False(t, resp.Requires2FA)
	require.Equal(t, user.ID, resp.UserID)

	// A wrong confirmation code leaves the pending secret retryable.
	gen, err := client.Generate2FA(t.Context(), user.ID)
	require.NoError(t, err)
	_, err = client.Enable2FA(t.Context(), user.ID, "000000")
	require.ErrorIs(t, err, inventsdk.ErrInvalidCode)

	completed, err := client.Enable2FA(t.Context(), user.ID, generateTOTP(t, gen.Secret))
	require.NoError(t, err)
	require.NotNil(t, completed.User)
	require.True(t, completed.User.MFAEnabled)
	require.NotEmpty(t, completed.Token, "enrollment completes the login in one step")
}
