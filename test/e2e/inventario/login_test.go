package inventario_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrrinformatica/inventario/pkg/inventsdk"
)

// TestLoginAndStatus covers the plain first-factor path end to end: status
// check, seeded admin login, and the generic failure responses.
func TestLoginAndStatus(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := inventsdk.NewSDKClient(baseURL)

	status, err := client.Status(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", status.Status)
	require.NotEmpty(t, status.Version)

	session := loginAdmin(t, client)
	require.Equal(t, adminUsername, session.User().Username)
	require.Equal(t, inventsdk.RoleAdmin, session.User().Role)

	t.Run("wrong password is indistinguishable from unknown user", func(t *testing.T) {
		_, errWrong := client.Login(t.Context(), adminUsername, "not-the-password")
		require.ErrorIs(t, errWrong, inventsdk.ErrInvalidCredentials)

		_, errUnknown := client.Login(t.Context(), "ghost", "not-the-password")
		require.ErrorIs(t, errUnknown, inventsdk.ErrInvalidCredentials)

		require.Equal(t, errWrong.Error(), errUnknown.Error())
	})

	t.Run("server rejects empty credentials", func(t *testing.T) {
		// Client-side validation is bypassed on purpose: the server must
		// reject these independently.
		_, err := client.Login(t.Context(), "", adminPassword)
		require.ErrorIs(t, err, inventsdk.ErrInvalidCredentials)

		_, err = client.Login(t.Context(), adminUsername, "")
		require.ErrorIs(t, err, inventsdk.ErrInvalidCredentials)
	})

	t.Run("failed logins leave no audit trace", func(t *testing.T) {
		entries, err := session.Audit(t.Context(), 0)
		require.NoError(t, err)
		logins := 0
		for _, e := range entries {
			if e.ActionType == "LOGIN" {
				logins++
				require.Equal(t, adminUsername, e.Username)
			}
		}
		// Only the successful admin login from loginAdmin above.
		require.Equal(t, 1, logins)
	})
}

// TestLoginRecordsSideEffects verifies the last-login stamp and audit append
// on a successful first factor.
func TestLoginRecordsSideEffects(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := inventsdk.NewSDKClient(baseURL)
	admin := loginAdmin(t, client)

	users, err := admin.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.NotNil(t, users[0].LastLogin, "last login should be stamped after authentication")

	entries, err := admin.Audit(t.Context(), 5)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	require.Equal(t, "LOGIN", entries[0].ActionType)
	require.Equal(t, "Login efetuado com sucesso", entries[0].Details)
}
