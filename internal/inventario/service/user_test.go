package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
	"github.com/mrrinformatica/inventario/pkg/cryptox"
)

func TestUserCreate(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	pub, err := svc.Create(ctx, "admin", domain.User{
		Username: "ana.tech",
		RealName: "Ana Souza",
		Email:    "ana@example.com",
		Role:     domain.RoleUserManager,
	}, "initial-pass-1")
	require.NoError(t, err)
	require.NotZero(t, pub.ID)
	require.Equal(t, "ana.tech", pub.Username)
	require.Equal(t, domain.RoleUserManager, pub.Role)

	// Only the hash is stored, and it verifies.
	u, err := st.Users().GetUserByID(ctx, pub.ID)
	require.NoError(t, err)
	require.NotEqual(t, "initial-pass-1", u.PasswordHash)
	require.NoError(t, cryptox.VerifyPassword("initial-pass-1", u.PasswordHash))

	creates := auditEntries(t, st, domain.AuditCreate)
	require.Len(t, creates, 1)
	require.Equal(t, "admin", creates[0].Username)
}

func TestUserCreateDefaults(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	// Empty password and role fall back to a generated password and User.
	pub, err := svc.Create(ctx, "admin", domain.User{
		Username: "joao.user",
		RealName: "João Lima",
		Email:    "joao@example.com",
	}, "")
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, pub.Role)

	u, err := st.Users().GetUserByID(ctx, pub.ID)
	require.NoError(t, err)
	require.NotEmpty(t, u.PasswordHash)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	seedUser(t, st, "alice", "secret123", domain.RoleUser)

	_, err := svc.Create(ctx, "admin", domain.User{
		Username: "alice",
		RealName: "Other Alice",
		Email:    "other@example.com",
	}, "")
	require.ErrorIs(t, err, ErrUserExists)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)

	pub, err := svc.Update(ctx, "admin", domain.User{
		ID:       id,
		RealName: "Alice Renamed",
		Email:    "alice@new.example.com",
		Role:     domain.RoleAdmin,
	}, "new-pass-456")
	require.NoError(t, err)
	require.Equal(t, "Alice Renamed", pub.RealName)
	require.Equal(t, domain.RoleAdmin, pub.Role)

	u, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword("new-pass-456", u.PasswordHash))
	require.ErrorIs(t, cryptox.VerifyPassword("secret123", u.PasswordHash), cryptox.ErrPasswordMismatch)
}

func TestUserUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)

	_, err := svc.Update(ctx, "admin", domain.User{
		ID:       id,
		RealName: "Alice",
		Email:    "alice@example.com",
		Role:     domain.RoleUser,
	}, "")
	require.NoError(t, err)

	u, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword("secret123", u.PasswordHash))
}

func TestUserUpdateProfile(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)

	pub, err := svc.UpdateProfile(ctx, id, "Alice A.", "https://cdn.example.com/alice.png")
	require.NoError(t, err)
	require.Equal(t, "Alice A.", pub.RealName)
	require.NotNil(t, pub.AvatarURL)
	require.Equal(t, "https://cdn.example.com/alice.png", *pub.AvatarURL)
}

func TestUserDelete(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)

	require.NoError(t, svc.Delete(ctx, "admin", id))

	_, err := st.Users().GetUserByID(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "admin", id), store.ErrNotFound)

	deletes := auditEntries(t, st, domain.AuditDelete)
	require.Len(t, deletes, 1)
}

func TestUserListIsStripped(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	id := seedUser(t, st, "alice", "secret123", domain.RoleUser)
	require.NoError(t, st.Users().UpdateMFASecret(ctx, id, "JBSWY3DPEHPK3PXP"))
	require.NoError(t, st.Users().EnableMFA(ctx, id))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].MFAEnabled)
}
