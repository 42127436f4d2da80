package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
)

func viewerFor(t *testing.T, st store.Store, id int64) domain.PublicUser {
	t.Helper()

	u, err := st.Users().GetUserByID(context.Background(), id)
	require.NoError(t, err)
	return u.Public()
}

func strPtr(s string) *string { return &s }

func TestEquipmentCreateAndGet(t *testing.T) {
	st := newTestStore(t)
	svc := &EquipmentService{Store: st}
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin", domain.Equipment{
		Name:         "Notebook Dell Latitude",
		Brand:        strPtr("Dell"),
		Serial:       strPtr("SN-0001"),
		AssetTag:     strPtr("PAT-1001"),
		AssignedUser: strPtr("Ana Souza"),
		Status:       strPtr("Em uso"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Notebook Dell Latitude", got.Name)
	require.Equal(t, "PAT-1001", *got.AssetTag)

	creates := auditEntries(t, st, domain.AuditCreate)
	require.Len(t, creates, 1)
	require.Equal(t, domain.TargetEquipment, creates[0].TargetType)
}

func TestEquipmentUpdateRecordsHistory(t *testing.T) {
	st := newTestStore(t)
	svc := &EquipmentService{Store: st}
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin", domain.Equipment{
		Name:         "Desktop HP",
		AssignedUser: strPtr("Ana Souza"),
		Status:       strPtr("Em uso"),
		Location:     strPtr("Matriz"),
	})
	require.NoError(t, err)

	// Reassign the asset and change its status; location stays put.
	updated := created
	updated.AssignedUser = strPtr("João Lima")
	updated.PreviousUser = strPtr("Ana Souza")
	updated.Status = strPtr("Manutenção")

	_, err = svc.Update(ctx, "admin", updated)
	require.NoError(t, err)

	hist, err := svc.History(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, hist, 2)

	byType := map[string]domain.EquipmentHistory{}
	for _, h := range hist {
		byType[h.ChangeType] = h
	}

	assign, ok := byType["Usuário Atual"]
	require.True(t, ok)
	require.Equal(t, "Ana Souza", *assign.FromValue)
	require.Equal(t, "João Lima", *assign.ToValue)
	require.Equal(t, "admin", assign.ChangedBy)

	status, ok := byType["Status"]
	require.True(t, ok)
	require.Equal(t, "Em uso", *status.FromValue)
	require.Equal(t, "Manutenção", *status.ToValue)
}

func TestEquipmentUpdateWithoutTrackedChanges(t *testing.T) {
	st := newTestStore(t)
	svc := &EquipmentService{Store: st}
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin", domain.Equipment{
		Name:   "Monitor LG",
		Status: strPtr("Em uso"),
	})
	require.NoError(t, err)

	// Only an untracked field changes: no history rows appear.
	updated := created
	updated.Notes = strPtr("Tela com risco leve")

	_, err = svc.Update(ctx, "admin", updated)
	require.NoError(t, err)

	hist, err := svc.History(ctx, created.ID)
	require.NoError(t, err)
	require.Empty(t, hist)
}

func TestEquipmentVisibility(t *testing.T) {
	st := newTestStore(t)
	svc := &EquipmentService{Store: st}
	ctx := context.Background()

	adminID := seedUser(t, st, "admin", "secret123", domain.RoleAdmin)
	userID := seedUser(t, st, "joao.user", "secret123", domain.RoleUser)
	user := viewerFor(t, st, userID)

	_, err := svc.Create(ctx, "admin", domain.Equipment{
		Name:         "Notebook do João",
		AssignedUser: strPtr(user.RealName),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "admin", domain.Equipment{
		Name:         "Servidor",
		AssignedUser: strPtr("Infra"),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "joao.user", domain.Equipment{
		Name:        "Headset",
		CreatedByID: &userID,
	})
	require.NoError(t, err)

	// Admin sees all three rows.
	all, err := svc.List(ctx, viewerFor(t, st, adminID))
	require.NoError(t, err)
	require.Len(t, all, 3)

	// The plain user sees only what is assigned to or created by them.
	own, err := svc.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, own, 2)
	for _, e := range own {
		require.NotEqual(t, "Servidor", e.Name)
	}
}

func TestEquipmentDelete(t *testing.T) {
	st := newTestStore(t)
	svc := &EquipmentService{Store: st}
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin", domain.Equipment{Name: "Impressora"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "admin", created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "admin", created.ID), store.ErrNotFound)
}
