package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
)

func TestLicenseCRUD(t *testing.T) {
	st := newTestStore(t)
	svc := &LicenseService{Store: st}
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin", domain.License{
		Product:      "Office 365",
		SerialKey:    "XXXX-YYYY-ZZZZ",
		AssignedUser: "Ana Souza",
		LicenseType:  strPtr("Anual"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	created.ExpiryDate = strPtr("2027-01-31")
	_, err = svc.Update(ctx, "admin", created)
	require.NoError(t, err)

	got, err := st.Licenses().GetLicenseByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "2027-01-31", *got.ExpiryDate)

	require.NoError(t, svc.Delete(ctx, "admin", created.ID))
	_, err = st.Licenses().GetLicenseByID(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// One audit entry per mutation.
	require.Len(t, auditEntries(t, st, domain.AuditCreate), 1)
	require.Len(t, auditEntries(t, st, domain.AuditUpdate), 1)
	require.Len(t, auditEntries(t, st, domain.AuditDelete), 1)
}

func TestLicenseVisibility(t *testing.T) {
	st := newTestStore(t)
	svc := &LicenseService{Store: st}
	ctx := context.Background()

	adminID := seedUser(t, st, "admin", "secret123", domain.RoleAdmin)
	userID := seedUser(t, st, "joao.user", "secret123", domain.RoleUser)
	user := viewerFor(t, st, userID)

	_, err := svc.Create(ctx, "admin", domain.License{
		Product:      "AutoCAD",
		SerialKey:    "CAD-001",
		AssignedUser: user.RealName,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "admin", domain.License{
		Product:      "Photoshop",
		SerialKey:    "PS-001",
		AssignedUser: "Ana Souza",
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, viewerFor(t, st, adminID))
	require.NoError(t, err)
	require.Len(t, all, 2)

	own, err := svc.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, "AutoCAD", own[0].Product)
}

func TestLicenseTotalsRoundTrip(t *testing.T) {
	st := newTestStore(t)
	svc := &LicenseService{Store: st}
	ctx := context.Background()

	totals, err := svc.Totals(ctx)
	require.NoError(t, err)
	require.Empty(t, totals)

	require.NoError(t, svc.SaveTotals(ctx, "admin", domain.LicenseTotals{
		"Office 365": 50,
		"AutoCAD":    5,
	}))

	totals, err = svc.Totals(ctx)
	require.NoError(t, err)
	require.Equal(t, 50, totals["Office 365"])
	require.Equal(t, 5, totals["AutoCAD"])

	// Saving replaces the whole set: dropped products disappear.
	require.NoError(t, svc.SaveTotals(ctx, "admin", domain.LicenseTotals{
		"Office 365": 60,
	}))

	totals, err = svc.Totals(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.LicenseTotals{"Office 365": 60}, totals)

	updates := auditEntries(t, st, domain.AuditUpdate)
	require.Len(t, updates, 2)
	require.Equal(t, domain.TargetTotals, updates[0].TargetType)
}
