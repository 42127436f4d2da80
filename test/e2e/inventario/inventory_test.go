package inventario_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrrinformatica/inventario/pkg/inventsdk"
)

func strPtr(s string) *string { return &s }

// TestEquipmentLifecycle walks an asset through create, update (with history
// tracking), visibility filtering and delete.
func TestEquipmentLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := inventsdk.NewSDKClient(baseURL)
	admin := loginAdmin(t, client)

	created, err := admin.CreateEquipment(t.Context(), inventsdk.Equipment{
		Name:         "Dell Latitude 5430",
		Brand:        strPtr("Dell"),
		Serial:       strPtr("DELL-9988"),
		AssetTag:     strPtr("RES-002"),
		AssignedUser: strPtr("Ana Souza"),
		Status:       strPtr("Em Uso"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	t.Run("tracked field changes land in history", func(t *testing.T) {
		updated := *created
		updated.AssignedUser = strPtr("João Silva")
		updated.Status = strPtr("Manutenção")
		_, err := admin.UpdateEquipment(t.Context(), created.ID, updated)
		require.NoError(t, err)

		history, err := admin.EquipmentHistory(t.Context(), created.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		for _, h := range history {
			require.Equal(t, adminUsername, h.ChangedBy)
		}
	})

	t.Run("plain users only see their own assets", func(t *testing.T) {
		createUser(t, admin, "joao.user", "Segredo123!", inventsdk.RoleUser)
		resp, err := client.Login(t.Context(), "joao.user", "Segredo123!")
		require.NoError(t, err)
		userSession := client.NewSession(resp.User, resp.Token)

		// The asset is assigned to "João Silva", not to this account's
		// real name ("joao.user"), so the list comes back empty.
		visible, err := userSession.ListEquipment(t.Context())
		require.NoError(t, err)
		require.Empty(t, visible)

		all, err := admin.ListEquipment(t.Context())
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, admin.DeleteEquipment(t.Context(), created.ID))
		err := admin.DeleteEquipment(t.Context(), created.ID)
		require.ErrorIs(t, err, inventsdk.ErrNotFound)
	})
}

// TestLicensesAndTotals covers the license CRUD plus the wholesale
// replacement semantics of the purchased-seat totals.
func TestLicensesAndTotals(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := inventsdk.NewSDKClient(baseURL)
	admin := loginAdmin(t, client)

	lic, err := admin.CreateLicense(t.Context(), inventsdk.License{
		Product:      "Microsoft 365 Business Premium",
		LicenseType:  strPtr("Assinatura"),
		SerialKey:    "XXXXX-YYYYY-ZZZZZ",
		AssignedUser: "Ana Souza",
	})
	require.NoError(t, err)
	require.NotZero(t, lic.ID)

	totals, err := admin.SaveLicenseTotals(t.Context(), inventsdk.LicenseTotals{
		"Microsoft 365 Business Premium": 10,
		"Windows 11 Pro":                 50,
	})
	require.NoError(t, err)
	require.Equal(t, 10, totals["Microsoft 365 Business Premium"])

	// Saving again replaces the whole set; absent products are dropped.
	totals, err = admin.SaveLicenseTotals(t.Context(), inventsdk.LicenseTotals{
		"Microsoft 365 Business Premium": 12,
	})
	require.NoError(t, err)
	require.Equal(t, 12, totals["Microsoft 365 Business Premium"])
	_, kept := totals["Windows 11 Pro"]
	require.False(t, kept)

	fetched, err := admin.GetLicenseTotals(t.Context())
	require.NoError(t, err)
	require.Equal(t, totals, fetched)
}

// TestTicketWorkflow opens a ticket as a plain user and moves it through the
// workflow as an admin.
func TestTicketWorkflow(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := inventsdk.NewSDKClient(baseURL)
	admin := loginAdmin(t, client)

	createUser(t, admin, "joao.user", "Segredo123!", inventsdk.RoleUser)
	resp, err := client.Login(t.Context(), "joao.user", "Segredo123!")
	require.NoError(t, err)
	userSession := client.NewSession(resp.User, resp.Token)

	ticket, err := userSession.CreateTicket(t.Context(), inventsdk.Ticket{
		Title:       "Tela azul constante no notebook",
		Description: "BSOD a cada 2 horas de uso.",
		Category:    "Hardware",
	})
	require.NoError(t, err)
	require.Equal(t, inventsdk.TicketOpen, ticket.Status)
	require.Equal(t, inventsdk.PriorityMedium, ticket.Priority)
	require.Equal(t, resp.User.ID, ticket.RequesterID, "requester is always the caller")

	moved := *ticket
	moved.Status = inventsdk.TicketInProgress
	moved.Priority = inventsdk.PriorityHigh
	updated, err := admin.UpdateTicket(t.Context(), ticket.ID, moved)
	require.NoError(t, err)
	require.Equal(t, inventsdk.TicketInProgress, updated.Status)

	// The requester still sees their own ticket; the admin sees all.
	mine, err := userSession.ListTickets(t.Context())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	all, err := admin.ListTickets(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 1)
}

// TestApprovalWorkflow registers assets as a plain user and reviews them as
// an admin through the pending queue.
func TestApprovalWorkflow(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := inventsdk.NewSDKClient(baseURL)
	admin := loginAdmin(t, client)

	createUser(t, admin, "joao.user", "Segredo123!", inventsdk.RoleUser)
	resp, err := client.Login(t.Context(), "joao.user", "Segredo123!")
	require.NoError(t, err)
	userSession := client.NewSession(resp.User, resp.Token)

	notebook, err := userSession.CreateEquipment(t.Context(), inventsdk.Equipment{
		Name:         "Notebook Lenovo T14",
		AssignedUser: strPtr("joao.user"),
	})
	require.NoError(t, err)
	monitor, err := userSession.CreateEquipment(t.Context(), inventsdk.Equipment{
		Name:         "Monitor LG 27",
		AssignedUser: strPtr("joao.user"),
	})
	require.NoError(t, err)

	// Plain-user registrations enter the queue; the admin's own don't.
	require.Equal(t, inventsdk.ApprovalPending, notebook.ApprovalStatus)
	adminOwned, err := admin.CreateEquipment(t.Context(), inventsdk.Equipment{Name: "Servidor Dell R740"})
	require.NoError(t, err)
	require.NotEqual(t, inventsdk.ApprovalPending, adminOwned.ApprovalStatus)

	pending, err := admin.PendingApprovals(t.Context())
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, inventsdk.ApprovalItemEquipment, pending[0].ItemType)

	require.NoError(t, admin.ApproveItem(t.Context(), inventsdk.ApprovalItemEquipment, notebook.ID))
	require.NoError(t, admin.RejectItem(t.Context(), inventsdk.ApprovalItemEquipment, monitor.ID, "registro duplicado"))

	byID := map[int64]inventsdk.Equipment{}
	all, err := admin.ListEquipment(t.Context())
	require.NoError(t, err)
	for _, e := range all {
		byID[e.ID] = e
	}
	require.Equal(t, inventsdk.ApprovalApproved, byID[notebook.ID].ApprovalStatus)
	require.Nil(t, byID[notebook.ID].RejectionReason)
	require.Equal(t, inventsdk.ApprovalRejected, byID[monitor.ID].ApprovalStatus)
	require.NotNil(t, byID[monitor.ID].RejectionReason)
	require.Equal(t, "registro duplicado", *byID[monitor.ID].RejectionReason)

	// Both decisions drain the queue, and plain users cannot review.
	pending, err = admin.PendingApprovals(t.Context())
	require.NoError(t, err)
	require.Empty(t, pending)
	_, err = userSession.PendingApprovals(t.Context())
	require.Error(t, err, "approvals are a management surface")
}

// TestRoleGuards checks that management endpoints reject plain users.
func TestRoleGuards(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := inventsdk.NewSDKClient(baseURL)
	admin := loginAdmin(t, client)

	createUser(t, admin, "joao.user", "Segredo123!", inventsdk.RoleUser)
	resp, err := client.Login(t.Context(), "joao.user", "Segredo123!")
	require.NoError(t, err)
	userSession := client.NewSession(resp.User, resp.Token)

	_, err = userSession.ListUsers(t.Context())
	require.Error(t, err, "user management requires a management role")

	_, err = userSession.Audit(t.Context(), 0)
	require.Error(t, err, "audit log is admin only")

	public, err := client.GetSettings(t.Context())
	require.NoError(t, err, "settings fetch is open for the login view")
	_, err = userSession.SaveSettings(t.Context(), inventsdk.Settings{CompanyName: public.CompanyName})
	require.Error(t, err, "settings writes are admin only")

	_, err = userSession.GetSettings(t.Context())
	require.Error(t, err, "full settings row is admin only")
}
