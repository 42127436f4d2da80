package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
)

func TestSettingsDefaults(t *testing.T) {
	st := newTestStore(t)
	svc := &SettingsService{Store: st}

	s, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "MRR INFORMATICA", s.CompanyName)
	require.True(t, s.TwoFAEnabled)
	require.False(t, s.Require2FA)
	require.False(t, s.SSOEnabled)
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	st := newTestStore(t)
	svc := &SettingsService{Store: st}
	ctx := context.Background()

	s, err := svc.Get(ctx)
	require.NoError(t, err)

	s.CompanyName = "ACME TI"
	s.Require2FA = true
	s.SMTPHost = strPtr("smtp.acme.example.com")
	port := 587
	s.SMTPPort = &port
	s.SMTPSecure = true

	require.NoError(t, svc.Save(ctx, "admin", s))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "ACME TI", got.CompanyName)
	require.True(t, got.Require2FA)
	require.Equal(t, "smtp.acme.example.com", *got.SMTPHost)
	require.Equal(t, 587, *got.SMTPPort)
	require.True(t, got.SMTPSecure)

	updates := auditEntries(t, st, domain.AuditSettingsUpdate)
	require.Len(t, updates, 1)
	require.Equal(t, "admin", updates[0].Username)
}
