package sqlite

import (
	"context"
	"database/sql"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
)

type settingsRepo struct {
	db dbtx
}

func (r *settingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	var (
		s              domain.Settings
		ssoURL         sql.NullString
		ssoEntityID    sql.NullString
		ssoCertificate sql.NullString
		smtpHost       sql.NullString
		smtpPort       sql.NullInt64
		smtpUser       sql.NullString
		smtpPass       sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT company_name, is_sso_enabled, is_2fa_enabled, require_2fa,
		 sso_url, sso_entity_id, sso_certificate, smtp_host, smtp_port,
		 smtp_user, smtp_pass, smtp_secure FROM settings WHERE id = 1`,
	).Scan(
		&s.CompanyName, &s.SSOEnabled, &s.TwoFAEnabled, &s.Require2FA,
		&ssoURL, &ssoEntityID, &ssoCertificate, &smtpHost, &smtpPort,
		&smtpUser, &smtpPass, &s.SMTPSecure,
	)
	if err != nil {
		return domain.Settings{}, mapNotFound(err)
	}
	s.SSOURL = mapNullStringPtr(ssoURL)
	s.SSOEntityID = mapNullStringPtr(ssoEntityID)
	s.SSOCertificate = mapNullStringPtr(ssoCertificate)
	s.SMTPHost = mapNullStringPtr(smtpHost)
	if smtpPort.Valid {
		port := int(smtpPort.Int64)
		s.SMTPPort = &port
	}
	s.SMTPUser = mapNullStringPtr(smtpUser)
	s.SMTPPass = mapNullStringPtr(smtpPass)
	return s, nil
}

func (r *settingsRepo) Save(ctx context.Context, s domain.Settings) error {
	var smtpPort sql.NullInt64
	if s.SMTPPort != nil {
		smtpPort = sql.NullInt64{Int64: int64(*s.SMTPPort), Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE settings SET company_name = ?, is_sso_enabled = ?,
		 is_2fa_enabled = ?, require_2fa = ?, sso_url = ?, sso_entity_id = ?,
		 sso_certificate = ?, smtp_host = ?, smtp_port = ?, smtp_user = ?,
		 smtp_pass = ?, smtp_secure = ? WHERE id = 1`,
		s.CompanyName, s.SSOEnabled, s.TwoFAEnabled, s.Require2FA,
		mapOptionalString(s.SSOURL), mapOptionalString(s.SSOEntityID),
		mapOptionalString(s.SSOCertificate), mapOptionalString(s.SMTPHost),
		smtpPort, mapOptionalString(s.SMTPUser), mapOptionalString(s.SMTPPass),
		s.SMTPSecure,
	)
	return mapUnavailable(err)
}
