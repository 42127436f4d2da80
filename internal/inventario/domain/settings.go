package domain

// Settings is the singleton application configuration row. GET is open
// because the login screen needs the company name and SSO flag before
// authentication; writes are admin-only and audited.
type Settings struct {
	CompanyName    string  `json:"companyName"`
	SSOEnabled     bool    `json:"isSsoEnabled"`
	TwoFAEnabled   bool    `json:"is2faEnabled"`
	Require2FA     bool    `json:"require2fa"`
	SSOURL         *string `json:"ssoUrl,omitempty"`
	SSOEntityID    *string `json:"ssoEntityId,omitempty"`
	SSOCertificate *string `json:"ssoCertificate,omitempty"`
	SMTPHost       *string `json:"smtpHost,omitempty"`
	SMTPPort       *int    `json:"smtpPort,omitempty"`
	SMTPUser       *string `json:"smtpUser,omitempty"`
	SMTPPass       *string `json:"smtpPass,omitempty"`
	SMTPSecure     bool    `json:"smtpSecure"`
}

// PublicSettings is the subset of Settings safe to serve without a session.
// The SSO certificate and SMTP credentials never leave the admin path.
type PublicSettings struct {
	CompanyName  string `json:"companyName"`
	SSOEnabled   bool   `json:"isSsoEnabled"`
	TwoFAEnabled bool   `json:"is2faEnabled"`
	Require2FA   bool   `json:"require2fa"`
}

// Public strips the settings row down to the fields the login screen needs.
// Every unauthenticated read goes through here.
func (s Settings) Public() PublicSettings {
	return PublicSettings{
		CompanyName:  s.CompanyName,
		SSOEnabled:   s.SSOEnabled,
		TwoFAEnabled: s.TwoFAEnabled,
		Require2FA:   s.Require2FA,
	}
}
