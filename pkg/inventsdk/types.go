package inventsdk

import "time"

// User is the stripped account record the API returns. It never carries
// credential material.
type User struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	RealName    string     `json:"realName"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	MFAEnabled  bool       `json:"is2FAEnabled"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	AvatarURL   *string    `json:"avatarUrl,omitempty"`
	SSOProvider *string    `json:"ssoProvider,omitempty"`
}

// Roles an account can hold.
const (
	RoleAdmin       = "Admin"
	RoleUserManager = "User Manager"
	RoleUser        = "User"
)

// LoginRequest is the POST /api/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the POST /api/login result. Exactly one shape applies:
// a completed login (User and Token set), a pending second factor
// (Requires2FA), or a forced enrollment (Requires2FASetup). The pending
// shapes carry only the user id.
type LoginResponse struct {
	User  *User  `json:"user,omitempty"`
	Token string `json:"token,omitempty"`

	Requires2FA      bool  `json:"requires2FA,omitempty"`
	Requires2FASetup bool  `json:"requires2FASetup,omitempty"`
	UserID           int64 `json:"userId,omitempty"`
}

// Verify2FARequest is the POST /api/verify-2fa body.
type Verify2FARequest struct {
	UserID int64  `json:"userId"`
	Code   string `json:"code"`
}

// Generate2FARequest is the POST /api/generate-2fa body. The user id comes
// from the body because forced enrollment happens before a session exists.
type Generate2FARequest struct {
	UserID int64 `json:"userId"`
}

// Generate2FAResponse carries a fresh TOTP secret and its otpauth://
// provisioning URI for QR rendering.
type Generate2FAResponse struct {
	Secret          string `json:"secret"`
	ProvisioningURI string `json:"provisioningUri"`
}

// Enable2FARequest is the POST /api/enable-2fa body.
type Enable2FARequest struct {
	UserID int64  `json:"userId"`
	Code   string `json:"code"`
}

// CreateUserRequest is the POST /api/users body. When Password is empty the
// server generates an initial one.
type CreateUserRequest struct {
	Username string `json:"username"`
	RealName string `json:"realName"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
}

// UpdateUserRequest is the PUT /api/users/{id} body. A non-empty Password
// replaces the stored hash.
type UpdateUserRequest struct {
	RealName  string  `json:"realName"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Password  string  `json:"password,omitempty"`
}

// UpdateProfileRequest is the self-service PUT /api/profile body.
type UpdateProfileRequest struct {
	RealName  string `json:"realName"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Equipment is a tracked hardware asset. JSON keys follow the upstream
// inventory schema.
type Equipment struct {
	ID              int64   `json:"id"`
	Name            string  `json:"equipamento"`
	Brand           *string `json:"brand,omitempty"`
	Model           *string `json:"model,omitempty"`
	Serial          *string `json:"serial,omitempty"`
	AssetTag        *string `json:"patrimonio,omitempty"`
	RemoteAccessID  *string `json:"rustdesk_id,omitempty"`
	AssignedUser    *string `json:"usuarioAtual,omitempty"`
	PreviousUser    *string `json:"usuarioAnterior,omitempty"`
	Sector          *string `json:"setor,omitempty"`
	Location        *string `json:"local,omitempty"`
	Status          *string `json:"status,omitempty"`
	Type            *string `json:"tipo,omitempty"`
	DeliveryDate    *string `json:"dataEntregaUsuario,omitempty"`
	ReturnDate      *string `json:"dataDevolucao,omitempty"`
	Notes           *string `json:"observacoes,omitempty"`
	ApprovalStatus  string  `json:"approval_status,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedByID     *int64  `json:"created_by_id,omitempty"`
}

// EquipmentHistory is one recorded field change on an equipment row.
type EquipmentHistory struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	ChangedBy  string    `json:"changedBy"`
	ChangeType string    `json:"changeType"`
	FromValue  *string   `json:"from_value"`
	ToValue    *string   `json:"to_value"`
}

// License is a software license assignment.
type License struct {
	ID              int64   `json:"id"`
	Product         string  `json:"produto"`
	LicenseType     *string `json:"tipoLicenca,omitempty"`
	SerialKey       string  `json:"chaveSerial"`
	ExpiryDate      *string `json:"dataExpiracao,omitempty"`
	AssignedUser    string  `json:"usuario"`
	JobTitle        *string `json:"cargo,omitempty"`
	Company         *string `json:"empresa,omitempty"`
	Sector          *string `json:"setor,omitempty"`
	Manager         *string `json:"gestor,omitempty"`
	CostCenter      *string `json:"centroCusto,omitempty"`
	ComputerName    *string `json:"nomeComputador,omitempty"`
	TicketNumber    *string `json:"numeroChamado,omitempty"`
	Notes           *string `json:"observacoes,omitempty"`
	ApprovalStatus  string  `json:"approval_status,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedByID     *int64  `json:"created_by_id,omitempty"`
}

// LicenseTotals maps product name to purchased seats.
type LicenseTotals map[string]int

// Ticket is a service-desk request.
type Ticket struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	RequesterID     int64      `json:"requester_id"`
	RequesterName   string     `json:"requester_name"`
	TechnicianID    *int64     `json:"technician_id,omitempty"`
	TechnicianName  *string    `json:"technician_name,omitempty"`
	EquipmentID     *int64     `json:"equipment_id,omitempty"`
	EquipmentSerial *string    `json:"equipment_serial,omitempty"`
	RemoteLink      *string    `json:"remote_link,omitempty"`
	SLADue          *time.Time `json:"sla_due,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Ticket workflow states and priorities (Portuguese labels, as stored).
const (
	TicketOpen        = "Aberto"
	TicketInProgress  = "Em Atendimento"
	TicketWaitingUser = "Aguardando Usuário"
	TicketResolved    = "Resolvido"
	TicketClosed      = "Fechado"

	PriorityLow      = "Baixa"
	PriorityMedium   = "Média"
	PriorityHigh     = "Alta"
	PriorityCritical = "Crítica"
)

// AuditEntry is one row of the append-only audit log.
type AuditEntry struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	ActionType string    `json:"action_type"`
	TargetType string    `json:"target_type"`
	TargetID   *string   `json:"target_id"`
	Details    string    `json:"details"`
	Timestamp  time.Time `json:"timestamp"`
}

// Approval workflow states and item kinds, as stored.
const (
	ApprovalPending  = "pending_approval"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"

	ApprovalItemEquipment = "equipment"
	ApprovalItemLicense   = "license"
)

// PendingApproval is one queued item awaiting manager review.
type PendingApproval struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ItemType string `json:"itemType"`
}

// ApprovalRequest is the POST /api/approvals/approve and /api/approvals/reject
// body. Reason is only read on rejection.
type ApprovalRequest struct {
	ItemType string `json:"type"`
	ID       int64  `json:"id"`
	Reason   string `json:"reason,omitempty"`
}

// PublicSettings is the subset of settings the unauthenticated GET serves:
// what the login screen needs, nothing secret.
type PublicSettings struct {
	CompanyName  string `json:"companyName"`
	SSOEnabled   bool   `json:"isSsoEnabled"`
	TwoFAEnabled bool   `json:"is2faEnabled"`
	Require2FA   bool   `json:"require2fa"`
}

// Settings is the singleton application configuration.
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

// StatusResponse is the GET /api/status body.
type StatusResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime,omitempty"`
	Version string `json:"version,omitempty"`
}

// MessageResponse is the generic success body for operations with no
// meaningful payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}
