package domain

// License is a software license assignment. JSON keys follow the upstream
// inventory schema.
type License struct {
	ID              int64          `json:"id"`
	Product         string         `json:"produto"`
	LicenseType     *string        `json:"tipoLicenca,omitempty"`
	SerialKey       string         `json:"chaveSerial"`
	ExpiryDate      *string        `json:"dataExpiracao,omitempty"`
	AssignedUser    string         `json:"usuario"`
	JobTitle        *string        `json:"cargo,omitempty"`
	Company         *string        `json:"empresa,omitempty"`
	Sector          *string        `json:"setor,omitempty"`
	Manager         *string        `json:"gestor,omitempty"`
	CostCenter      *string        `json:"centroCusto,omitempty"`
	ComputerName    *string        `json:"nomeComputador,omitempty"`
	TicketNumber    *string        `json:"numeroChamado,omitempty"`
	Notes           *string        `json:"observacoes,omitempty"`
	ApprovalStatus  ApprovalStatus `json:"approval_status,omitempty"`
	RejectionReason *string        `json:"rejection_reason,omitempty"`
	CreatedByID     *int64         `json:"created_by_id,omitempty"`
}

// LicenseTotals maps product name to the number of purchased seats.
type LicenseTotals map[string]int
