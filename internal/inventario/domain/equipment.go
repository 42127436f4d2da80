package domain

import "time"

// Approval states for equipment and license records created by plain users.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending_approval"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Item kinds flowing through the approval queue.
const (
	ApprovalItemEquipment = "equipment"
	ApprovalItemLicense   = "license"
)

// PendingApproval is one queued item awaiting manager review.
type PendingApproval struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ItemType string `json:"itemType"`
}

// Equipment is a tracked hardware asset. Field names follow the upstream
// inventory schema, JSON keys included, so existing clients keep working.
type Equipment struct {
	ID              int64          `json:"id"`
	Name            string         `json:"equipamento"`
	Brand           *string        `json:"brand,omitempty"`
	Model           *string        `json:"model,omitempty"`
	Serial          *string        `json:"serial,omitempty"`
	AssetTag        *string        `json:"patrimonio,omitempty"`
	RemoteAccessID  *string        `json:"rustdesk_id,omitempty"`
	AssignedUser    *string        `json:"usuarioAtual,omitempty"`
	PreviousUser    *string        `json:"usuarioAnterior,omitempty"`
	Sector          *string        `json:"setor,omitempty"`
	Location        *string        `json:"local,omitempty"`
	Status          *string        `json:"status,omitempty"`
	Type            *string        `json:"tipo,omitempty"`
	DeliveryDate    *string        `json:"dataEntregaUsuario,omitempty"`
	ReturnDate      *string        `json:"dataDevolucao,omitempty"`
	Notes           *string        `json:"observacoes,omitempty"`
	ApprovalStatus  ApprovalStatus `json:"approval_status,omitempty"`
	RejectionReason *string        `json:"rejection_reason,omitempty"`
	CreatedByID     *int64         `json:"created_by_id,omitempty"`
}

// EquipmentHistory is one recorded field change on an equipment row.
type EquipmentHistory struct {
	ID          int64     `json:"id"`
	EquipmentID int64     `json:"-"`
	Timestamp   time.Time `json:"timestamp"`
	ChangedBy   string    `json:"changedBy"`
	ChangeType  string    `json:"changeType"`
	FromValue   *string   `json:"from_value"`
	ToValue     *string   `json:"to_value"`
}
