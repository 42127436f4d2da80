package domain

import "time"

// Ticket workflow states. Values are the Portuguese labels the UI and the
// stored rows use.
type TicketStatus string

const (
	TicketOpen        TicketStatus = "Aberto"
	TicketInProgress  TicketStatus = "Em Atendimento"
	TicketWaitingUser TicketStatus = "Aguardando Usuário"
	TicketResolved    TicketStatus = "Resolvido"
	TicketClosed      TicketStatus = "Fechado"
)

type TicketPriority string

const (
	PriorityLow      TicketPriority = "Baixa"
	PriorityMedium   TicketPriority = "Média"
	PriorityHigh     TicketPriority = "Alta"
	PriorityCritical TicketPriority = "Crítica"
)

type TicketCategory string

const (
	CategoryHardware TicketCategory = "Hardware"
	CategorySoftware TicketCategory = "Software"
	CategoryNetwork  TicketCategory = "Rede"
	CategoryAccess   TicketCategory = "Acesso"
	CategoryOther    TicketCategory = "Outros"
)

// Ticket is a service-desk request.
type Ticket struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Category        TicketCategory `json:"category"`
	Status          TicketStatus   `json:"status"`
	Priority        TicketPriority `json:"priority"`
	RequesterID     int64          `json:"requester_id"`
	RequesterName   string         `json:"requester_name"`
	TechnicianID    *int64         `json:"technician_id,omitempty"`
	TechnicianName  *string        `json:"technician_name,omitempty"`
	EquipmentID     *int64         `json:"equipment_id,omitempty"`
	EquipmentSerial *string        `json:"equipment_serial,omitempty"`
	RemoteLink      *string        `json:"remote_link,omitempty"`
	SLADue          *time.Time     `json:"sla_due,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
