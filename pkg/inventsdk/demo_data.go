package inventsdk

import (
	"sync"
	"time"
)

func strp(s string) *string { return &s }

func i64p(v int64) *int64 { return &v }

func demoUsers() []User {
	return []User{
		{ID: 1, Username: "admin", RealName: "Marcelo Reis", Email: "marcelo.reis@usereserva.com", Role: RoleAdmin, MFAEnabled: true},
		{ID: 2, Username: "ana.tech", RealName: "Ana Souza", Email: "ana.souza@empresa.com.br", Role: RoleUserManager},
		{ID: 3, Username: "joao.user", RealName: "João Silva", Email: "joao.silva@empresa.com.br", Role: RoleUser},
	}
}

func demoEquipment() []Equipment {
	return []Equipment{
		{ID: 101, Name: `MacBook Pro 14"`, Brand: strp("Apple"), Model: strp("M2 Pro"), Serial: strp("ZMX001234"), AssetTag: strp("RES-001"), AssignedUser: strp("Marcelo Reis"), Status: strp("Em Uso"), Sector: strp("TI"), Location: strp("Rio de Janeiro"), Type: strp("Notebook")},
		{ID: 102, Name: "Dell Latitude 5430", Brand: strp("Dell"), Model: strp("i7 12th Gen"), Serial: strp("DELL-9988"), AssetTag: strp("RES-002"), AssignedUser: strp("Ana Souza"), Status: strp("Em Uso"), Sector: strp("RH"), Location: strp("São Paulo"), Type: strp("Notebook")},
		{ID: 103, Name: `Monitor UltraSharp 27"`, Brand: strp("Dell"), Model: strp("U2723QE"), Serial: strp("MON-5544"), AssetTag: strp("RES-003"), Status: strp("Estoque"), Sector: strp("Estoque Central"), Location: strp("Curitiba"), Type: strp("Periférico")},
		{ID: 104, Name: "iPad Air 5", Brand: strp("Apple"), Model: strp("64GB Wi-Fi"), Serial: strp("IPAD-6677"), AssetTag: strp("RES-004"), AssignedUser: strp("João Silva"), Status: strp("Em Uso"), Sector: strp("Vendas"), Location: strp("Belo Horizonte"), Type: strp("Tablet")},
		{ID: 105, Name: "ThinkPad X1 Carbon", Brand: strp("Lenovo"), Model: strp("Gen 10"), Serial: strp("LENO-3322"), AssetTag: strp("RES-005"), Status: strp("Manutenção"), Sector: strp("TI Suporte"), Location: strp("Rio de Janeiro"), Type: strp("Notebook")},
	}
}

func demoLicenses() []License {
	return []License{
		{ID: 201, Product: "Microsoft 365 Business Premium", LicenseType: strp("Assinatura"), SerialKey: "XXXXX-YYYYY-ZZZZZ", AssignedUser: "Marcelo Reis", Company: strp("Reserva"), ExpiryDate: strp("2025-12-31")},
		{ID: 202, Product: "Adobe Creative Cloud", LicenseType: strp("Assinatura"), SerialKey: "ADBE-1234-5678", AssignedUser: "Ana Souza", Company: strp("Reserva"), Sector: strp("Marketing"), ExpiryDate: strp("2025-08-15")},
		{ID: 203, Product: "Windows 11 Pro", LicenseType: strp("OEM"), SerialKey: "W11-PRO-667-889", AssignedUser: "João Silva", Company: strp("Reserva"), ComputerName: strp("RES-DSK-09")},
		{ID: 204, Product: "Microsoft 365 Business Premium", LicenseType: strp("Assinatura"), SerialKey: "AAAAA-BBBBB-CCCCC", AssignedUser: "Ana Souza", Company: strp("Reserva"), ExpiryDate: strp("2025-12-31")},
	}
}

func demoLicenseTotals() LicenseTotals {
	return LicenseTotals{
		"Microsoft 365 Business Premium": 10,
		"Adobe Creative Cloud":           5,
		"Windows 11 Pro":                 50,
		"Slack Pro":                      20,
	}
}

func demoTickets(now time.Time) []Ticket {
	return []Ticket{
		{ID: 501, Title: "Tela Azul constante no Notebook", Description: "O equipamento apresenta BSOD a cada 2 horas de uso.", Category: "Hardware", Status: TicketInProgress, Priority: PriorityHigh, RequesterID: 3, RequesterName: "João Silva", EquipmentID: i64p(104), EquipmentSerial: strp("IPAD-6677"), CreatedAt: now, UpdatedAt: now},
		{ID: 502, Title: "Acesso negado ao SAP", Description: "Usuário não consegue logar no módulo financeiro.", Category: "Acesso", Status: TicketOpen, Priority: PriorityMedium, RequesterID: 2, RequesterName: "Ana Souza", CreatedAt: now, UpdatedAt: now},
	}
}

func demoAudit(now time.Time) []AuditEntry {
	return []AuditEntry{
		{ID: 1, Username: "admin", ActionType: "UPDATE", TargetType: "EQUIPMENT", TargetID: strp("101"), Details: "Alterou status para Em Uso", Timestamp: now},
		{ID: 2, Username: "admin", ActionType: "LOGIN", TargetType: "USER", TargetID: strp("1"), Details: "Login efetuado com sucesso", Timestamp: now},
		{ID: 3, Username: "ana.tech", ActionType: "CREATE", TargetType: "LICENSE", TargetID: strp("204"), Details: "Atribuiu licença M365 para Ana Souza", Timestamp: now},
	}
}

func demoSettings() Settings {
	return Settings{CompanyName: "MRR INFORMATICA (Demo)", TwoFAEnabled: true}
}

// demoDataset is the mutable in-memory store behind an active demo run.
// Edits made in demo mode land here and vanish on the next activation.
type demoDataset struct {
	mu        sync.Mutex
	users     []User
	equipment []Equipment
	licenses  []License
	totals    LicenseTotals
	tickets   []Ticket
	audit     []AuditEntry
	settings  Settings
	nextID    int64
}

func newDemoDataset() *demoDataset {
	now := time.Now()
	return &demoDataset{
		users:     demoUsers(),
		equipment: demoEquipment(),
		licenses:  demoLicenses(),
		totals:    demoLicenseTotals(),
		tickets:   demoTickets(now),
		audit:     demoAudit(now),
		settings:  demoSettings(),
		nextID:    1000,
	}
}

func (d *demoDataset) id() int64 {
	d.nextID++
	return d.nextID
}

func (d *demoDataset) Users() []User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]User(nil), d.users...)
}

func (d *demoDataset) CreateUser(req CreateUserRequest) *User {
	d.mu.Lock()
	defer d.mu.Unlock()
	role := req.Role
	if role == "" {
		role = RoleUser
	}
	u := User{ID: d.id(), Username: req.Username, RealName: req.RealName, Email: req.Email, Role: role}
	d.users = append(d.users, u)
	return &u
}

func (d *demoDataset) UpdateUser(id int64, req UpdateUserRequest) (*User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.users {
		if d.users[i].ID == id {
			d.users[i].RealName = req.RealName
			d.users[i].Email = req.Email
			d.users[i].Role = req.Role
			d.users[i].AvatarURL = req.AvatarURL
			u := d.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (d *demoDataset) DeleteUser(id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.users {
		if d.users[i].ID == id {
			d.users = append(d.users[:i], d.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (d *demoDataset) Equipment() []Equipment {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Equipment(nil), d.equipment...)
}

func (d *demoDataset) CreateEquipment(e Equipment) *Equipment {
	d.mu.Lock()
	defer d.mu.Unlock()
	e.ID = d.id()
	d.equipment = append(d.equipment, e)
	return &e
}

func (d *demoDataset) UpdateEquipment(id int64, e Equipment) (*Equipment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.equipment {
		if d.equipment[i].ID == id {
			e.ID = id
			d.equipment[i] = e
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (d *demoDataset) DeleteEquipment(id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.equipment {
		if d.equipment[i].ID == id {
			d.equipment = append(d.equipment[:i], d.equipment[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (d *demoDataset) Licenses() []License {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]License(nil), d.licenses...)
}

func (d *demoDataset) CreateLicense(l License) *License {
	d.mu.Lock()
	defer d.mu.Unlock()
	l.ID = d.id()
	d.licenses = append(d.licenses, l)
	return &l
}

func (d *demoDataset) UpdateLicense(id int64, l License) (*License, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.licenses {
		if d.licenses[i].ID == id {
			l.ID = id
			d.licenses[i] = l
			return &l, nil
		}
	}
	return nil, ErrNotFound
}

func (d *demoDataset) DeleteLicense(id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.licenses {
		if d.licenses[i].ID == id {
			d.licenses = append(d.licenses[:i], d.licenses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (d *demoDataset) Totals() LicenseTotals {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(LicenseTotals, len(d.totals))
	for k, v := range d.totals {
		out[k] = v
	}
	return out
}

func (d *demoDataset) SaveTotals(totals LicenseTotals) LicenseTotals {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.totals = make(LicenseTotals, len(totals))
	for k, v := range totals {
		d.totals[k] = v
	}
	out := make(LicenseTotals, len(d.totals))
	for k, v := range d.totals {
		out[k] = v
	}
	return out
}

func (d *demoDataset) Tickets() []Ticket {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Ticket(nil), d.tickets...)
}

func (d *demoDataset) CreateTicket(t Ticket, requester *User) *Ticket {
	d.mu.Lock()
	defer d.mu.Unlock()
	t.ID = d.id()
	if requester != nil {
		t.RequesterID = requester.ID
		t.RequesterName = requester.RealName
	}
	if t.Status == "" {
		t.Status = TicketOpen
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	d.tickets = append(d.tickets, t)
	return &t
}

func (d *demoDataset) UpdateTicket(id int64, t Ticket) (*Ticket, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.tickets {
		if d.tickets[i].ID == id {
			t.ID = id
			t.CreatedAt = d.tickets[i].CreatedAt
			t.UpdatedAt = time.Now()
			d.tickets[i] = t
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (d *demoDataset) DeleteTicket(id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.tickets {
		if d.tickets[i].ID == id {
			d.tickets = append(d.tickets[:i], d.tickets[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (d *demoDataset) Audit(limit int) []AuditEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := append([]AuditEntry(nil), d.audit...)
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (d *demoDataset) Settings() Settings {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settings
}

func (d *demoDataset) SaveSettings(s Settings) Settings {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.settings = s
	return s
}

func (d *demoDataset) PendingApprovals() []PendingApproval {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := []PendingApproval{}
	for _, e := range d.equipment {
		if e.ApprovalStatus == ApprovalPending {
			out = append(out, PendingApproval{ID: e.ID, Name: e.Name, ItemType: ApprovalItemEquipment})
		}
	}
	for _, l := range d.licenses {
		if l.ApprovalStatus == ApprovalPending {
			out = append(out, PendingApproval{ID: l.ID, Name: l.Product, ItemType: ApprovalItemLicense})
		}
	}
	return out
}

func (d *demoDataset) SetApproval(itemType string, id int64, status string, reason *string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch itemType {
	case ApprovalItemEquipment:
		for i := range d.equipment {
			if d.equipment[i].ID == id {
				d.equipment[i].ApprovalStatus = status
				d.equipment[i].RejectionReason = reason
				return nil
			}
		}
	case ApprovalItemLicense:
		for i := range d.licenses {
			if d.licenses[i].ID == id {
				d.licenses[i].ApprovalStatus = status
				d.licenses[i].RejectionReason = reason
				return nil
			}
		}
	}
	return ErrNotFound
}

func (d *demoDataset) History(equipmentID int64) []EquipmentHistory {
	// Fixture rows carry no recorded changes.
	_ = equipmentID
	return []EquipmentHistory{}
}
