package sqlite

import (
	"context"
	"database/sql"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
)

type ticketsRepo struct {
	db dbtx
}

const ticketColumns = `id, title, description, category, status, priority,
	requester_id, requester_name, technician_id, technician_name, equipment_id,
	equipment_serial, remote_link, sla_due, created_at, updated_at`

func scanTicket(row interface{ Scan(...any) error }) (domain.Ticket, error) {
	var (
		t               domain.Ticket
		technicianID    sql.NullInt64
		technicianName  sql.NullString
		equipmentID     sql.NullInt64
		equipmentSerial sql.NullString
		remoteLink      sql.NullString
		slaDue          sql.NullTime
	)
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Category, &t.Status, &t.Priority,
		&t.RequesterID, &t.RequesterName, &technicianID, &technicianName,
		&equipmentID, &equipmentSerial, &remoteLink, &slaDue,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Ticket{}, err
	}
	t.TechnicianID = mapNullInt64Ptr(technicianID)
	t.TechnicianName = mapNullStringPtr(technicianName)
	t.EquipmentID = mapNullInt64Ptr(equipmentID)
	t.EquipmentSerial = mapNullStringPtr(equipmentSerial)
	t.RemoteLink = mapNullStringPtr(remoteLink)
	t.SLADue = mapNullTimePtr(slaDue)
	return t, nil
}

func (r *ticketsRepo) GetTicketByID(ctx context.Context, id int64) (domain.Ticket, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE id = ?`, id)
	t, err := scanTicket(row)
	if err != nil {
		return domain.Ticket{}, mapNotFound(err)
	}
	return t, nil
}

func (r *ticketsRepo) ListTickets(ctx context.Context, requesterID int64) ([]domain.Ticket, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if requesterID > 0 {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+ticketColumns+` FROM tickets WHERE requester_id = ? ORDER BY id DESC`,
			requesterID)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+ticketColumns+` FROM tickets ORDER BY id DESC`)
	}
	if err != nil {
		return nil, mapUnavailable(err)
	}
	defer rows.Close()

	var list []domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, mapUnavailable(err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *ticketsRepo) CreateTicket(ctx context.Context, t domain.Ticket) (int64, error) {
	if t.Status == "" {
		t.Status = domain.TicketOpen
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tickets (title, description, category, status, priority,
		 requester_id, requester_name, technician_id, technician_name,
		 equipment_id, equipment_serial, remote_link, sla_due)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Title, t.Description, string(t.Category), string(t.Status),
		string(t.Priority), t.RequesterID, t.RequesterName,
		mapOptionalInt64(t.TechnicianID), mapOptionalString(t.TechnicianName),
		mapOptionalInt64(t.EquipmentID), mapOptionalString(t.EquipmentSerial),
		mapOptionalString(t.RemoteLink), mapOptionalTime(t.SLADue),
	)
	if err != nil {
		return 0, mapUnavailable(err)
	}
	return res.LastInsertId()
}

func (r *ticketsRepo) UpdateTicket(ctx context.Context, t domain.Ticket) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tickets SET title = ?, description = ?, category = ?, status = ?,
		 priority = ?, technician_id = ?, technician_name = ?, equipment_id = ?,
		 equipment_serial = ?, remote_link = ?, sla_due = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		t.Title, t.Description, string(t.Category), string(t.Status),
		string(t.Priority), mapOptionalInt64(t.TechnicianID),
		mapOptionalString(t.TechnicianName), mapOptionalInt64(t.EquipmentID),
		mapOptionalString(t.EquipmentSerial), mapOptionalString(t.RemoteLink),
		mapOptionalTime(t.SLADue), t.ID,
	)
	if err != nil {
		return mapUnavailable(err)
	}
	return requireRowAffected(res)
}

func (r *ticketsRepo) DeleteTicket(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id)
	if err != nil {
		return mapUnavailable(err)
	}
	return requireRowAffected(res)
}
