package sqlite

import (
	"context"
	"database/sql"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
)

type equipmentRepo struct {
	db dbtx
}

const equipmentColumns = `id, equipamento, brand, model, serial, patrimonio,
	rustdesk_id, usuario_atual, usuario_anterior, setor, local, status, tipo,
	data_entrega_usuario, data_devolucao, observacoes, approval_status,
	rejection_reason, created_by_id`

func scanEquipment(row interface{ Scan(...any) error }) (domain.Equipment, error) {
	var (
		e               domain.Equipment
		brand           sql.NullString
		model           sql.NullString
		serial          sql.NullString
		assetTag        sql.NullString
		remoteID        sql.NullString
		assignedUser    sql.NullString
		previousUser    sql.NullString
		sector          sql.NullString
		location        sql.NullString
		status          sql.NullString
		typ             sql.NullString
		deliveryDate    sql.NullString
		returnDate      sql.NullString
		notes           sql.NullString
		rejectionReason sql.NullString
		createdByID     sql.NullInt64
	)
	err := row.Scan(
		&e.ID, &e.Name, &brand, &model, &serial, &assetTag,
		&remoteID, &assignedUser, &previousUser, &sector, &location, &status, &typ,
		&deliveryDate, &returnDate, &notes, &e.ApprovalStatus,
		&rejectionReason, &createdByID,
	)
	if err != nil {
		return domain.Equipment{}, err
	}
	e.Brand = mapNullStringPtr(brand)
	e.Model = mapNullStringPtr(model)
	e.Serial = mapNullStringPtr(serial)
	e.AssetTag = mapNullStringPtr(assetTag)
	e.RemoteAccessID = mapNullStringPtr(remoteID)
	e.AssignedUser = mapNullStringPtr(assignedUser)
	e.PreviousUser = mapNullStringPtr(previousUser)
	e.Sector = mapNullStringPtr(sector)
	e.Location = mapNullStringPtr(location)
	e.Status = mapNullStringPtr(status)
	e.Type = mapNullStringPtr(typ)
	e.DeliveryDate = mapNullStringPtr(deliveryDate)
	e.ReturnDate = mapNullStringPtr(returnDate)
	e.Notes = mapNullStringPtr(notes)
	e.RejectionReason = mapNullStringPtr(rejectionReason)
	e.CreatedByID = mapNullInt64Ptr(createdByID)
	return e, nil
}

func (r *equipmentRepo) GetEquipmentByID(ctx context.Context, id int64) (domain.Equipment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+equipmentColumns+` FROM equipment WHERE id = ?`, id)
	e, err := scanEquipment(row)
	if err != nil {
		return domain.Equipment{}, mapNotFound(err)
	}
	return e, nil
}

func (r *equipmentRepo) ListEquipment(ctx context.Context, ownerName string, ownerID int64) ([]domain.Equipment, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if ownerName != "" {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+equipmentColumns+` FROM equipment
			 WHERE usuario_atual = ? OR created_by_id = ? ORDER BY id DESC`,
			ownerName, ownerID)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+equipmentColumns+` FROM equipment ORDER BY id DESC`)
	}
	if err != nil {
		return nil, mapUnavailable(err)
	}
	defer rows.Close()

	var list []domain.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, mapUnavailable(err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *equipmentRepo) CreateEquipment(ctx context.Context, e domain.Equipment) (int64, error) {
	if e.ApprovalStatus == "" {
		e.ApprovalStatus = domain.ApprovalApproved
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO equipment (equipamento, brand, model, serial, patrimonio,
		 rustdesk_id, usuario_atual, usuario_anterior, setor, local, status, tipo,
		 data_entrega_usuario, data_devolucao, observacoes, approval_status,
		 rejection_reason, created_by_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, mapOptionalString(e.Brand), mapOptionalString(e.Model),
		mapOptionalString(e.Serial), mapOptionalString(e.AssetTag),
		mapOptionalString(e.RemoteAccessID), mapOptionalString(e.AssignedUser),
		mapOptionalString(e.PreviousUser), mapOptionalString(e.Sector),
		mapOptionalString(e.Location), mapOptionalString(e.Status),
		mapOptionalString(e.Type), mapOptionalString(e.DeliveryDate),
		mapOptionalString(e.ReturnDate), mapOptionalString(e.Notes),
		string(e.ApprovalStatus), mapOptionalString(e.RejectionReason),
		mapOptionalInt64(e.CreatedByID),
	)
	if err != nil {
		return 0, mapUnavailable(err)
	}
	return res.LastInsertId()
}

func (r *equipmentRepo) UpdateEquipment(ctx context.Context, e domain.Equipment) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE equipment SET equipamento = ?, brand = ?, model = ?, serial = ?,
		 patrimonio = ?, rustdesk_id = ?, usuario_atual = ?, usuario_anterior = ?,
		 setor = ?, local = ?, status = ?, tipo = ?, data_entrega_usuario = ?,
		 data_devolucao = ?, observacoes = ?, approval_status = ?,
		 rejection_reason = ? WHERE id = ?`,
		e.Name, mapOptionalString(e.Brand), mapOptionalString(e.Model),
		mapOptionalString(e.Serial), mapOptionalString(e.AssetTag),
		mapOptionalString(e.RemoteAccessID), mapOptionalString(e.AssignedUser),
		mapOptionalString(e.PreviousUser), mapOptionalString(e.Sector),
		mapOptionalString(e.Location), mapOptionalString(e.Status),
		mapOptionalString(e.Type), mapOptionalString(e.DeliveryDate),
		mapOptionalString(e.ReturnDate), mapOptionalString(e.Notes),
		string(e.ApprovalStatus), mapOptionalString(e.RejectionReason), e.ID,
	)
	if err != nil {
		return mapUnavailable(err)
	}
	return requireRowAffected(res)
}

func (r *equipmentRepo) DeleteEquipment(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = ?`, id)
	if err != nil {
		return mapUnavailable(err)
	}
	return requireRowAffected(res)
}

func (r *equipmentRepo) ListPendingEquipment(ctx context.Context) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+equipmentColumns+` FROM equipment
		 WHERE approval_status = ? ORDER BY id`,
		string(domain.ApprovalPending))
	if err != nil {
		return nil, mapUnavailable(err)
	}
	defer rows.Close()

	var list []domain.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *equipmentRepo) SetApprovalStatus(ctx context.Context, id int64, status domain.ApprovalStatus, reason *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE equipment SET approval_status = ?, rejection_reason = ? WHERE id = ?`,
		string(status), mapOptionalString(reason), id)
	if err != nil {
		return mapUnavailable(err)
	}
	return requireRowAffected(res)
}

func (r *equipmentRepo) AppendHistory(ctx context.Context, h domain.EquipmentHistory) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO equipment_history (equipment_id, changed_by, change_type, from_value, to_value)
		 VALUES (?, ?, ?, ?, ?)`,
		h.EquipmentID, h.ChangedBy, h.ChangeType,
		mapOptionalString(h.FromValue), mapOptionalString(h.ToValue),
	)
	return mapUnavailable(err)
}

func (r *equipmentRepo) ListHistory(ctx context.Context, equipmentID int64) ([]domain.EquipmentHistory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, equipment_id, timestamp, changed_by, change_type, from_value, to_value
		 FROM equipment_history WHERE equipment_id = ? ORDER BY timestamp DESC, id DESC`,
		equipmentID,
	)
	if err != nil {
		return nil, mapUnavailable(err)
	}
	defer rows.Close()

	var list []domain.EquipmentHistory
	for rows.Next() {
		var (
			h         domain.EquipmentHistory
			fromValue sql.NullString
			toValue   sql.NullString
		)
		if err := rows.Scan(&h.ID, &h.EquipmentID, &h.Timestamp, &h.ChangedBy,
			&h.ChangeType, &fromValue, &toValue); err != nil {
			return nil, mapUnavailable(err)
		}
		h.FromValue = mapNullStringPtr(fromValue)
		h.ToValue = mapNullStringPtr(toValue)
		list = append(list, h)
	}
	return list, rows.Err()
}
