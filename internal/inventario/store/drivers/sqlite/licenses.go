package sqlite

import (
	"context"
	"database/sql"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
)

type licensesRepo struct {
	db dbtx
}

const licenseColumns = `id, produto, tipo_licenca, chave_serial, data_expiracao,
	usuario, cargo, empresa, setor, gestor, centro_custo, nome_computador,
	numero_chamado, observacoes, approval_status, rejection_reason, created_by_id`

func scanLicense(row interface{ Scan(...any) error }) (domain.License, error) {
	var (
		l               domain.License
		licenseType     sql.NullString
		expiryDate      sql.NullString
		jobTitle        sql.NullString
		company         sql.NullString
		sector          sql.NullString
		manager         sql.NullString
		costCenter      sql.NullString
		computerName    sql.NullString
		ticketNumber    sql.NullString
		notes           sql.NullString
		rejectionReason sql.NullString
		createdByID     sql.NullInt64
	)
	err := row.Scan(
		&l.ID, &l.Product, &licenseType, &l.SerialKey, &expiryDate,
		&l.AssignedUser, &jobTitle, &company, &sector, &manager, &costCenter,
		&computerName, &ticketNumber, &notes, &l.ApprovalStatus,
		&rejectionReason, &createdByID,
	)
	if err != nil {
		return domain.License{}, err
	}
	l.LicenseType = mapNullStringPtr(licenseType)
	l.ExpiryDate = mapNullStringPtr(expiryDate)
	l.JobTitle = mapNullStringPtr(jobTitle)
	l.Company = mapNullStringPtr(company)
	l.Sector = mapNullStringPtr(sector)
	l.Manager = mapNullStringPtr(manager)
	l.CostCenter = mapNullStringPtr(costCenter)
	l.ComputerName = mapNullStringPtr(computerName)
	l.TicketNumber = mapNullStringPtr(ticketNumber)
	l.Notes = mapNullStringPtr(notes)
	l.RejectionReason = mapNullStringPtr(rejectionReason)
	l.CreatedByID = mapNullInt64Ptr(createdByID)
	return l, nil
}

func (r *licensesRepo) GetLicenseByID(ctx context.Context, id int64) (domain.License, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+licenseColumns+` FROM licenses WHERE id = ?`, id)
	l, err := scanLicense(row)
	if err != nil {
		return domain.License{}, mapNotFound(err)
	}
	return l, nil
}

func (r *licensesRepo) ListLicenses(ctx context.Context, ownerName string, ownerID int64) ([]domain.License, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if ownerName != "" {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+licenseColumns+` FROM licenses
			 WHERE usuario = ? OR created_by_id = ? ORDER BY id DESC`,
			ownerName, ownerID)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+licenseColumns+` FROM licenses ORDER BY id DESC`)
	}
	if err != nil {
		return nil, mapUnavailable(err)
	}
	defer rows.Close()

	var list []domain.License
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, mapUnavailable(err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *licensesRepo) CreateLicense(ctx context.Context, l domain.License) (int64, error) {
	if l.ApprovalStatus == "" {
		l.ApprovalStatus = domain.ApprovalApproved
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO licenses (produto, tipo_licenca, chave_serial, data_expiracao,
		 usuario, cargo, empresa, setor, gestor, centro_custo, nome_computador,
		 numero_chamado, observacoes, approval_status, rejection_reason, created_by_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.Product, mapOptionalString(l.LicenseType), l.SerialKey,
		mapOptionalString(l.ExpiryDate), l.AssignedUser,
		mapOptionalString(l.JobTitle), mapOptionalString(l.Company),
		mapOptionalString(l.Sector), mapOptionalString(l.Manager),
		mapOptionalString(l.CostCenter), mapOptionalString(l.ComputerName),
		mapOptionalString(l.TicketNumber), mapOptionalString(l.Notes),
		string(l.ApprovalStatus), mapOptionalString(l.RejectionReason),
		mapOptionalInt64(l.CreatedByID),
	)
	if err != nil {
		return 0, mapUnavailable(err)
	}
	return res.LastInsertId()
}

func (r *licensesRepo) UpdateLicense(ctx context.Context, l domain.License) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE licenses SET produto = ?, tipo_licenca = ?, chave_serial = ?,
		 data_expiracao = ?, usuario = ?, cargo = ?, empresa = ?, setor = ?,
		 gestor = ?, centro_custo = ?, nome_computador = ?, numero_chamado = ?,
		 observacoes = ?, approval_status = ?, rejection_reason = ? WHERE id = ?`,
		l.Product, mapOptionalString(l.LicenseType), l.SerialKey,
		mapOptionalString(l.ExpiryDate), l.AssignedUser,
		mapOptionalString(l.JobTitle), mapOptionalString(l.Company),
		mapOptionalString(l.Sector), mapOptionalString(l.Manager),
		mapOptionalString(l.CostCenter), mapOptionalString(l.ComputerName),
		mapOptionalString(l.TicketNumber), mapOptionalString(l.Notes),
		string(l.ApprovalStatus), mapOptionalString(l.RejectionReason), l.ID,
	)
	if err != nil {
		return mapUnavailable(err)
	}
	return requireRowAffected(res)
}

func (r *licensesRepo) DeleteLicense(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM licenses WHERE id = ?`, id)
	if err != nil {
		return mapUnavailable(err)
	}
	return requireRowAffected(res)
}

func (r *licensesRepo) ListPendingLicenses(ctx context.Context) ([]domain.License, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+licenseColumns+` FROM licenses
		 WHERE approval_status = ? ORDER BY id`,
		string(domain.ApprovalPending))
	if err != nil {
		return nil, mapUnavailable(err)
	}
	defer rows.Close()

	var list []domain.License
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *licensesRepo) SetApprovalStatus(ctx context.Context, id int64, status domain.ApprovalStatus, reason *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE licenses SET approval_status = ?, rejection_reason = ? WHERE id = ?`,
		string(status), mapOptionalString(reason), id)
	if err != nil {
		return mapUnavailable(err)
	}
	return requireRowAffected(res)
}

func (r *licensesRepo) GetTotals(ctx context.Context) (domain.LicenseTotals, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT produto, total FROM license_totals`)
	if err != nil {
		return nil, mapUnavailable(err)
	}
	defer rows.Close()

	totals := make(domain.LicenseTotals)
	for rows.Next() {
		var (
			product string
			total   int
		)
		if err := rows.Scan(&product, &total); err != nil {
			return nil, mapUnavailable(err)
		}
		totals[product] = total
	}
	return totals, rows.Err()
}

func (r *licensesRepo) SetTotals(ctx context.Context, totals domain.LicenseTotals) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM license_totals`); err != nil {
		return mapUnavailable(err)
	}
	for product, total := range totals {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO license_totals (produto, total) VALUES (?, ?)`,
			product, total); err != nil {
			return mapUnavailable(err)
		}
	}
	return nil
}
