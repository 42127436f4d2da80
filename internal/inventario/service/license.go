package service

import (
	"context"
	"fmt"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
)

// LicenseService manages software license assignments and per-product seat
// totals.
type LicenseService struct {
	Store store.Store
}

func (s *LicenseService) List(ctx context.Context, viewer domain.PublicUser) ([]domain.License, error) {
	if viewer.Role.SeesAllAssets() {
		return s.Store.Licenses().ListLicenses(ctx, "", 0)
	}
	return s.Store.Licenses().ListLicenses(ctx, viewer.RealName, viewer.ID)
}

func (s *LicenseService) Create(ctx context.Context, actor string, l domain.License) (domain.License, error) {
	id, err := s.Store.Licenses().CreateLicense(ctx, l)
	if err != nil {
		return domain.License{}, fmt.Errorf("failed to create license: %w", err)
	}
	l.ID = id

	logAction(ctx, s.Store, actor, domain.AuditCreate, domain.TargetLicense,
		idRef(id), fmt.Sprintf("Licença adicionada: %s para %s", l.Product, l.AssignedUser))

	return l, nil
}

func (s *LicenseService) Update(ctx context.Context, actor string, l domain.License) (domain.License, error) {
	// Approval state only moves through the approval queue; an update that
	// doesn't carry it keeps the stored value.
	if l.ApprovalStatus == "" {
		before, err := s.Store.Licenses().GetLicenseByID(ctx, l.ID)
		if err != nil {
			return domain.License{}, err
		}
		l.ApprovalStatus = before.ApprovalStatus
		l.RejectionReason = before.RejectionReason
	}

	if err := s.Store.Licenses().UpdateLicense(ctx, l); err != nil {
		return domain.License{}, err
	}

	logAction(ctx, s.Store, actor, domain.AuditUpdate, domain.TargetLicense,
		idRef(l.ID), fmt.Sprintf("Licença atualizada: %s", l.Product))

	return l, nil
}

func (s *LicenseService) Delete(ctx context.Context, actor string, id int64) error {
	existing, err := s.Store.Licenses().GetLicenseByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Store.Licenses().DeleteLicense(ctx, id); err != nil {
		return err
	}

	logAction(ctx, s.Store, actor, domain.AuditDelete, domain.TargetLicense,
		idRef(id), fmt.Sprintf("Licença removida: %s", existing.Product))
	return nil
}

func (s *LicenseService) Totals(ctx context.Context) (domain.LicenseTotals, error) {
	return s.Store.Licenses().GetTotals(ctx)
}

// SaveTotals atomically replaces the purchased-seat counts per product.
func (s *LicenseService) SaveTotals(ctx context.Context, actor string, totals domain.LicenseTotals) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Licenses().SetTotals(ctx, totals)
	})
	if err != nil {
		return fmt.Errorf("failed to save license totals: %w", err)
	}

	logAction(ctx, s.Store, actor, domain.AuditUpdate, domain.TargetTotals,
		nil, fmt.Sprintf("Totais de licenças atualizados (%d produtos)", len(totals)))
	return nil
}
