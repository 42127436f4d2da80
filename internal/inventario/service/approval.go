package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
)

// ErrUnknownApprovalItem flags an approval request naming an item kind the
// queue does not track.
var ErrUnknownApprovalItem = errors.New("unknown approval item type")

// ApprovalService drives the review queue for equipment and license rows
// registered by plain users. Managers and admins approve or reject; every
// decision is audited.
type ApprovalService struct {
	Store store.Store
}

// Pending returns the queued items, equipment first, oldest first within
// each kind.
func (s *ApprovalService) Pending(ctx context.Context) ([]domain.PendingApproval, error) {
	equipment, err := s.Store.Equipment().ListPendingEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending equipment: %w", err)
	}
	licenses, err := s.Store.Licenses().ListPendingLicenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending licenses: %w", err)
	}

	out := make([]domain.PendingApproval, 0, len(equipment)+len(licenses))
	for _, e := range equipment {
		out = append(out, domain.PendingApproval{
			ID: e.ID, Name: e.Name, ItemType: domain.ApprovalItemEquipment,
		})
	}
	for _, l := range licenses {
		out = append(out, domain.PendingApproval{
			ID: l.ID, Name: l.Product, ItemType: domain.ApprovalItemLicense,
		})
	}
	return out, nil
}

// Approve marks the item approved and clears any prior rejection reason.
func (s *ApprovalService) Approve(ctx context.Context, actor, itemType string, id int64) error {
	name, err := s.setStatus(ctx, itemType, id, domain.ApprovalApproved, nil)
	if err != nil {
		return err
	}

	logAction(ctx, s.Store, actor, domain.AuditApprove, approvalTarget(itemType),
		idRef(id), fmt.Sprintf("Aprovado: %s", name))
	return nil
}

// Reject marks the item rejected, keeping the reason for the requester.
func (s *ApprovalService) Reject(ctx context.Context, actor, itemType string, id int64, reason string) error {
	name, err := s.setStatus(ctx, itemType, id, domain.ApprovalRejected, &reason)
	if err != nil {
		return err
	}

	logAction(ctx, s.Store, actor, domain.AuditReject, approvalTarget(itemType),
		idRef(id), fmt.Sprintf("Rejeitado: %s (%s)", name, reason))
	return nil
}

func (s *ApprovalService) setStatus(ctx context.Context, itemType string, id int64, status domain.ApprovalStatus, reason *string) (string, error) {
	switch itemType {
	case domain.ApprovalItemEquipment:
		e, err := s.Store.Equipment().GetEquipmentByID(ctx, id)
		if err != nil {
			return "", err
		}
		return e.Name, s.Store.Equipment().SetApprovalStatus(ctx, id, status, reason)
	case domain.ApprovalItemLicense:
		l, err := s.Store.Licenses().GetLicenseByID(ctx, id)
		if err != nil {
			return "", err
		}
		return l.Product, s.Store.Licenses().SetApprovalStatus(ctx, id, status, reason)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownApprovalItem, itemType)
	}
}

func approvalTarget(itemType string) domain.AuditTarget {
	if itemType == domain.ApprovalItemLicense {
		return domain.TargetLicense
	}
	return domain.TargetEquipment
}
