package service

import (
	"context"
	"fmt"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
)

// EquipmentService manages the hardware inventory. Every mutation is
// audited, and relevant field changes are recorded in the per-row history.
type EquipmentService struct {
	Store store.Store
}

// List applies role-based visibility: plain users see only rows assigned to
// them or created by them, managers and admins see everything.
func (s *EquipmentService) List(ctx context.Context, viewer domain.PublicUser) ([]domain.Equipment, error) {
	if viewer.Role.SeesAllAssets() {
		return s.Store.Equipment().ListEquipment(ctx, "", 0)
	}
	return s.Store.Equipment().ListEquipment(ctx, viewer.RealName, viewer.ID)
}

func (s *EquipmentService) Get(ctx context.Context, id int64) (domain.Equipment, error) {
	return s.Store.Equipment().GetEquipmentByID(ctx, id)
}

func (s *EquipmentService) Create(ctx context.Context, actor string, e domain.Equipment) (domain.Equipment, error) {
	id, err := s.Store.Equipment().CreateEquipment(ctx, e)
	if err != nil {
		return domain.Equipment{}, fmt.Errorf("failed to create equipment: %w", err)
	}
	e.ID = id

	logAction(ctx, s.Store, actor, domain.AuditCreate, domain.TargetEquipment,
		idRef(id), fmt.Sprintf("Adicionado: %s", e.Name))

	return e, nil
}

// trackedField pairs a history label with an accessor, used to diff updates.
type trackedField struct {
	label string
	get   func(domain.Equipment) *string
}

var trackedFields = []trackedField{
	{"Usuário Atual", func(e domain.Equipment) *string { return e.AssignedUser }},
	{"Status", func(e domain.Equipment) *string { return e.Status }},
	{"Local", func(e domain.Equipment) *string { return e.Location }},
	{"Setor", func(e domain.Equipment) *string { return e.Sector }},
}

func (s *EquipmentService) Update(ctx context.Context, actor string, e domain.Equipment) (domain.Equipment, error) {
	before, err := s.Store.Equipment().GetEquipmentByID(ctx, e.ID)
	if err != nil {
		return domain.Equipment{}, err
	}

	// Approval state only moves through the approval queue; an update that
	// doesn't carry it keeps the stored value.
	if e.ApprovalStatus == "" {
		e.ApprovalStatus = before.ApprovalStatus
		e.RejectionReason = before.RejectionReason
	}

	if err := s.Store.Equipment().UpdateEquipment(ctx, e); err != nil {
		return domain.Equipment{}, fmt.Errorf("failed to update equipment: %w", err)
	}

	// Record per-field history for the fields the UI timelines show.
	for _, f := range trackedFields {
		from, to := f.get(before), f.get(e)
		if strPtrEqual(from, to) {
			continue
		}
		if err := s.Store.Equipment().AppendHistory(ctx, domain.EquipmentHistory{
			EquipmentID: e.ID,
			ChangedBy:   actor,
			ChangeType:  f.label,
			FromValue:   from,
			ToValue:     to,
		}); err != nil {
			return domain.Equipment{}, fmt.Errorf("failed to append history: %w", err)
		}
	}

	logAction(ctx, s.Store, actor, domain.AuditUpdate, domain.TargetEquipment,
		idRef(e.ID), fmt.Sprintf("Atualizado: %s", e.Name))

	return e, nil
}

func (s *EquipmentService) Delete(ctx context.Context, actor string, id int64) error {
	existing, err := s.Store.Equipment().GetEquipmentByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Store.Equipment().DeleteEquipment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	logAction(ctx, s.Store, actor, domain.AuditDelete, domain.TargetEquipment,
		idRef(id), fmt.Sprintf("Removido: %s", existing.Name))
	return nil
}

func (s *EquipmentService) History(ctx context.Context, equipmentID int64) ([]domain.EquipmentHistory, error) {
	return s.Store.Equipment().ListHistory(ctx, equipmentID)
}

func strPtrEqual(a, b *string) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return *a == *b
	}
}
