package inventsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListEquipment returns the equipment rows visible to the caller. Admins and
// user managers see the full inventory; plain users only their own assets.
func (s *Session) ListEquipment(ctx context.Context) ([]Equipment, error) {
	if ds := s.demoData(); ds != nil {
		return ds.Equipment(), nil
	}
	var out []Equipment
	if err := s.do(ctx, http.MethodGet, "/api/equipment", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEquipment registers a hardware asset and returns the stored row.
func (s *Session) CreateEquipment(ctx context.Context, e Equipment) (*Equipment, error) {
	if ds := s.demoData(); ds != nil {
		return ds.CreateEquipment(e), nil
	}
	var out Equipment
	if err := s.do(ctx, http.MethodPost, "/api/equipment", e, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEquipment replaces an equipment row. Changes to tracked fields show
// up in the row's history.
func (s *Session) UpdateEquipment(ctx context.Context, id int64, e Equipment) (*Equipment, error) {
	if ds := s.demoData(); ds != nil {
		return ds.UpdateEquipment(id, e)
	}
	var out Equipment
	path := fmt.Sprintf("/api/equipment/%d", id)
	if err := s.do(ctx, http.MethodPut, path, e, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEquipment removes an equipment row.
func (s *Session) DeleteEquipment(ctx context.Context, id int64) error {
	if ds := s.demoData(); ds != nil {
		return ds.DeleteEquipment(id)
	}
	path := fmt.Sprintf("/api/equipment/%d", id)
	return s.do(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}

// EquipmentHistory returns the recorded field changes for one equipment row,
// newest first.
func (s *Session) EquipmentHistory(ctx context.Context, id int64) ([]EquipmentHistory, error) {
	if ds := s.demoData(); ds != nil {
		return ds.History(id), nil
	}
	var out []EquipmentHistory
	path := fmt.Sprintf("/api/equipment/%d/history", id)
	if err := s.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
