package inventsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListLicenses returns the license assignments visible to the caller.
func (s *Session) ListLicenses(ctx context.Context) ([]License, error) {
	if ds := s.demoData(); ds != nil {
		return ds.Licenses(), nil
	}
	var out []License
	if err := s.do(ctx, http.MethodGet, "/api/licenses", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLicense registers a license assignment and returns the stored row.
func (s *Session) CreateLicense(ctx context.Context, l License) (*License, error) {
	if ds := s.demoData(); ds != nil {
		return ds.CreateLicense(l), nil
	}
	var out License
	if err := s.do(ctx, http.MethodPost, "/api/licenses", l, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLicense replaces a license row.
func (s *Session) UpdateLicense(ctx context.Context, id int64, l License) (*License, error) {
	if ds := s.demoData(); ds != nil {
		return ds.UpdateLicense(id, l)
	}
	var out License
	path := fmt.Sprintf("/api/licenses/%d", id)
	if err := s.do(ctx, http.MethodPut, path, l, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLicense removes a license row.
func (s *Session) DeleteLicense(ctx context.Context, id int64) error {
	if ds := s.demoData(); ds != nil {
		return ds.DeleteLicense(id)
	}
	path := fmt.Sprintf("/api/licenses/%d", id)
	return s.do(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}

// GetLicenseTotals returns the purchased-seat count per product.
func (s *Session) GetLicenseTotals(ctx context.Context) (LicenseTotals, error) {
	if ds := s.demoData(); ds != nil {
		return ds.Totals(), nil
	}
	var out LicenseTotals
	if err := s.do(ctx, http.MethodGet, "/api/license-totals", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveLicenseTotals replaces the purchased-seat counts wholesale. Products
// absent from totals are dropped.
func (s *Session) SaveLicenseTotals(ctx context.Context, totals LicenseTotals) (LicenseTotals, error) {
	if ds := s.demoData(); ds != nil {
		return ds.SaveTotals(totals), nil
	}
	var out LicenseTotals
	if err := s.do(ctx, http.MethodPost, "/api/license-totals", totals, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
