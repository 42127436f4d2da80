package inventsdk

import (
	"context"
	"net/http"
)

// PendingApprovals lists the items queued for manager review. Manager or
// admin role required.
func (s *Session) PendingApprovals(ctx context.Context) ([]PendingApproval, error) {
	if ds := s.demoData(); ds != nil {
		return ds.PendingApprovals(), nil
	}
	var out []PendingApproval
	if err := s.do(ctx, http.MethodGet, "/api/approvals/pending", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveItem approves a queued equipment or license row.
func (s *Session) ApproveItem(ctx context.Context, itemType string, id int64) error {
	if ds := s.demoData(); ds != nil {
		return ds.SetApproval(itemType, id, ApprovalApproved, nil)
	}
	req := ApprovalRequest{ItemType: itemType, ID: id}
	return s.do(ctx, http.MethodPost, "/api/approvals/approve", req, nil, http.StatusNoContent)
}

// RejectItem rejects a queued row, keeping the reason for the requester.
func (s *Session) RejectItem(ctx context.Context, itemType string, id int64, reason string) error {
	if ds := s.demoData(); ds != nil {
		return ds.SetApproval(itemType, id, ApprovalRejected, &reason)
	}
	req := ApprovalRequest{ItemType: itemType, ID: id, Reason: reason}
	return s.do(ctx, http.MethodPost, "/api/approvals/reject", req, nil, http.StatusNoContent)
}
