package inventsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListTickets returns the service-desk tickets visible to the caller. Plain
// users only see the tickets they opened.
func (s *Session) ListTickets(ctx context.Context) ([]Ticket, error) {
	if ds := s.demoData(); ds != nil {
		return ds.Tickets(), nil
	}
	var out []Ticket
	if err := s.do(ctx, http.MethodGet, "/api/tickets", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTicket opens a ticket. The server records the caller as requester
// regardless of the request body.
func (s *Session) CreateTicket(ctx context.Context, t Ticket) (*Ticket, error) {
	if ds := s.demoData(); ds != nil {
		return ds.CreateTicket(t, s.user), nil
	}
	var out Ticket
	if err := s.do(ctx, http.MethodPost, "/api/tickets", t, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTicket replaces a ticket row, moving it through the workflow.
func (s *Session) UpdateTicket(ctx context.Context, id int64, t Ticket) (*Ticket, error) {
	if ds := s.demoData(); ds != nil {
		return ds.UpdateTicket(id, t)
	}
	var out Ticket
	path := fmt.Sprintf("/api/tickets/%d", id)
	if err := s.do(ctx, http.MethodPut, path, t, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTicket removes a ticket.
func (s *Session) DeleteTicket(ctx context.Context, id int64) error {
	if ds := s.demoData(); ds != nil {
		return ds.DeleteTicket(id)
	}
	path := fmt.Sprintf("/api/tickets/%d", id)
	return s.do(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}
