package service

import (
	"context"
	"fmt"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
)

// TicketService manages service-desk tickets.
type TicketService struct {
	Store store.Store
}

// List applies role-based visibility: plain users see only their own
// requests.
func (s *TicketService) List(ctx context.Context, viewer domain.PublicUser) ([]domain.Ticket, error) {
	if viewer.Role.SeesAllAssets() {
		return s.Store.Tickets().ListTickets(ctx, 0)
	}
	return s.Store.Tickets().ListTickets(ctx, viewer.ID)
}

func (s *TicketService) Create(ctx context.Context, actor string, t domain.Ticket) (domain.Ticket, error) {
	id, err := s.Store.Tickets().CreateTicket(ctx, t)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}

	created, err := s.Store.Tickets().GetTicketByID(ctx, id)
	if err != nil {
		return domain.Ticket{}, err
	}

	logAction(ctx, s.Store, actor, domain.AuditCreate, domain.TargetTicket,
		idRef(id), fmt.Sprintf("Chamado aberto: %s", t.Title))

	return created, nil
}

func (s *TicketService) Update(ctx context.Context, actor string, t domain.Ticket) (domain.Ticket, error) {
	if err := s.Store.Tickets().UpdateTicket(ctx, t); err != nil {
		return domain.Ticket{}, err
	}

	updated, err := s.Store.Tickets().GetTicketByID(ctx, t.ID)
	if err != nil {
		return domain.Ticket{}, err
	}

	logAction(ctx, s.Store, actor, domain.AuditUpdate, domain.TargetTicket,
		idRef(t.ID), fmt.Sprintf("Chamado atualizado: %s (%s)", updated.Title, updated.Status))

	return updated, nil
}

func (s *TicketService) Delete(ctx context.Context, actor string, id int64) error {
	existing, err := s.Store.Tickets().GetTicketByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Store.Tickets().DeleteTicket(ctx, id); err != nil {
		return err
	}

	logAction(ctx, s.Store, actor, domain.AuditDelete, domain.TargetTicket,
		idRef(id), fmt.Sprintf("Chamado removido: %s", existing.Title))
	return nil
}
