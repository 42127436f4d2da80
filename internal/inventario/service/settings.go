package service

import (
	"context"
	"fmt"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
)

// SettingsService manages the singleton application settings.
type SettingsService struct {
	Store store.Store
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.Store.Settings().Get(ctx)
}

func (s *SettingsService) Save(ctx context.Context, actor string, settings domain.Settings) error {
	if err := s.Store.Settings().Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logAction(ctx, s.Store, actor, domain.AuditSettingsUpdate, domain.TargetSettings,
		nil, "Configurações atualizadas")
	return nil
}
