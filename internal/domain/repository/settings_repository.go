package repository

import (
	"context"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
)

// SettingsRepository define el puerto de persistencia para la configuración de empresa y fiscal.
// Los Get devuelven nil, nil si aún no se ha guardado configuración.
type SettingsRepository interface {
	GetCompany(ctx context.Context) (*entity.CompanySettings, error)
	SaveCompany(ctx context.Context, s *entity.CompanySettings) error
	GetFiscal(ctx context.Context) (*entity.FiscalSettings, error)
	SaveFiscal(ctx context.Context, s *entity.FiscalSettings) error
}

// FiscalSequenceRepository reserva secuencias del rango autorizado.
type FiscalSequenceRepository interface {
	// NextSequence incrementa y devuelve la secuencia de la configuración fiscal activa.
	// Devuelve invoicing.ErrSequenceExhausted si ya se alcanzó MaxSequence.
	NextSequence(ctx context.Context) (int64, error)
}
