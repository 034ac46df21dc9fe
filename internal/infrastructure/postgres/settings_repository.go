package postgres

import (
	"context"
	"fmt"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/repository"
)

var (
	_ repository.SettingsRepository       = (*SettingsRepo)(nil)
	_ repository.FiscalSequenceRepository = (*SettingsRepo)(nil)
)

// SettingsRepo persiste la configuración de empresa y fiscal (tablas de una sola fila, id = 1).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetCompany devuelve el perfil del emisor o nil si no existe.
func (r *SettingsRepo) GetCompany(ctx context.Context) (*entity.CompanySettings, error) {
	query := `
		SELECT name, tax_id, address, phone, email, website, updated_at
		FROM company_settings WHERE id = 1`
	var s entity.CompanySettings
	err := r.q.QueryRow(ctx, query).Scan(&s.Name, &s.TaxID, &s.Address, &s.Phone, &s.Email, &s.Website, &s.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company settings: %w", err)
	}
	return &s, nil
}

// SaveCompany inserta o reemplaza el perfil del emisor.
func (r *SettingsRepo) SaveCompany(ctx context.Context, s *entity.CompanySettings) error {
	query := `
		INSERT INTO company_settings (id, name, tax_id, address, phone, email, website, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, tax_id = EXCLUDED.tax_id, address = EXCLUDED.address,
		    phone = EXCLUDED.phone, email = EXCLUDED.email, website = EXCLUDED.website,
		    updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, s.Name, s.TaxID, s.Address, s.Phone, s.Email, s.Website, s.UpdatedAt); err != nil {
		return fmt.Errorf("save company settings: %w", err)
	}
	return nil
}

// GetFiscal devuelve la configuración fiscal o nil si no existe.
func (r *SettingsRepo) GetFiscal(ctx context.Context) (*entity.FiscalSettings, error) {
	query := `
		SELECT resolution_number, valid_until, ncf_series, current_sequence, max_sequence, is_active, updated_at
		FROM fiscal_settings WHERE id = 1`
	var s entity.FiscalSettings
	err := r.q.QueryRow(ctx, query).Scan(
		&s.ResolutionNumber, &s.ValidUntil, &s.NCFSeries, &s.CurrentSequence, &s.MaxSequence, &s.IsActive, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fiscal settings: %w", err)
	}
	return &s, nil
}

// SaveFiscal inserta o reemplaza la configuración fiscal.
func (r *SettingsRepo) SaveFiscal(ctx context.Context, s *entity.FiscalSettings) error {
	query := `
		INSERT INTO fiscal_settings (id, resolution_number, valid_until, ncf_series, current_sequence, max_sequence, is_active, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET resolution_number = EXCLUDED.resolution_number, valid_until = EXCLUDED.valid_until,
		    ncf_series = EXCLUDED.ncf_series, current_sequence = EXCLUDED.current_sequence,
		    max_sequence = EXCLUDED.max_sequence, is_active = EXCLUDED.is_active,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		s.ResolutionNumber, s.ValidUntil, s.NCFSeries, s.CurrentSequence, s.MaxSequence, s.IsActive, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save fiscal settings: %w", err)
	}
	return nil
}

// NextSequence reserva la siguiente secuencia con un UPDATE atómico: dos emisiones concurrentes
// nunca reciben el mismo número. Dentro de una tx, el rollback devuelve la secuencia.
func (r *SettingsRepo) NextSequence(ctx context.Context) (int64, error) {
	query := `
		UPDATE fiscal_settings
		SET current_sequence = current_sequence + 1, updated_at = now()
		WHERE id = 1 AND is_active AND current_sequence < max_sequence
		RETURNING current_sequence`
	var seq int64
	if err := r.q.QueryRow(ctx, query).Scan(&seq); err != nil {
		if isNoRows(err) {
			return 0, invoicing.ErrSequenceExhausted
		}
		return 0, fmt.Errorf("next fiscal sequence: %w", err)
	}
	return seq, nil
}
