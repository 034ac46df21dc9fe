package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/dto"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/repository"
	"github.com/yonaiky/ResidentManagement-sub000/pkg/dgi"
)

// SettingsUseCase administra el perfil del emisor y la configuración fiscal.
type SettingsUseCase struct {
	repo  repository.SettingsRepository
	clock invoicing.Clock
	log   zerolog.Logger
}

// NewSettingsUseCase construye el caso de uso. La zona del reloj es la de las fechas de vigencia.
func NewSettingsUseCase(repo repository.SettingsRepository, clock invoicing.Clock, log zerolog.Logger) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, clock: clock, log: log}
}

// GetCompany devuelve el perfil del emisor o domain.ErrNotFound si no se ha configurado.
func (uc *SettingsUseCase) GetCompany(ctx context.Context) (*dto.CompanySettingsResponse, error) {
	s, err := uc.repo.GetCompany(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanySettingsResponse(s), nil
}

// UpdateCompany guarda el perfil del emisor. El RNC (o cédula) debe tener dígito verificador válido.
func (uc *SettingsUseCase) UpdateCompany(ctx context.Context, in dto.CompanySettingsRequest) (*dto.CompanySettingsResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre de la empresa es obligatorio", domain.ErrInvalidInput)
	}
	if err := dgi.ValidateTaxID(in.TaxID); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	s := &entity.CompanySettings{
		Name:      strings.TrimSpace(in.Name),
		TaxID:     dgi.FormatRNC(in.TaxID),
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Website:   in.Website,
		UpdatedAt: uc.clock.Now(),
	}
	if err := uc.repo.SaveCompany(ctx, s); err != nil {
		return nil, err
	}
	uc.log.Info().Str("tax_id", s.TaxID).Msg("datos de empresa actualizados")
	return toCompanySettingsResponse(s), nil
}

// GetFiscal devuelve la configuración fiscal o domain.ErrNotFound.
func (uc *SettingsUseCase) GetFiscal(ctx context.Context) (*dto.FiscalSettingsResponse, error) {
	s, err := uc.repo.GetFiscal(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toFiscalSettingsResponse(s), nil
}

// UpdateFiscal guarda la resolución y el rango de secuencias autorizado.
// No permite retroceder la secuencia de la misma serie: se volverían a emitir NCF ya usados.
func (uc *SettingsUseCase) UpdateFiscal(ctx context.Context, in dto.FiscalSettingsRequest) (*dto.FiscalSettingsResponse, error) {
	series := strings.ToUpper(strings.TrimSpace(in.NCFSeries))
	if err := dgi.ValidateSeries(series); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	now := uc.clock.Now()
	validUntil, err := time.ParseInLocation("2006-01-02", in.ValidUntil, now.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de vigencia inválida %q", domain.ErrInvalidInput, in.ValidUntil)
	}
	if in.CurrentSequence < 0 || in.MaxSequence <= in.CurrentSequence || in.MaxSequence > dgi.MaxNCFSequence {
		return nil, fmt.Errorf("%w: rango de secuencias %d..%d", domain.ErrInvalidInput, in.CurrentSequence, in.MaxSequence)
	}

	current, err := uc.repo.GetFiscal(ctx)
	if err != nil {
		return nil, err
	}
	if current != nil && current.NCFSeries == series && in.CurrentSequence < current.CurrentSequence {
		return nil, fmt.Errorf("%w: la secuencia %s ya va por %d", domain.ErrConflict, series, current.CurrentSequence)
	}

	s := &entity.FiscalSettings{
		ResolutionNumber: strings.TrimSpace(in.ResolutionNumber),
		ValidUntil:       validUntil,
		NCFSeries:        series,
		CurrentSequence:  in.CurrentSequence,
		MaxSequence:      in.MaxSequence,
		IsActive:         in.IsActive,
		UpdatedAt:        now,
	}
	if err := uc.repo.SaveFiscal(ctx, s); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("resolution", s.ResolutionNumber).
		Str("series", s.NCFSeries).
		Int64("remaining", s.Remaining()).
		Bool("active", s.IsActive).
		Msg("configuración fiscal actualizada")
	return toFiscalSettingsResponse(s), nil
}

func toCompanySettingsResponse(s *entity.CompanySettings) *dto.CompanySettingsResponse {
	return &dto.CompanySettingsResponse{
		Name:      s.Name,
		TaxID:     s.TaxID,
		Address:   s.Address,
		Phone:     s.Phone,
		Email:     s.Email,
		Website:   s.Website,
		UpdatedAt: s.UpdatedAt,
	}
}

func toFiscalSettingsResponse(s *entity.FiscalSettings) *dto.FiscalSettingsResponse {
	return &dto.FiscalSettingsResponse{
		ResolutionNumber: s.ResolutionNumber,
		ValidUntil:       s.ValidUntil.Format("2006-01-02"),
		NCFSeries:        s.NCFSeries,
		CurrentSequence:  s.CurrentSequence,
		MaxSequence:      s.MaxSequence,
		Remaining:        s.Remaining(),
		IsActive:         s.IsActive,
		UpdatedAt:        s.UpdatedAt,
	}
}
