package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/dto"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/repository"
	"github.com/yonaiky/ResidentManagement-sub000/pkg/dgi"
)

// ResidentUseCase casos de uso para residentes (destinatarios de la factura).
type ResidentUseCase struct {
	repo repository.ResidentRepository
	log  zerolog.Logger
}

// NewResidentUseCase construye el caso de uso.
func NewResidentUseCase(repo repository.ResidentRepository, log zerolog.Logger) *ResidentUseCase {
	return &ResidentUseCase{repo: repo, log: log}
}

// Create registra un residente. La cédula debe ser válida y única.
func (uc *ResidentUseCase) Create(ctx context.Context, in dto.ResidentRequest) (*dto.ResidentResponse, error) {
	if err := validateResident(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByNationalID(ctx, in.NationalID)
	if err != nil {
		return nil, fmt.Errorf("buscar residente por cédula: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un residente con cédula %s", domain.ErrDuplicate, in.NationalID)
	}

	now := time.Now()
	r := &entity.Resident{
		ID:                 uuid.New().String(),
		FirstName:          strings.TrimSpace(in.FirstName),
		LastName:           strings.TrimSpace(in.LastName),
		NationalID:         in.NationalID,
		RegistrationNumber: in.RegistrationNumber,
		Phone:              in.Phone,
		Address:            in.Address,
		Status:             statusOrDefault(in.Status),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	uc.log.Info().Str("resident_id", r.ID).Msg("residente creado")
	return toResidentResponse(r), nil
}

// GetByID devuelve un residente o domain.ErrNotFound.
func (uc *ResidentUseCase) GetByID(ctx context.Context, id string) (*dto.ResidentResponse, error) {
	r, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResidentResponse(r), nil
}

// List lista residentes, filtrando por nombre, cédula o matrícula si page.Search no es vacío.
func (uc *ResidentUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ResidentListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, strings.TrimSpace(page.Search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ResidentListResponse{
		Items: make([]dto.ResidentResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, r := range list {
		out.Items = append(out.Items, *toResidentResponse(r))
	}
	return out, nil
}

// Update reemplaza los datos de un residente.
func (uc *ResidentUseCase) Update(ctx context.Context, id string, in dto.ResidentRequest) (*dto.ResidentResponse, error) {
	if err := validateResident(in); err != nil {
		return nil, err
	}
	r, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.NationalID != r.NationalID {
		other, err := uc.repo.GetByNationalID(ctx, in.NationalID)
		if err != nil {
			return nil, fmt.Errorf("buscar residente por cédula: %w", err)
		}
		if other != nil && other.ID != r.ID {
			return nil, fmt.Errorf("%w: ya existe un residente con cédula %s", domain.ErrDuplicate, in.NationalID)
		}
	}
	r.FirstName = strings.TrimSpace(in.FirstName)
	r.LastName = strings.TrimSpace(in.LastName)
	r.NationalID = in.NationalID
	r.RegistrationNumber = in.RegistrationNumber
	r.Phone = in.Phone
	r.Address = in.Address
	r.Status = statusOrDefault(in.Status)
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toResidentResponse(r), nil
}

func (uc *ResidentUseCase) load(ctx context.Context, id string) (*entity.Resident, error) {
	return loadResident(ctx, uc.repo, id)
}

// loadResident lo comparten los casos de uso que parten de un residente.
func loadResident(ctx context.Context, repo repository.ResidentRepository, id string) (*entity.Resident, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	r, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener residente: %w", err)
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func validateResident(in dto.ResidentRequest) error {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return fmt.Errorf("%w: nombre y apellido son obligatorios", domain.ErrInvalidInput)
	}
	if err := dgi.ValidateCedula(in.NationalID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func statusOrDefault(s string) string {
	if s == "" {
		return entity.ResidentStatusActive
	}
	return s
}

func toResidentResponse(r *entity.Resident) *dto.ResidentResponse {
	return &dto.ResidentResponse{
		ID:                 r.ID,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		FullName:           r.FullName(),
		NationalID:         r.NationalID,
		RegistrationNumber: r.RegistrationNumber,
		Phone:              r.Phone,
		Address:            r.Address,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
