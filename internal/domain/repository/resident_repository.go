package repository

import (
	"context"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
)

// ResidentRepository define el puerto de persistencia para Resident.
// GetByID y GetByNationalID devuelven nil, nil si no existe.
type ResidentRepository interface {
	Create(ctx context.Context, resident *entity.Resident) error
	GetByID(ctx context.Context, id string) (*entity.Resident, error)
	GetByNationalID(ctx context.Context, nationalID string) (*entity.Resident, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Resident, error)
	Update(ctx context.Context, resident *entity.Resident) error
}
