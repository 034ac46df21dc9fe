package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
)

// MockResidentRepo implementa repository.ResidentRepository.
type MockResidentRepo struct {
	mock.Mock
}

func (m *MockResidentRepo) Create(ctx context.Context, r *entity.Resident) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockResidentRepo) GetByID(ctx context.Context, id string) (*entity.Resident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Resident), args.Error(1)
}

func (m *MockResidentRepo) GetByNationalID(ctx context.Context, nationalID string) (*entity.Resident, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Resident), args.Error(1)
}

func (m *MockResidentRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Resident, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Resident), args.Error(1)
}

func (m *MockResidentRepo) Update(ctx context.Context, r *entity.Resident) error {
	return m.Called(ctx, r).Error(0)
}
