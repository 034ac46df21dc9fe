package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
)

// MockSettingsRepo implementa repository.SettingsRepository.
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) GetCompany(ctx context.Context) (*entity.CompanySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CompanySettings), args.Error(1)
}

func (m *MockSettingsRepo) SaveCompany(ctx context.Context, s *entity.CompanySettings) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSettingsRepo) GetFiscal(ctx context.Context) (*entity.FiscalSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FiscalSettings), args.Error(1)
}

func (m *MockSettingsRepo) SaveFiscal(ctx context.Context, s *entity.FiscalSettings) error {
	return m.Called(ctx, s).Error(0)
}

// MockSequenceRepo implementa repository.FiscalSequenceRepository.
type MockSequenceRepo struct {
	mock.Mock
}

func (m *MockSequenceRepo) NextSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
