package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
)

// MockPaymentRepo implementa repository.PaymentRepository.
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepo) Settle(ctx context.Context, p *entity.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepo) ListByResident(ctx context.Context, residentID string) ([]*entity.Payment, error) {
	args := m.Called(ctx, residentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Payment), args.Error(1)
}
