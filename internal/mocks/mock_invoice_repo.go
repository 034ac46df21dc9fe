package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
)

// MockInvoiceRepo implementa repository.InvoiceRepository.
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvoiceRepo) CreateLine(ctx context.Context, line *entity.InvoiceLine) error {
	return m.Called(ctx, line).Error(0)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) GetLines(ctx context.Context, invoiceID string) ([]*entity.InvoiceLine, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.InvoiceLine), args.Error(1)
}

func (m *MockInvoiceRepo) ListByResident(ctx context.Context, residentID string) ([]*entity.Invoice, error) {
	args := m.Called(ctx, residentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Invoice), args.Error(1)
}
