package services_test

import (
	"context"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portsrepo "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/repositories"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/stretchr/testify/mock"
)

// MockERPBackend is a mock type for the ERPBackendFacade interface
type MockERPBackend struct {
	mock.Mock
}

func (m *MockERPBackend) voucher(args mock.Arguments) (*domain.Voucher, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockERPBackend) page(args mock.Arguments) (*domain.VoucherPage, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherPage), args.Error(1)
}

func (m *MockERPBackend) AddTransactionEntry(ctx context.Context, payload dto.TransactionEntryPayload) (*domain.Voucher, error) {
	return m.voucher(m.Called(ctx, payload))
}
func (m *MockERPBackend) UpdateTransactionEntry(ctx context.Context, id string, payload dto.TransactionEntryPayload) (*domain.Voucher, error) {
	return m.voucher(m.Called(ctx, id, payload))
}
func (m *MockERPBackend) UpdateTransactionStatus(ctx context.Context, id string, status domain.VoucherStatus) (*domain.Voucher, error) {
	return m.voucher(m.Called(ctx, id, status))
}
func (m *MockERPBackend) DeleteTransactionEntry(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockERPBackend) ListTransactionEntries(ctx context.Context, filter domain.VoucherFilter) (*domain.VoucherPage, error) {
	return m.page(m.Called(ctx, filter))
}
func (m *MockERPBackend) AddJournalVoucher(ctx context.Context, payload dto.JournalVoucherPayload) (*domain.Voucher, error) {
	return m.voucher(m.Called(ctx, payload))
}
func (m *MockERPBackend) AddBatchEntry(ctx context.Context, payload dto.BatchEntryPayload) (*domain.Voucher, error) {
	return m.voucher(m.Called(ctx, payload))
}
func (m *MockERPBackend) UpdateBatchEntry(ctx context.Context, id string, payload dto.BatchEntryPayload) (*domain.Voucher, error) {
	return m.voucher(m.Called(ctx, id, payload))
}
func (m *MockERPBackend) DeleteBatchEntry(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockERPBackend) ListBatchEntries(ctx context.Context, filter domain.VoucherFilter) (*domain.VoucherPage, error) {
	return m.page(m.Called(ctx, filter))
}
func (m *MockERPBackend) ListChartAccounts(ctx context.Context) ([]domain.ChartAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartAccount), args.Error(1)
}
func (m *MockERPBackend) ListCashAccounts(ctx context.Context) ([]domain.CashAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashAccount), args.Error(1)
}
func (m *MockERPBackend) ListBanks(ctx context.Context) ([]domain.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}
func (m *MockERPBackend) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockERPBackend) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

// Ensure mock implements the interface
var _ portsrepo.ERPBackendFacade = (*MockERPBackend)(nil)

// expectReferenceLists stubs every reference list with a small fixed set.
func (m *MockERPBackend) expectReferenceLists() {
	m.On("ListChartAccounts", mock.Anything).Return([]domain.ChartAccount{
		{ID: "acc-rent", Code: "5100", Name: "Rent Expense"},
		{ID: "acc-feed", Code: "5200", Name: "Feed Expense"},
	}, nil)
	m.On("ListCashAccounts", mock.Anything).Return([]domain.CashAccount{{ID: "cash-1", Name: "Cash in Hand"}}, nil)
	m.On("ListBanks", mock.Anything).Return([]domain.BankAccount{{ID: "bank-1", Name: "Farm Bank", AccountNumber: "0042"}}, nil)
	m.On("ListCustomers", mock.Anything).Return([]domain.Customer{{ID: "cus-1", Name: "Green Grocers"}}, nil)
	m.On("ListSuppliers", mock.Anything).Return([]domain.Supplier{{ID: "sup-1", Name: "Seed Co"}}, nil)
}
