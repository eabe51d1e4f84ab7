package repositories

import (
	"context"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
)

// VoucherBackend is the ERP backend's voucher surface.
type VoucherBackend interface {
	AddTransactionEntry(ctx context.Context, payload dto.TransactionEntryPayload) (*domain.Voucher, error)
	UpdateTransactionEntry(ctx context.Context, id string, payload dto.TransactionEntryPayload) (*domain.Voucher, error)
	UpdateTransactionStatus(ctx context.Context, id string, status domain.VoucherStatus) (*domain.Voucher, error)
	DeleteTransactionEntry(ctx context.Context, id string) error
	ListTransactionEntries(ctx context.Context, filter domain.VoucherFilter) (*domain.VoucherPage, error)

	AddJournalVoucher(ctx context.Context, payload dto.JournalVoucherPayload) (*domain.Voucher, error)
}

// BatchBackend is the ERP backend's batch entry surface.
type BatchBackend interface {
	AddBatchEntry(ctx context.Context, payload dto.BatchEntryPayload) (*domain.Voucher, error)
	UpdateBatchEntry(ctx context.Context, id string, payload dto.BatchEntryPayload) (*domain.Voucher, error)
	DeleteBatchEntry(ctx context.Context, id string) error
	ListBatchEntries(ctx context.Context, filter domain.VoucherFilter) (*domain.VoucherPage, error)
}

// ReferenceBackend serves the lists behind account and party selectors.
type ReferenceBackend interface {
	ListChartAccounts(ctx context.Context) ([]domain.ChartAccount, error)
	ListCashAccounts(ctx context.Context) ([]domain.CashAccount, error)
	ListBanks(ctx context.Context) ([]domain.BankAccount, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// ERPBackendFacade combines every backend surface the service uses.
type ERPBackendFacade interface {
	VoucherBackend
	BatchBackend
	ReferenceBackend
}
