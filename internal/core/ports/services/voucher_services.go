package services

import (
	"context"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
)

// VoucherReaderSvc defines read operations on saved vouchers
type VoucherReaderSvc interface {
	ListVouchers(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)
	ListBatches(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)
}

// VoucherWriterSvc defines maintenance operations on saved vouchers
type VoucherWriterSvc interface {
	// UpdateVoucher validates the edited draft and replaces the saved voucher.
	UpdateVoucher(ctx context.Context, id string, draft domain.VoucherDraft) (*domain.Voucher, error)
	DeleteVoucher(ctx context.Context, id string) error

	// ChangeStatus applies a status transition. Only Draft to Posted is accepted.
	ChangeStatus(ctx context.Context, id string, req dto.ChangeStatusRequest) (*domain.Voucher, error)

	UpdateBatch(ctx context.Context, id string, draft domain.VoucherDraft) (*domain.Voucher, error)
	DeleteBatch(ctx context.Context, id string) error
}

// VoucherSvcFacade combines voucher read and write operations
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
}
