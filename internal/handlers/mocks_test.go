package handlers_test

import (
	"context"
	"io"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock DraftService ---
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) CreateDraft(ctx context.Context, ownerID string, voucherType domain.VoucherType) (*domain.VoucherDraft, error) {
	args := m.Called(ctx, ownerID, voucherType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherDraft), args.Error(1)
}
func (m *MockDraftService) OpenVoucher(ctx context.Context, ownerID string, voucher domain.Voucher) (*domain.VoucherDraft, error) {
	args := m.Called(ctx, ownerID, voucher)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherDraft), args.Error(1)
}
func (m *MockDraftService) GetDraft(ctx context.Context, draftID string, ownerID string) (*domain.VoucherDraft, error) {
	args := m.Called(ctx, draftID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherDraft), args.Error(1)
}
func (m *MockDraftService) ListDrafts(ctx context.Context, ownerID string, params dto.ListDraftsParams) (*dto.ListDraftsResponse, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListDraftsResponse), args.Error(1)
}
func (m *MockDraftService) UpdateHeader(ctx context.Context, draftID string, ownerID string, req dto.UpdateDraftHeaderRequest) (*domain.VoucherDraft, error) {
	args := m.Called(ctx, draftID, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherDraft), args.Error(1)
}
func (m *MockDraftService) DiscardDraft(ctx context.Context, draftID string, ownerID string) error {
	args := m.Called(ctx, draftID, ownerID)
	return args.Error(0)
}
func (m *MockDraftService) AddRow(ctx context.Context, draftID string, ownerID string) (*domain.VoucherDraft, error) {
	args := m.Called(ctx, draftID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherDraft), args.Error(1)
}
func (m *MockDraftService) RemoveRow(ctx context.Context, draftID string, ownerID string, index int) (*domain.VoucherDraft, error) {
	args := m.Called(ctx, draftID, ownerID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherDraft), args.Error(1)
}
func (m *MockDraftService) UpdateRow(ctx context.Context, draftID string, ownerID string, index int, field string, value string) (*domain.VoucherDraft, error) {
	args := m.Called(ctx, draftID, ownerID, index, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherDraft), args.Error(1)
}
func (m *MockDraftService) CommitRow(ctx context.Context, draftID string, ownerID string, index int, field string) (*domain.VoucherDraft, error) {
	args := m.Called(ctx, draftID, ownerID, index, field)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherDraft), args.Error(1)
}
func (m *MockDraftService) ValidateDraft(ctx context.Context, draftID string, ownerID string) error {
	args := m.Called(ctx, draftID, ownerID)
	return args.Error(0)
}
func (m *MockDraftService) ValidateVoucher(ctx context.Context, draft domain.VoucherDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}
func (m *MockDraftService) SubmitDraft(ctx context.Context, draftID string, ownerID string) (*dto.SubmitResult, error) {
	args := m.Called(ctx, draftID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitResult), args.Error(1)
}
func (m *MockDraftService) SubmitVoucher(ctx context.Context, ownerID string, draft domain.VoucherDraft) (*dto.SubmitResult, error) {
	args := m.Called(ctx, ownerID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.DraftSvcFacade = (*MockDraftService)(nil)

// --- Mock VoucherService ---
type MockVoucherService struct {
	mock.Mock
}

func (m *MockVoucherService) ListVouchers(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListVouchersResponse), args.Error(1)
}
func (m *MockVoucherService) ListBatches(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListVouchersResponse), args.Error(1)
}
func (m *MockVoucherService) UpdateVoucher(ctx context.Context, id string, draft domain.VoucherDraft) (*domain.Voucher, error) {
	args := m.Called(ctx, id, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) DeleteVoucher(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVoucherService) ChangeStatus(ctx context.Context, id string, req dto.ChangeStatusRequest) (*domain.Voucher, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) UpdateBatch(ctx context.Context, id string, draft domain.VoucherDraft) (*domain.Voucher, error) {
	args := m.Called(ctx, id, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}
func (m *MockVoucherService) DeleteBatch(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.VoucherSvcFacade = (*MockVoucherService)(nil)

// --- Mock ReferenceService ---
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) GetReferenceData(ctx context.Context) (*domain.ReferenceData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReferenceData), args.Error(1)
}
func (m *MockReferenceService) Refresh(ctx context.Context) (*domain.ReferenceData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReferenceData), args.Error(1)
}

var _ portssvc.ReferenceSvc = (*MockReferenceService)(nil)

// --- Mock PrintService ---
type MockPrintService struct {
	mock.Mock
}

func (m *MockPrintService) BuildPrintView(voucher domain.Voucher, ref *domain.ReferenceData) domain.PrintView {
	args := m.Called(voucher, ref)
	return args.Get(0).(domain.PrintView)
}
func (m *MockPrintService) ArchivePrintView(view domain.PrintView) {
	m.Called(view)
}
func (m *MockPrintService) GetPrintView(ctx context.Context, voucherNumber string) (*domain.PrintView, error) {
	args := m.Called(ctx, voucherNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrintView), args.Error(1)
}
func (m *MockPrintService) ExportXLSX(ctx context.Context, voucherNumber string, w io.Writer) error {
	args := m.Called(ctx, voucherNumber, w)
	if data, ok := args.Get(0).([]byte); ok {
		_, _ = w.Write(data)
	}
	return args.Error(1)
}

var _ portssvc.PrintSvc = (*MockPrintService)(nil)

// --- Mock CredentialProvider ---
type MockCredentials struct {
	mock.Mock
}

func (m *MockCredentials) GetToken() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
func (m *MockCredentials) SetToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}
func (m *MockCredentials) Clear() error {
	args := m.Called()
	return args.Error(0)
}

var _ portssvc.CredentialProvider = (*MockCredentials)(nil)
