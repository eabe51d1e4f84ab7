package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portsrepo "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/repositories"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/mapping"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/pagination"
)

const defaultVoucherPageSize = 10

type voucherService struct {
	BaseService
	backend   portsrepo.ERPBackendFacade
	validator *Validator
}

// VoucherServiceOption is a functional option for configuring the voucher service
type VoucherServiceOption func(*voucherService)

// WithVoucherValidator replaces the validator run before updates.
func WithVoucherValidator(v *Validator) VoucherServiceOption {
	return func(s *voucherService) {
		if v != nil {
			s.validator = v
		}
	}
}

// NewVoucherService creates the service that lists and maintains saved vouchers.
func NewVoucherService(backend portsrepo.ERPBackendFacade, options ...VoucherServiceOption) portssvc.VoucherSvcFacade {
	svc := &voucherService{
		backend:   backend,
		validator: NewValidator(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

func (s *voucherService) ListVouchers(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	return s.list(ctx, params, s.backend.ListTransactionEntries)
}

func (s *voucherService) ListBatches(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	batches := true
	params.IsBatch = &batches
	return s.list(ctx, params, s.backend.ListBatchEntries)
}

type listFunc func(ctx context.Context, filter domain.VoucherFilter) (*domain.VoucherPage, error)

func (s *voucherService) list(ctx context.Context, params dto.ListVouchersParams, fetch listFunc) (*dto.ListVouchersResponse, error) {
	filter := domain.VoucherFilter{
		Page:        params.Page,
		Limit:       params.Limit,
		Search:      strings.TrimSpace(params.Search),
		VoucherType: domain.VoucherType(params.VoucherType),
		Status:      domain.VoucherStatus(params.Status),
		IsBatch:     params.IsBatch,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultVoucherPageSize
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	fingerprint := filterFingerprint(filter)
	if params.NextToken != nil && *params.NextToken != "" {
		page, err := pagination.DecodePageToken(*params.NextToken, fingerprint)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filter.Page = page
	}

	result, err := fetch(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers", slog.Int("page", filter.Page))
		return nil, translateBackendError(err)
	}

	resp := &dto.ListVouchersResponse{
		Vouchers:   result.Vouchers,
		Page:       result.Page,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}
	if resp.Vouchers == nil {
		resp.Vouchers = []domain.Voucher{}
	}
	if result.HasMore() {
		next := pagination.EncodePageToken(result.Page+1, fingerprint)
		resp.NextToken = &next
	}
	return resp, nil
}

// filterFingerprint identifies a listing query independent of its page.
func filterFingerprint(f domain.VoucherFilter) string {
	batch := ""
	if f.IsBatch != nil {
		batch = strconv.FormatBool(*f.IsBatch)
	}
	raw := strings.Join([]string{strconv.Itoa(f.Limit), f.Search, string(f.VoucherType), string(f.Status), batch}, "\x00")
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func (s *voucherService) UpdateVoucher(ctx context.Context, id string, draft domain.VoucherDraft) (*domain.Voucher, error) {
	if draft.VoucherType == domain.JournalVoucher {
		return nil, fmt.Errorf("%w: saved journal vouchers cannot be edited", apperrors.ErrValidation)
	}
	if draft.VoucherType == domain.BatchVoucher {
		return s.UpdateBatch(ctx, id, draft)
	}
	draft.VoucherID = id
	if err := s.validator.Validate(draft); err != nil {
		return nil, err
	}

	voucher, err := s.backend.UpdateTransactionEntry(ctx, id, mapping.ToTransactionEntryPayload(draft))
	if err != nil {
		s.LogError(ctx, err, "Failed to update voucher", slog.String("voucher_id", id))
		return nil, translateBackendError(err)
	}
	completeFromDraft(voucher, draft)
	s.LogInfo(ctx, "Voucher updated", slog.String("voucher_id", id))
	return voucher, nil
}

func (s *voucherService) DeleteVoucher(ctx context.Context, id string) error {
	if err := s.backend.DeleteTransactionEntry(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete voucher", slog.String("voucher_id", id))
		return translateBackendError(err)
	}
	s.LogInfo(ctx, "Voucher deleted", slog.String("voucher_id", id))
	return nil
}

func (s *voucherService) ChangeStatus(ctx context.Context, id string, req dto.ChangeStatusRequest) (*domain.Voucher, error) {
	if !req.CurrentStatus.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrStatusTransition, req.CurrentStatus, req.Status)
	}
	voucher, err := s.backend.UpdateTransactionStatus(ctx, id, req.Status)
	if err != nil {
		s.LogError(ctx, err, "Failed to change voucher status", slog.String("voucher_id", id))
		return nil, translateBackendError(err)
	}
	if voucher.Status == "" {
		voucher.Status = req.Status
	}
	s.LogInfo(ctx, "Voucher status changed",
		slog.String("voucher_id", id),
		slog.String("status", string(req.Status)))
	return voucher, nil
}

func (s *voucherService) UpdateBatch(ctx context.Context, id string, draft domain.VoucherDraft) (*domain.Voucher, error) {
	if draft.VoucherType != domain.BatchVoucher {
		return nil, fmt.Errorf("%w: voucher type %q is not a batch", apperrors.ErrValidation, draft.VoucherType)
	}
	draft.VoucherID = id
	if err := s.validator.Validate(draft); err != nil {
		return nil, err
	}

	voucher, err := s.backend.UpdateBatchEntry(ctx, id, mapping.ToBatchEntryPayload(draft))
	if err != nil {
		s.LogError(ctx, err, "Failed to update batch", slog.String("batch_id", id))
		return nil, translateBackendError(err)
	}
	completeFromDraft(voucher, draft)
	s.LogInfo(ctx, "Batch updated", slog.String("batch_id", id))
	return voucher, nil
}

func (s *voucherService) DeleteBatch(ctx context.Context, id string) error {
	if err := s.backend.DeleteBatchEntry(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete batch", slog.String("batch_id", id))
		return translateBackendError(err)
	}
	s.LogInfo(ctx, "Batch deleted", slog.String("batch_id", id))
	return nil
}
