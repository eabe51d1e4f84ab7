package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portsrepo "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/repositories"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/mapping"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/numfmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultDraftPageSize = 20

// SubmissionObserver is told about every voucher the backend accepted.
type SubmissionObserver interface {
	TrackVoucherSubmitted(ownerID string, voucher domain.Voucher)
}

// draftService owns voucher form state and wires rows, validation and submission together.
type draftService struct {
	BaseService
	drafts    portsrepo.DraftRepositoryFacade
	backend   portsrepo.ERPBackendFacade
	reference portssvc.ReferenceSvc
	print     portssvc.PrintSvc
	guard     portssvc.SubmissionGuard
	validator *Validator
	formatter *numfmt.Formatter
	observer  SubmissionObserver
	now       func() time.Time
}

// DraftServiceOption is a functional option for configuring the draft service
type DraftServiceOption func(*draftService)

// WithSubmissionGuard replaces the in-process submission guard.
func WithSubmissionGuard(guard portssvc.SubmissionGuard) DraftServiceOption {
	return func(s *draftService) {
		if guard != nil {
			s.guard = guard
		}
	}
}

// WithDraftValidator replaces the default validator.
func WithDraftValidator(v *Validator) DraftServiceOption {
	return func(s *draftService) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithNumberFormatter sets the formatter used to parse committed amounts.
func WithNumberFormatter(f *numfmt.Formatter) DraftServiceOption {
	return func(s *draftService) {
		if f != nil {
			s.formatter = f
		}
	}
}

// WithSubmissionObserver registers an observer for accepted vouchers.
func WithSubmissionObserver(o SubmissionObserver) DraftServiceOption {
	return func(s *draftService) {
		s.observer = o
	}
}

// WithDraftClock overrides the clock used for audit timestamps.
func WithDraftClock(now func() time.Time) DraftServiceOption {
	return func(s *draftService) {
		s.now = now
	}
}

// NewDraftService creates the draft service with the provided options
func NewDraftService(
	drafts portsrepo.DraftRepositoryFacade,
	backend portsrepo.ERPBackendFacade,
	reference portssvc.ReferenceSvc,
	print portssvc.PrintSvc,
	options ...DraftServiceOption,
) portssvc.DraftSvcFacade {
	svc := &draftService{
		drafts:    drafts,
		backend:   backend,
		reference: reference,
		print:     print,
		guard:     NewLocalSubmissionGuard(),
		validator: NewValidator(),
		formatter: numfmt.Default(),
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure draftService implements the DraftSvcFacade interface
var _ portssvc.DraftSvcFacade = (*draftService)(nil)

func (s *draftService) CreateDraft(ctx context.Context, ownerID string, voucherType domain.VoucherType) (*domain.VoucherDraft, error) {
	if !voucherType.IsValid() {
		return nil, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, voucherType)
	}
	draft := domain.NewVoucherDraft(voucherType)
	if err := s.store(ctx, ownerID, &draft); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Draft created", slog.String("draft_id", draft.DraftID), slog.String("voucher_type", string(voucherType)))
	return &draft, nil
}

func (s *draftService) OpenVoucher(ctx context.Context, ownerID string, voucher domain.Voucher) (*domain.VoucherDraft, error) {
	switch {
	case voucher.ID == "":
		return nil, fmt.Errorf("%w: voucher id is required", apperrors.ErrValidation)
	case !voucher.VoucherType.IsValid():
		return nil, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, voucher.VoucherType)
	case voucher.VoucherType == domain.JournalVoucher:
		return nil, fmt.Errorf("%w: saved journal vouchers cannot be edited", apperrors.ErrValidation)
	case voucher.Status == domain.StatusVoid:
		return nil, fmt.Errorf("%w: void vouchers cannot be edited", apperrors.ErrValidation)
	}

	draft := mapping.VoucherToDraft(voucher)
	if !amountsInRange(draft) {
		return nil, fmt.Errorf("%w: voucher amounts are out of range", apperrors.ErrValidation)
	}
	if err := s.store(ctx, ownerID, &draft); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Saved voucher opened for editing",
		slog.String("draft_id", draft.DraftID),
		slog.String("voucher_id", voucher.ID))
	return &draft, nil
}

// store assigns identity and audit fields to a new draft and saves it.
func (s *draftService) store(ctx context.Context, ownerID string, draft *domain.VoucherDraft) error {
	now := s.now()
	draft.DraftID = uuid.NewString()
	draft.OwnerID = ownerID
	draft.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     ownerID,
		LastUpdatedAt: now,
		LastUpdatedBy: ownerID,
		Version:       1,
	}
	if err := s.drafts.SaveDraft(ctx, *draft); err != nil {
		s.LogError(ctx, err, "Failed to save new draft", slog.String("voucher_type", string(draft.VoucherType)))
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *draftService) GetDraft(ctx context.Context, draftID string, ownerID string) (*domain.VoucherDraft, error) {
	draft, err := s.drafts.FindDraftByID(ctx, draftID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load draft", slog.String("draft_id", draftID))
		}
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, draft, ownerID); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *draftService) ListDrafts(ctx context.Context, ownerID string, params dto.ListDraftsParams) (*dto.ListDraftsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultDraftPageSize
	}
	drafts, next, err := s.drafts.ListDraftsByOwner(ctx, ownerID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list drafts", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	if drafts == nil {
		drafts = []domain.VoucherDraft{}
	}
	return &dto.ListDraftsResponse{Drafts: drafts, NextToken: next}, nil
}

func (s *draftService) UpdateHeader(ctx context.Context, draftID string, ownerID string, req dto.UpdateDraftHeaderRequest) (*domain.VoucherDraft, error) {
	return s.mutate(ctx, draftID, ownerID, func(d *domain.VoucherDraft) error {
		return applyHeader(d, req, s.formatter)
	})
}

func (s *draftService) DiscardDraft(ctx context.Context, draftID string, ownerID string) error {
	if _, err := s.GetDraft(ctx, draftID, ownerID); err != nil {
		return err
	}
	if err := s.drafts.DeleteDraft(ctx, draftID); err != nil {
		s.LogError(ctx, err, "Failed to delete draft", slog.String("draft_id", draftID))
		return err
	}
	s.LogInfo(ctx, "Draft discarded", slog.String("draft_id", draftID))
	return nil
}

func (s *draftService) AddRow(ctx context.Context, draftID string, ownerID string) (*domain.VoucherDraft, error) {
	return s.mutate(ctx, draftID, ownerID, func(d *domain.VoucherDraft) error {
		AddRow(d)
		return nil
	})
}

func (s *draftService) RemoveRow(ctx context.Context, draftID string, ownerID string, index int) (*domain.VoucherDraft, error) {
	return s.mutate(ctx, draftID, ownerID, func(d *domain.VoucherDraft) error {
		return RemoveRow(d, index)
	})
}

func (s *draftService) UpdateRow(ctx context.Context, draftID string, ownerID string, index int, field string, value string) (*domain.VoucherDraft, error) {
	return s.mutate(ctx, draftID, ownerID, func(d *domain.VoucherDraft) error {
		return UpdateRow(d, index, field, value)
	})
}

func (s *draftService) CommitRow(ctx context.Context, draftID string, ownerID string, index int, field string) (*domain.VoucherDraft, error) {
	return s.mutate(ctx, draftID, ownerID, func(d *domain.VoucherDraft) error {
		return CommitRow(d, index, field, s.formatter)
	})
}

func (s *draftService) ValidateDraft(ctx context.Context, draftID string, ownerID string) error {
	draft, err := s.GetDraft(ctx, draftID, ownerID)
	if err != nil {
		return err
	}
	return s.ValidateVoucher(ctx, *draft)
}

func (s *draftService) ValidateVoucher(ctx context.Context, draft domain.VoucherDraft) error {
	err := s.validator.Validate(draft)
	if err != nil {
		s.recordValidationFailure(ctx, draft, err)
	}
	return err
}

func (s *draftService) SubmitDraft(ctx context.Context, draftID string, ownerID string) (*dto.SubmitResult, error) {
	draft, err := s.GetDraft(ctx, draftID, ownerID)
	if err != nil {
		return nil, err
	}

	// The stored draft is kept as is when submission fails.
	return s.submit(ctx, ownerID, *draft, func(reset domain.VoucherDraft) domain.VoucherDraft {
		reset.LastUpdatedAt = s.now()
		reset.LastUpdatedBy = ownerID
		reset.Version = draft.Version + 1
		if err := s.drafts.SaveDraft(ctx, reset); err != nil {
			// The voucher is posted at this point; only form state is stale.
			s.LogError(ctx, err, "Failed to reset draft after submission", slog.String("draft_id", draftID))
		}
		return reset
	})
}

func (s *draftService) SubmitVoucher(ctx context.Context, ownerID string, draft domain.VoucherDraft) (*dto.SubmitResult, error) {
	if draft.InputValues == nil {
		draft.InputValues = map[string]string{}
	}
	return s.submit(ctx, ownerID, draft, nil)
}

// finishSubmission builds and archives the print view of an accepted voucher.
func (s *draftService) finishSubmission(ctx context.Context, ownerID string, voucher domain.Voucher, reset domain.VoucherDraft) *dto.SubmitResult {
	ref, err := s.reference.GetReferenceData(ctx)
	if err != nil {
		s.LogWarn(ctx, "Reference data unavailable, print view shows raw ids", slog.String("error", err.Error()))
		ref = nil
	}
	view := s.print.BuildPrintView(voucher, ref)
	s.print.ArchivePrintView(view)

	if s.observer != nil {
		s.observer.TrackVoucherSubmitted(ownerID, voucher)
	}
	s.LogInfo(ctx, "Voucher submitted",
		slog.String("voucher_number", voucher.VoucherNumber),
		slog.String("voucher_type", string(voucher.VoucherType)))

	return &dto.SubmitResult{
		VoucherNumber: voucher.VoucherNumber,
		Voucher:       voucher,
		Print:         view,
		Draft:         reset,
	}
}

// mutate loads a draft, applies fn and saves it when fn succeeds. A failed fn leaves the
// stored draft unchanged.
func (s *draftService) mutate(ctx context.Context, draftID, ownerID string, fn func(*domain.VoucherDraft) error) (*domain.VoucherDraft, error) {
	draft, err := s.GetDraft(ctx, draftID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		s.LogDebug(ctx, "Draft change rejected", slog.String("draft_id", draftID), slog.String("error", err.Error()))
		return nil, err
	}
	draft.LastUpdatedAt = s.now()
	draft.LastUpdatedBy = ownerID
	draft.Version++
	if err := s.drafts.SaveDraft(ctx, *draft); err != nil {
		s.LogError(ctx, err, "Failed to save draft", slog.String("draft_id", draftID))
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return draft, nil
}

// applyHeader copies the non-nil header fields of req onto d.
func applyHeader(d *domain.VoucherDraft, req dto.UpdateDraftHeaderRequest, f *numfmt.Formatter) error {
	if req.Date != nil {
		date, err := domain.ParseDate(*req.Date)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		d.Date = date
	}
	if req.ClearanceDate != nil {
		date, err := domain.ParseDate(*req.ClearanceDate)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		d.ClearanceDate = date
	}
	if req.PaymentMethod != nil {
		d.PaymentMethod = domain.PaymentMethod(*req.PaymentMethod)
	}
	if req.Party != nil {
		d.Party = domain.PartyType(*req.Party)
	}
	if req.TotalAmount != nil {
		total, ok := f.Parse(*req.TotalAmount)
		if !ok || total.IsNegative() {
			total = decimal.Zero
		}
		d.TotalAmount = total
	}
	setString(&d.Reference, req.Reference)
	setString(&d.Description, req.Description)
	setString(&d.CashAccount, req.CashAccount)
	setString(&d.BankAccount, req.BankAccount)
	setString(&d.TransactionNumber, req.TransactionNumber)
	setString(&d.Customer, req.Customer)
	setString(&d.Supplier, req.Supplier)
	setString(&d.VoucherID, req.VoucherID)
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
