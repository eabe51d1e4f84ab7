package services

import (
	"context"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
)

// DraftManagerSvc defines the lifecycle operations of voucher drafts
type DraftManagerSvc interface {
	// CreateDraft opens an empty draft in the initial shape of its voucher type.
	CreateDraft(ctx context.Context, ownerID string, voucherType domain.VoucherType) (*domain.VoucherDraft, error)

	// OpenVoucher copies a saved voucher into a new draft so it can be edited and resubmitted.
	OpenVoucher(ctx context.Context, ownerID string, voucher domain.Voucher) (*domain.VoucherDraft, error)

	// GetDraft returns a draft owned by ownerID.
	GetDraft(ctx context.Context, draftID string, ownerID string) (*domain.VoucherDraft, error)

	// ListDrafts pages through the drafts owned by ownerID.
	ListDrafts(ctx context.Context, ownerID string, params dto.ListDraftsParams) (*dto.ListDraftsResponse, error)

	// UpdateHeader changes header fields of a draft.
	UpdateHeader(ctx context.Context, draftID string, ownerID string, req dto.UpdateDraftHeaderRequest) (*domain.VoucherDraft, error)

	// DiscardDraft deletes a draft.
	DiscardDraft(ctx context.Context, draftID string, ownerID string) error
}

// DraftRowSvc defines entry-row operations on a stored draft
type DraftRowSvc interface {
	AddRow(ctx context.Context, draftID string, ownerID string) (*domain.VoucherDraft, error)
	RemoveRow(ctx context.Context, draftID string, ownerID string, index int) (*domain.VoucherDraft, error)
	UpdateRow(ctx context.Context, draftID string, ownerID string, index int, field string, value string) (*domain.VoucherDraft, error)
	CommitRow(ctx context.Context, draftID string, ownerID string, index int, field string) (*domain.VoucherDraft, error)
}

// DraftSubmitterSvc defines validation and submission of drafts
type DraftSubmitterSvc interface {
	// ValidateDraft validates a stored draft without submitting it.
	ValidateDraft(ctx context.Context, draftID string, ownerID string) error

	// ValidateVoucher validates a complete draft supplied by the caller.
	ValidateVoucher(ctx context.Context, draft domain.VoucherDraft) error

	// SubmitDraft validates, posts and resets a stored draft.
	SubmitDraft(ctx context.Context, draftID string, ownerID string) (*dto.SubmitResult, error)

	// SubmitVoucher validates and posts a complete draft supplied by the caller.
	SubmitVoucher(ctx context.Context, ownerID string, draft domain.VoucherDraft) (*dto.SubmitResult, error)
}

// DraftSvcFacade combines all draft-related service interfaces
type DraftSvcFacade interface {
	DraftManagerSvc
	DraftRowSvc
	DraftSubmitterSvc
}
