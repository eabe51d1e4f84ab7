package repositories

import (
	"context"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
)

// DraftReader defines read operations for voucher drafts
type DraftReader interface {
	// FindDraftByID returns apperrors.ErrNotFound when no draft has the id.
	FindDraftByID(ctx context.Context, draftID string) (*domain.VoucherDraft, error)

	// ListDraftsByOwner pages through a user's drafts, most recently updated first.
	ListDraftsByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.VoucherDraft, *string, error)
}

// DraftWriter defines write operations for voucher drafts
type DraftWriter interface {
	// SaveDraft inserts or replaces a draft.
	SaveDraft(ctx context.Context, draft domain.VoucherDraft) error

	// DeleteDraft returns apperrors.ErrNotFound when no draft has the id.
	DeleteDraft(ctx context.Context, draftID string) error
}

// DraftRepositoryFacade combines draft read and write operations
type DraftRepositoryFacade interface {
	DraftReader
	DraftWriter
}
