// Package memory holds the draft store used when no database is configured.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portsrepo "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/repositories"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/models"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/mapping"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/pagination"
)

// DraftRepository keeps drafts as encoded rows, so callers never share state with the store.
type DraftRepository struct {
	mu   sync.RWMutex
	rows map[string]models.Draft
}

var _ portsrepo.DraftRepositoryFacade = (*DraftRepository)(nil)

// NewDraftRepository creates an empty store.
func NewDraftRepository() *DraftRepository {
	return &DraftRepository{rows: map[string]models.Draft{}}
}

// NewRepositoryProvider wires the in-memory draft store with the given ERP backend.
func NewRepositoryProvider(backend portsrepo.ERPBackendFacade) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DraftRepo: NewDraftRepository(),
		Backend:   backend,
	}
}

func (r *DraftRepository) SaveDraft(_ context.Context, draft domain.VoucherDraft) error {
	m, err := mapping.ToModelDraft(draft)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.rows[m.DraftID]; ok {
		if stored.Version >= m.Version || stored.OwnerID != m.OwnerID {
			return fmt.Errorf("%w: draft %s was changed concurrently", apperrors.ErrConflict, m.DraftID)
		}
		m.CreatedAt = stored.CreatedAt
		m.CreatedBy = stored.CreatedBy
	}
	r.rows[m.DraftID] = m
	return nil
}

func (r *DraftRepository) FindDraftByID(_ context.Context, draftID string) (*domain.VoucherDraft, error) {
	r.mu.RLock()
	m, ok := r.rows[draftID]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
	}
	d, err := mapping.ToDomainDraft(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DraftRepository) ListDraftsByOwner(_ context.Context, ownerID string, limit int, nextToken *string) ([]domain.VoucherDraft, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	owned := make([]models.Draft, 0)
	for _, m := range r.rows {
		if m.OwnerID == ownerID {
			owned = append(owned, m)
		}
	}
	r.mu.RUnlock()

	// Same order as the SQL store: last update descending, id descending.
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].LastUpdatedAt.Equal(owned[j].LastUpdatedAt) {
			return owned[i].LastUpdatedAt.After(owned[j].LastUpdatedAt)
		}
		return owned[i].DraftID > owned[j].DraftID
	})

	start := 0
	if nextToken != nil && *nextToken != "" {
		lastUpdatedAt, lastID, err := pagination.DecodeKeysetToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		start = len(owned)
		for i, m := range owned {
			if m.LastUpdatedAt.Before(lastUpdatedAt) || (m.LastUpdatedAt.Equal(lastUpdatedAt) && m.DraftID < lastID) {
				start = i
				break
			}
		}
	}

	end := min(start+limit, len(owned))
	drafts := make([]domain.VoucherDraft, 0, end-start)
	for _, m := range owned[start:end] {
		d, err := mapping.ToDomainDraft(m)
		if err != nil {
			return nil, nil, err
		}
		drafts = append(drafts, d)
	}

	var next *string
	if end < len(owned) {
		last := owned[end-1]
		token := pagination.EncodeKeysetToken(last.LastUpdatedAt, last.DraftID)
		next = &token
	}
	return drafts, next, nil
}

func (r *DraftRepository) DeleteDraft(_ context.Context, draftID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[draftID]; !ok {
		return fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
	}
	delete(r.rows, draftID)
	return nil
}
