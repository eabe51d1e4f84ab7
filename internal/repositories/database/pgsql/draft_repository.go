package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portsrepo "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/repositories"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/models"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/mapping"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const draftColumns = `draft_id, owner_id, voucher_type, voucher_id, state,
	created_at, created_by, last_updated_at, last_updated_by, version`

// PgxDraftRepository stores voucher drafts in PostgreSQL.
type PgxDraftRepository struct {
	BaseRepository
}

func newPgxDraftRepository(pool *pgxpool.Pool) *PgxDraftRepository {
	return &PgxDraftRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DraftRepositoryFacade = (*PgxDraftRepository)(nil)

// SaveDraft inserts a draft or replaces the stored one. A stored row whose version is not
// older than the incoming one is left alone and reported as a conflict.
func (r *PgxDraftRepository) SaveDraft(ctx context.Context, draft domain.VoucherDraft) error {
	m, err := mapping.ToModelDraft(draft)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to encode draft", err)
	}

	return r.inTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO voucher_drafts (` + draftColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (draft_id) DO UPDATE SET
				voucher_type = EXCLUDED.voucher_type,
				voucher_id = EXCLUDED.voucher_id,
				state = EXCLUDED.state,
				last_updated_at = EXCLUDED.last_updated_at,
				last_updated_by = EXCLUDED.last_updated_by,
				version = EXCLUDED.version
			WHERE voucher_drafts.version < EXCLUDED.version
				AND voucher_drafts.owner_id = EXCLUDED.owner_id;
		`
		tag, err := tx.Exec(ctx, query,
			m.DraftID, m.OwnerID, m.VoucherType, m.VoucherID, m.State,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to save draft "+m.DraftID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: draft %s was changed concurrently", apperrors.ErrConflict, m.DraftID)
		}
		return nil
	})
}

// FindDraftByID retrieves a draft by its id.
func (r *PgxDraftRepository) FindDraftByID(ctx context.Context, draftID string) (*domain.VoucherDraft, error) {
	query := `SELECT ` + draftColumns + ` FROM voucher_drafts WHERE draft_id = $1;`
	m, err := scanDraft(r.Pool.QueryRow(ctx, query, draftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find draft "+draftID, err)
	}
	d, err := mapping.ToDomainDraft(m)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode draft "+draftID, err)
	}
	return &d, nil
}

// ListDraftsByOwner pages through a user's drafts, most recently updated first.
func (r *PgxDraftRepository) ListDraftsByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.VoucherDraft, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	args := []any{ownerID}
	query := `SELECT ` + draftColumns + ` FROM voucher_drafts WHERE owner_id = $1`
	if nextToken != nil && *nextToken != "" {
		lastUpdatedAt, lastID, err := pagination.DecodeKeysetToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		query += ` AND (last_updated_at, draft_id) < ($2, $3)`
		args = append(args, lastUpdatedAt, lastID)
	}
	query += fmt.Sprintf(` ORDER BY last_updated_at DESC, draft_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query drafts for owner "+ownerID, err)
	}
	defer rows.Close()

	drafts := make([]domain.VoucherDraft, 0, fetchLimit)
	for rows.Next() {
		m, err := scanDraft(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan draft row", err)
		}
		d, err := mapping.ToDomainDraft(m)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode draft "+m.DraftID, err)
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating draft rows", err)
	}

	var next *string
	if len(drafts) > limit {
		last := drafts[limit-1]
		token := pagination.EncodeKeysetToken(last.LastUpdatedAt, last.DraftID)
		next = &token
		drafts = drafts[:limit]
	}
	return drafts, next, nil
}

// DeleteDraft removes a draft.
func (r *PgxDraftRepository) DeleteDraft(ctx context.Context, draftID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM voucher_drafts WHERE draft_id = $1;`, draftID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete draft "+draftID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
	}
	return nil
}

func scanDraft(row pgx.Row) (models.Draft, error) {
	var m models.Draft
	err := row.Scan(
		&m.DraftID,
		&m.OwnerID,
		&m.VoucherType,
		&m.VoucherID,
		&m.State,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}
