package services

import (
	"context"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
)

// ReferenceSvc serves cached reference lists.
type ReferenceSvc interface {
	// GetReferenceData returns cached lists, loading them on a miss.
	GetReferenceData(ctx context.Context) (*domain.ReferenceData, error)

	// Refresh drops the cache and reloads.
	Refresh(ctx context.Context) (*domain.ReferenceData, error)
}
