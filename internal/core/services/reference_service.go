package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portsrepo "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/repositories"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/platform/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	referenceCacheKey        = "reference"
	defaultReferenceCacheTTL = 5 * time.Minute
)

type referenceService struct {
	BaseService
	backend portsrepo.ReferenceBackend
	cache   *expirable.LRU[string, *domain.ReferenceData]
	group   singleflight.Group
}

// NewReferenceService creates a cached reader of the account, bank and party lists.
// A ttl of zero uses the default.
func NewReferenceService(backend portsrepo.ReferenceBackend, ttl time.Duration) portssvc.ReferenceSvc {
	if ttl <= 0 {
		ttl = defaultReferenceCacheTTL
	}
	return &referenceService{
		backend: backend,
		cache:   expirable.NewLRU[string, *domain.ReferenceData](1, nil, ttl),
	}
}

var _ portssvc.ReferenceSvc = (*referenceService)(nil)

func (s *referenceService) GetReferenceData(ctx context.Context) (*domain.ReferenceData, error) {
	if ref, ok := s.cache.Get(referenceCacheKey); ok {
		metrics.ReferenceCache.WithLabelValues("hit").Inc()
		return ref, nil
	}
	metrics.ReferenceCache.WithLabelValues("miss").Inc()
	return s.load(ctx)
}

func (s *referenceService) Refresh(ctx context.Context) (*domain.ReferenceData, error) {
	s.cache.Remove(referenceCacheKey)
	return s.load(ctx)
}

// load fetches every list concurrently. Concurrent callers share one load.
func (s *referenceService) load(ctx context.Context) (*domain.ReferenceData, error) {
	v, err, _ := s.group.Do(referenceCacheKey, func() (any, error) {
		ref := &domain.ReferenceData{}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			accounts, err := s.backend.ListChartAccounts(gctx)
			ref.ChartAccounts = accounts
			return wrapReferenceErr("chart accounts", err)
		})
		g.Go(func() error {
			accounts, err := s.backend.ListCashAccounts(gctx)
			ref.CashAccounts = accounts
			return wrapReferenceErr("cash accounts", err)
		})
		g.Go(func() error {
			banks, err := s.backend.ListBanks(gctx)
			ref.Banks = banks
			return wrapReferenceErr("banks", err)
		})
		g.Go(func() error {
			customers, err := s.backend.ListCustomers(gctx)
			ref.Customers = customers
			return wrapReferenceErr("customers", err)
		})
		g.Go(func() error {
			suppliers, err := s.backend.ListSuppliers(gctx)
			ref.Suppliers = suppliers
			return wrapReferenceErr("suppliers", err)
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		s.cache.Add(referenceCacheKey, ref)
		return ref, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load reference data")
		return nil, translateBackendError(err)
	}
	ref := v.(*domain.ReferenceData)
	s.LogDebug(ctx, "Reference data loaded",
		slog.Int("chart_accounts", len(ref.ChartAccounts)),
		slog.Int("banks", len(ref.Banks)))
	return ref, nil
}

func wrapReferenceErr(list string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", list, err)
}
