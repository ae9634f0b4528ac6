package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// DashboardService owns the most recently loaded portfolio snapshot. A
// failed load keeps the previous snapshot in place.
type DashboardService struct {
	loader   PortfolioLoader
	logger   *slog.Logger
	observer UseCaseObserver
	now      func() time.Time

	mu       sync.RWMutex
	current  *domain.Portfolio
	loadedAt time.Time
}

func NewDashboardService(loader PortfolioLoader, logger *slog.Logger, observers ...UseCaseObserver) *DashboardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DashboardService{
		loader:   loader,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// Load reads the source and replaces the snapshot. Every successful load
// gets a fresh LoadID.
func (s *DashboardService) Load(ctx context.Context) (pf *domain.Portfolio, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": s.loader.Name()}
	defer func() {
		observe(ctx, s.observer, UseCaseLoad, startedAt, err, fields)
	}()

	pf, err = s.loader.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load dashboard data", "source", s.loader.Name(), "error", err)
		return nil, fmt.Errorf("loading dashboard data: %w", err)
	}
	pf.LoadID = uuid.NewString()
	fields["load_id"] = pf.LoadID
	fields["projects"] = len(pf.Projects)

	for _, w := range pf.Warnings {
		s.logger.WarnContext(ctx, "dashboard data warning", "load_id", pf.LoadID, "warning", w)
	}

	s.mu.Lock()
	s.current = pf
	s.loadedAt = s.now()
	s.mu.Unlock()
	return pf, nil
}

// Current returns the snapshot and when it was loaded, or nil before the
// first successful load.
func (s *DashboardService) Current() (*domain.Portfolio, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.loadedAt
}

// SourceName identifies the configured source.
func (s *DashboardService) SourceName() string {
	return s.loader.Name()
}
