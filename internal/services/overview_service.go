package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"nestegg/internal/ledger"
	"nestegg/internal/logger"
	"nestegg/internal/models"
)

// recentEntryLimit caps the transaction list on the overview.
const recentEntryLimit = 20

// overviewService assembles the dashboard overview from several
// independent reads.
type overviewService struct {
	db *gorm.DB
}

// NewOverviewService creates a new OverviewServicer.
func NewOverviewService(db *gorm.DB) OverviewServicer {
	return &overviewService{db: db}
}

// GetOverview fetches goals, balances, recent ledger entries, and the
// all-goals summary concurrently and joins on all of them. A failed source
// is reported under its name in Errors and leaves its field empty; the
// other sources still render. GetOverview itself only fails when the
// context is cancelled.
func (s *overviewService) GetOverview(ctx context.Context, userID string) (*Overview, error) {
	overview := &Overview{Errors: map[string]string{}}

	var mu sync.Mutex
	fail := func(source string, err error) {
		logger.Get().Warnw("overview source failed", "source", source, "error", err.Error())
		mu.Lock()
		overview.Errors[source] = err.Error()
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var goals []models.Goal
		err := s.db.WithContext(gctx).Where("user_id = ?", userID).
			Preload("Category").Order("created_at DESC").Find(&goals).Error
		if err != nil {
			fail("goals", err)
			return nil
		}
		overview.Goals = goals
		return nil
	})

	g.Go(func() error {
		var balances []models.Balance
		err := s.db.WithContext(gctx).Where("user_id = ?", userID).Find(&balances).Error
		if err != nil {
			fail("balances", err)
			return nil
		}
		overview.Balances = balances
		return nil
	})

	g.Go(func() error {
		var entries []models.GoalTransaction
		err := s.db.WithContext(gctx).Where("user_id = ?", userID).
			Order("created_at DESC").Limit(recentEntryLimit).Find(&entries).Error
		if err != nil {
			fail("recent_transactions", err)
			return nil
		}
		overview.RecentTransactions = entries
		return nil
	})

	g.Go(func() error {
		var entries []models.GoalTransaction
		err := s.db.WithContext(gctx).Where("user_id = ?", userID).Find(&entries).Error
		if err != nil {
			fail("summary", err)
			return nil
		}
		summary := ledger.Summarize(entries)
		overview.Summary = &summary
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The errgroup cancels its derived context once Wait returns, so only
	// the caller's context tells us whether the request itself was cancelled.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(overview.Errors) == 0 {
		overview.Errors = nil
	}
	if overview.Goals == nil {
		overview.Goals = []models.Goal{}
	}
	if overview.Balances == nil {
		overview.Balances = []models.Balance{}
	}
	if overview.RecentTransactions == nil {
		overview.RecentTransactions = []models.GoalTransaction{}
	}

	return overview, nil
}
