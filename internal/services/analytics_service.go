package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"finboard/internal/models"
	"finboard/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// TrendWindow is the trailing window for the monthly trend aggregate.
// It is a fixed constant, not calendar-month-aligned.
const TrendWindow = 365 * 24 * time.Hour

// trendKey is the composite grouping key of the monthly trend. A struct
// key avoids the fragility of string-concatenated group keys.
type trendKey struct {
	Year     int
	Month    int
	Category string
}

// analyticsService implements AnalyticsServiceInterface
type analyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
	now             func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) AnalyticsServiceInterface {
	return &analyticsService{
		transactionRepo: transactionRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// GetAnalytics computes the three aggregate views for the caller. The
// aggregates are independent reads and run concurrently; a failure in any
// one fails the whole call.
func (s *analyticsService) GetAnalytics(ctx context.Context, identity models.Identity) (*models.AnalyticsResult, error) {
	start := s.now()
	result := &models.AnalyticsResult{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.computeSummary(identity.UserID)
		if err != nil {
			return err
		}
		result.Summary = summary
		return nil
	})

	g.Go(func() error {
		trends, err := s.computeMonthlyTrends(identity.UserID)
		if err != nil {
			return err
		}
		result.MonthlyTrends = trends
		return nil
	})

	g.Go(func() error {
		breakdown, err := s.transactionRepo.GetCategoryBreakdown(identity.UserID)
		if err != nil {
			return fmt.Errorf("failed to compute category breakdown: %w", err)
		}
		if breakdown == nil {
			breakdown = []models.CategoryBreakdown{}
		}
		result.CategoryBreakdown = breakdown
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	analyticsRequestsTotal.Inc()
	analyticsDuration.Observe(s.now().Sub(start).Seconds())

	s.logger.Debug("analytics computed",
		"user_id", identity.UserID,
		"trend_buckets", len(result.MonthlyTrends),
		"categories", len(result.CategoryBreakdown))

	return result, nil
}

// computeSummary builds the top-line totals. Absence of matching records
// yields zero totals, not an error.
func (s *analyticsService) computeSummary(userID string) (models.AnalyticsSummary, error) {
	revenue, expenses, err := s.transactionRepo.GetSummaryTotals(userID)
	if err != nil {
		return models.AnalyticsSummary{}, fmt.Errorf("failed to compute summary: %w", err)
	}

	return models.AnalyticsSummary{
		Revenue:  revenue,
		Expenses: expenses,
		Profit:   revenue.Sub(expenses),
	}, nil
}

// computeMonthlyTrends groups completed transactions within the trailing
// window by (year, month, category) and sums their amounts, sorted
// ascending by year then month.
func (s *analyticsService) computeMonthlyTrends(userID string) ([]models.MonthlyTrend, error) {
	since := s.now().Add(-TrendWindow)

	transactions, err := s.transactionRepo.GetCompletedSince(userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly trends: %w", err)
	}

	totals := make(map[trendKey]decimal.Decimal)
	for i := range transactions {
		txn := &transactions[i]
		key := trendKey{
			Year:     txn.Date.Year(),
			Month:    int(txn.Date.Month()),
			Category: txn.Category,
		}
		totals[key] = totals[key].Add(txn.Amount)
	}

	trends := make([]models.MonthlyTrend, 0, len(totals))
	for key, total := range totals {
		trends = append(trends, models.MonthlyTrend{
			Year:     key.Year,
			Month:    key.Month,
			Category: key.Category,
			Total:    total,
		})
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Year != trends[j].Year {
			return trends[i].Year < trends[j].Year
		}
		if trends[i].Month != trends[j].Month {
			return trends[i].Month < trends[j].Month
		}
		return trends[i].Category < trends[j].Category
	})

	return trends, nil
}
