package models

import "github.com/shopspring/decimal"

// AnalyticsSummary holds the top-line totals over completed transactions
type AnalyticsSummary struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// MonthlyTrend is one (year, month, category) bucket of the trailing-year
// trend, with the summed amount for that bucket
type MonthlyTrend struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryBreakdown is the per-category total and record count over
// completed transactions
type CategoryBreakdown struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// AnalyticsResult bundles the three independent aggregate views
type AnalyticsResult struct {
	Summary           AnalyticsSummary    `json:"summary"`
	MonthlyTrends     []MonthlyTrend      `json:"monthlyTrends"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
}
