package model

// SummaryStats holds the aggregate view over a full generated history.
type SummaryStats struct {
	StartYear int
	EndYear   int
	Years     int

	MeanRevenue       float64
	MeanExpense       float64
	MeanMembers       float64
	MeanExecutionRate float64

	// First-to-last percentage changes: (last-first)/first * 100.
	RevenueChangePercent float64
	MembersChangePercent float64

	// Funding structure: one share per configured source, ordered as
	// configured. Percentages sum to 100 (weights are proportional).
	FundingShares []FundingShare

	// MeanBalancePercent is the average financial balance expressed as a
	// percentage of the yearly budget.
	MeanBalancePercent float64

	// FinalDebt is the cumulative debt estimate at the end of the last
	// year, in M€.
	FinalDebt float64
}

// FundingShare is the share of one named funding source in total revenue.
type FundingShare struct {
	Source  string
	Percent float64
	Amount  float64 // mean yearly amount in M€
}

// YearIndicators pairs one record with its derived per-year indicators.
type YearIndicators struct {
	YearRecord
	Debt float64 // cumulative debt at the end of the year, M€
}
