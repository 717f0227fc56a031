// Package model defines domain types for partifin records and statistics.
package model

// YearRecord holds the simulated finances of the party for one calendar year.
// Amounts are in millions of euros. Records are immutable once generated.
type YearRecord struct {
	Year          int
	Members       float64
	TotalRevenue  float64
	TotalExpense  float64
	ExecutionRate float64 // realized spending / budgeted revenue, in (0, 1]
}

// Balance returns the financial balance (revenue minus expense) in M€.
func (r YearRecord) Balance() float64 {
	return r.TotalRevenue - r.TotalExpense
}

// BalancePercent returns the balance expressed as a percentage of the
// year's budget (total revenue).
func (r YearRecord) BalancePercent() float64 {
	if r.TotalRevenue == 0 {
		return 0
	}
	return r.Balance() / r.TotalRevenue * 100
}
