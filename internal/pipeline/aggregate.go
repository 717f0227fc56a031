// Package pipeline computes aggregate statistics over a generated history.
package pipeline

import (
	"errors"

	"partifin/internal/config"
	"partifin/internal/model"
)

// ErrEmptyDataset is returned when the summarizer receives no records.
var ErrEmptyDataset = errors.New("empty dataset")

// Aggregate computes summary statistics from the full ordered history.
// Means are order-independent; change percentages use the first and last
// records by year, not by position.
func Aggregate(records []model.YearRecord, party config.PartyConfig, baseDebt float64) (model.SummaryStats, error) {
	if len(records) == 0 {
		return model.SummaryStats{}, ErrEmptyDataset
	}

	first, last := records[0], records[0]
	var stats model.SummaryStats
	var sumBalancePct float64

	for _, r := range records {
		stats.MeanRevenue += r.TotalRevenue
		stats.MeanExpense += r.TotalExpense
		stats.MeanMembers += r.Members
		stats.MeanExecutionRate += r.ExecutionRate
		sumBalancePct += r.BalancePercent()

		if r.Year < first.Year {
			first = r
		}
		if r.Year > last.Year {
			last = r
		}
	}

	n := float64(len(records))
	stats.Years = len(records)
	stats.StartYear = first.Year
	stats.EndYear = last.Year
	stats.MeanRevenue /= n
	stats.MeanExpense /= n
	stats.MeanMembers /= n
	stats.MeanExecutionRate /= n
	stats.MeanBalancePercent = sumBalancePct / n

	stats.RevenueChangePercent = changePercent(first.TotalRevenue, last.TotalRevenue)
	stats.MembersChangePercent = changePercent(first.Members, last.Members)

	stats.FundingShares = fundingShares(party.FundingSources, stats.MeanRevenue)

	indicators := WithDebt(records, baseDebt)
	stats.FinalDebt = indicators[len(indicators)-1].Debt

	return stats, nil
}

// changePercent is the relative change between first and last, in percent.
func changePercent(first, last float64) float64 {
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}

// fundingShares applies the configured proportional weights to mean
// revenue. Shares are derived, not independently sampled, so they sum to
// 100% whenever the weights sum to 1.
func fundingShares(sources []config.FundingSource, meanRevenue float64) []model.FundingShare {
	shares := make([]model.FundingShare, 0, len(sources))
	for _, s := range sources {
		shares = append(shares, model.FundingShare{
			Source:  s.Name,
			Percent: s.Weight * 100,
			Amount:  s.Weight * meanRevenue,
		})
	}
	return shares
}

// WithDebt derives per-year indicators by accumulating each year's deficit
// onto the running debt stock. Surpluses pay debt down, floored at zero.
func WithDebt(records []model.YearRecord, baseDebt float64) []model.YearIndicators {
	indicators := make([]model.YearIndicators, 0, len(records))
	debt := baseDebt
	for _, r := range records {
		debt -= r.Balance()
		if debt < 0 {
			debt = 0
		}
		indicators = append(indicators, model.YearIndicators{YearRecord: r, Debt: debt})
	}
	return indicators
}
