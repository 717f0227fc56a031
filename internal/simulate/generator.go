// Package simulate generates the party's synthetic yearly finances.
package simulate

import (
	"math/rand"
	"time"

	"partifin/internal/config"
	"partifin/internal/model"
)

// Generator produces one YearRecord per year in the configured range. The
// randomness source is injected so runs are reproducible under a fixed seed.
type Generator struct {
	sim config.SimulationConfig
	rng *rand.Rand
}

// New validates the simulation parameters and builds a generator. A seed of
// zero selects a time-based seed.
func New(sim config.SimulationConfig) (*Generator, error) {
	if err := sim.Validate(); err != nil {
		return nil, err
	}

	seed := sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		sim: sim,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

// Run generates the full ordered history, one record per year, strictly
// increasing with no gaps. It has no side effects; persistence belongs to
// the caller.
func (g *Generator) Run() []model.YearRecord {
	years := g.sim.EndYear - g.sim.StartYear + 1
	records := make([]model.YearRecord, 0, years)

	for i := 0; i < years; i++ {
		year := g.sim.StartYear + i
		records = append(records, g.simulateYear(year, i))
	}

	return records
}

func (g *Generator) simulateYear(year, idx int) model.YearRecord {
	adj, hasAdj := yearAdjustments[year]

	// Membership: era trend, gaussian noise, one-off shocks.
	members := g.sim.BaseMembers *
		trend(growthRate(memberEras, memberDefaultRate, year), idx, 3) *
		g.noise(0.08)
	if hasAdj {
		members *= adj.members
	}

	// Revenue follows its own era trend plus the same shock model.
	revenue := g.sim.BaseBudget *
		trend(growthRate(revenueEras, revenueDefaultRate, year), idx, 3) *
		g.noise(0.10)
	if hasAdj {
		revenue *= adj.revenue
	}

	// Expenses track revenue near parity with a slight average deficit,
	// amplified in election years.
	expense := revenue * 0.95 * g.noise(0.08)
	if electionYears[year] {
		expense *= 1.4
	}

	rate := executionBase(year) * g.noise(0.04)

	return model.YearRecord{
		Year:          year,
		Members:       clampMin(members, 1),
		TotalRevenue:  clampMin(revenue, 0.1),
		TotalExpense:  clampMin(expense, 0.1),
		ExecutionRate: clampRate(rate),
	}
}

// trend compounds an annual growth rate over the elapsed years, softened
// by a damping divisor that keeps late years bounded. Floored above zero
// so a long decline never produces negative quantities.
func trend(rate float64, idx int, damping float64) float64 {
	t := 1 + rate*float64(idx)/damping
	if t < 0.05 {
		return 0.05
	}
	return t
}

// noise draws a multiplicative gaussian factor centered on 1.
func (g *Generator) noise(sigma float64) float64 {
	return 1 + g.rng.NormFloat64()*sigma
}

func clampMin(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

func clampRate(v float64) float64 {
	if v <= 0 {
		return 0.01
	}
	if v > 1 {
		return 1
	}
	return v
}
