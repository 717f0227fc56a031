package simulate

// era maps a span of years to an annual growth rate. Spans are inclusive
// and checked in order; the first match wins.
type era struct {
	from, to int
	rate     float64
}

// Growth rates reflect the party's political cycles: the 2002 creation
// boom, the Sarkozy presidency, the post-2012 and post-2017 slumps, and
// the reconstruction that follows.
var (
	memberEras = []era{
		{2002, 2007, 0.15},
		{2008, 2012, 0.08},
		{2013, 2014, -0.12},
		{2015, 2016, 0.05},
		{2017, 2022, -0.18},
	}
	memberDefaultRate = 0.03

	revenueEras = []era{
		{2002, 2007, 0.12},
		{2008, 2012, 0.04},
		{2013, 2016, 0.08},
		{2017, 2021, -0.10},
	}
	revenueDefaultRate = 0.05
)

// executionRateEras gives the base budget execution rate per period. The
// 2013-2017 dip tracks the party's documented financial difficulties.
var executionRateEras = []struct {
	to   int
	base float64
}{
	{2005, 0.85},
	{2012, 0.88},
	{2017, 0.82},
}

const executionRateDefault = 0.87

// electionYears are presidential/legislative years with outsized spending.
var electionYears = map[int]bool{
	2002: true, 2007: true, 2012: true, 2017: true, 2022: true,
}

// adjustment scales one simulated series for a single year, modeling a
// discrete shock rather than a trend.
type adjustment struct {
	revenue float64
	members float64
}

// yearAdjustments are the party's one-off shocks: creation and election
// windfalls, the 2008-09 financial crisis, the 2014 Bygmalion scandal,
// the 2016 primary, and the electoral collapses of 2012 and 2017.
var yearAdjustments = map[int]adjustment{
	2002: {revenue: 1.8, members: 1.5},
	2007: {revenue: 1.4, members: 1},
	2008: {revenue: 0.90, members: 1},
	2009: {revenue: 0.90, members: 1},
	2012: {revenue: 1, members: 0.88},
	2014: {revenue: 0.85, members: 1},
	2016: {revenue: 1.3, members: 1},
	2017: {revenue: 1, members: 0.78},
}

func growthRate(eras []era, fallback float64, year int) float64 {
	for _, e := range eras {
		if year >= e.from && year <= e.to {
			return e.rate
		}
	}
	return fallback
}

func executionBase(year int) float64 {
	for _, e := range executionRateEras {
		if year <= e.to {
			return e.base
		}
	}
	return executionRateDefault
}
