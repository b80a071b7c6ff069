package compound

import "math"

const (
	// DaysPerYear is the year length every simulation runs over
	DaysPerYear = 365

	// MaxPeriods caps the search at daily compounding
	MaxPeriods = 365
)

// Result is the outcome of a best interval search for one scenario
type Result struct {
	Periods              int     `json:"periods"`
	FrequencyInDays      float64 `json:"frequency_in_days"`
	ValueOfFirstCompound float64 `json:"value_of_first_compound"`
	FinalAmount          float64 `json:"final_amount"`
	Baseline             float64 `json:"baseline"`
	RealAPY              float64 `json:"real_apy"`
}

// HasAPY reports whether RealAPY carries a meaningful value
func (r Result) HasAPY() bool {
	return !math.IsNaN(r.RealAPY)
}

// SimpleInterest applies one period of simple interest, ratePercent being a percentage
func SimpleInterest(amount, ratePercent float64) float64 {
	return amount + amount*ratePercent/100
}

// CompoundInterest splits days into periods equal parts, applies the interest
// for each part and pays fee after every one of them. The result is not clamped.
func CompoundInterest(amount, yearlyRate float64, periods int, fee, days float64) float64 {
	daysInEachPeriod := days / float64(periods)
	periodInterest := yearlyRate / DaysPerYear * daysInEachPeriod
	for i := 0; i < periods; i++ {
		amount = SimpleInterest(amount, periodInterest) - fee
	}
	return amount
}

// Compound is CompoundInterest over a full year
func Compound(amount, yearlyRate float64, periods int, fee float64) float64 {
	return CompoundInterest(amount, yearlyRate, periods, fee, DaysPerYear)
}

// BestPeriods climbs from one period upwards and stops at the first count
// that does not improve on the previous one, or at maxPeriods.
func BestPeriods(simulate func(periods int) float64, maxPeriods int) (int, float64) {
	best := 1
	bestAmount := simulate(best)
	for best < maxPeriods {
		next := simulate(best + 1)
		if next <= bestAmount {
			break
		}
		best++
		bestAmount = next
	}
	return best, bestAmount
}

// BestSingleInterval finds the best manual compounding interval for a pool
// that pays its rewards in the staked asset.
func BestSingleInterval(amount, apr, fee float64) Result {
	simulate := func(periods int) float64 {
		return Compound(amount, apr, periods, fee)
	}
	best, final := BestPeriods(simulate, MaxPeriods)

	return newResult(amount, best, final, simulate(1),
		SimpleInterest(amount, apr/float64(best))-amount)
}

func newResult(amount float64, periods int, final, baseline, firstCompound float64) Result {
	return Result{
		Periods:              periods,
		FrequencyInDays:      DaysPerYear / float64(periods),
		ValueOfFirstCompound: firstCompound,
		FinalAmount:          final,
		Baseline:             baseline,
		RealAPY:              realAPY(final, amount),
	}
}

func realAPY(final, amount float64) float64 {
	if amount == 0 {
		return math.NaN()
	}
	return 100 * (final - amount) / amount
}
