package compound

// Reward split of the auto-compounding pool. 70% of the earnings stay in the
// primary asset, the remaining 30% are paid out in the secondary token after
// being converted through the reference currency and boosted ExchangeFactor times.
const (
	PrimaryShare   = 0.7
	SecondaryShare = 0.3
	ExchangeFactor = 5
)

// SplitParams describes a pool compounding in a primary asset that pays part
// of its rewards in a secondary token.
type SplitParams struct {
	Amount         float64
	APRPrimary     float64
	APRSecondary   float64
	FeesPrimary    float64
	FeesSecondary  float64
	PriceRef       float64
	PriceSecondary float64
}

// SplitEarnings returns the primary and secondary earnings of amount left
// compounding daily for days days.
func SplitEarnings(amount, aprPrimary, days, priceRef, priceSecondary float64) (float64, float64) {
	earnings := CompoundInterest(amount, aprPrimary, DaysPerYear, 0, days) - amount
	primary := earnings * PrimaryShare
	secondary := earnings * SecondaryShare / priceRef * ExchangeFactor * priceSecondary
	return primary, secondary
}

// SimulateSplit returns the year-end value of both balances when claiming
// and re-staking periods times a year.
func SimulateSplit(p SplitParams, periods int) float64 {
	daysInEachPeriod := DaysPerYear / float64(periods)
	secondaryPeriodInterest := p.APRSecondary / DaysPerYear * daysInEachPeriod

	ownedPrimary := p.Amount
	ownedSecondary := 0.0
	for i := 0; i < periods; i++ {
		primary, secondary := SplitEarnings(ownedPrimary, p.APRPrimary, daysInEachPeriod, p.PriceRef, p.PriceSecondary)
		grown := SimpleInterest(ownedSecondary, secondaryPeriodInterest)

		ownedPrimary = ownedPrimary + primary - p.FeesPrimary
		ownedSecondary = grown + secondary - p.FeesSecondary
	}

	return ownedPrimary + ownedSecondary
}

// BestSplitInterval finds the best manual compounding interval for a split reward pool
func BestSplitInterval(p SplitParams) Result {
	simulate := func(periods int) float64 {
		return SimulateSplit(p, periods)
	}
	best, final := BestPeriods(simulate, MaxPeriods)

	primary, secondary := SplitEarnings(p.Amount, p.APRPrimary, DaysPerYear/float64(best), p.PriceRef, p.PriceSecondary)
	return newResult(p.Amount, best, final, simulate(1), primary+secondary)
}
