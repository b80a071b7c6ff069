package compound

// PairParams describes a liquidity pair position whose rewards are staked
// into a secondary single-asset pool.
type PairParams struct {
	Amount            float64
	APRPair           float64
	APRSecondary      float64
	FeesPair          float64
	FeesSecondaryPool float64
}

// SimulatePair returns the pair position plus the secondary balance built up
// over a year. The pair position itself never grows.
func SimulatePair(p PairParams, periods int) float64 {
	daysInEachPeriod := DaysPerYear / float64(periods)
	pairPeriodInterest := p.APRPair / DaysPerYear * daysInEachPeriod
	secondaryPeriodInterest := p.APRSecondary / DaysPerYear * daysInEachPeriod

	ownedSecondary := 0.0
	for i := 0; i < periods; i++ {
		claimed := SimpleInterest(p.Amount, pairPeriodInterest) - p.Amount - p.FeesPair
		grown := SimpleInterest(ownedSecondary, secondaryPeriodInterest) - p.FeesSecondaryPool
		ownedSecondary = grown + claimed
	}

	return p.Amount + ownedSecondary
}

// BestPairInterval finds the best manual compounding interval for a pair position
func BestPairInterval(p PairParams) Result {
	simulate := func(periods int) float64 {
		return SimulatePair(p, periods)
	}
	best, final := BestPeriods(simulate, MaxPeriods)

	return newResult(p.Amount, best, final, simulate(1),
		SimpleInterest(p.Amount, p.APRPair/float64(best))-p.Amount)
}
