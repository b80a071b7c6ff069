package services

import (
	"fmt"

	"github.com/str4t3gy/sweetbakery/internal/compound"
	"github.com/str4t3gy/sweetbakery/internal/config"
	"github.com/str4t3gy/sweetbakery/internal/logger"
	"github.com/str4t3gy/sweetbakery/internal/models"
)

// Planner runs the best interval search for each configured pool
type Planner struct {
	config *config.Config
}

// NewPlanner creates a planner over the given configuration
func NewPlanner(cfg *config.Config) *Planner {
	return &Planner{config: cfg}
}

// GetConfig returns the current configuration
func (p *Planner) GetConfig() *config.Config {
	return p.config
}

// RunSingle plans the pool that pays rewards in the staked asset
func (p *Planner) RunSingle() models.ScenarioReport {
	c := p.config.Single
	logger.Debug("Single pool: amount=%v apr=%v fee=%v", c.Amount, c.APR, c.Fee)

	return p.report(models.Scenario{
		Kind:        models.ScenarioSingle,
		Title:       c.RewardLabel + " COMPOUNDING",
		RewardLabel: c.RewardLabel,
	}, compound.BestSingleInterval(c.Amount, c.APR, c.Fee))
}

// RunSplit plans the pool splitting its rewards into a secondary token
func (p *Planner) RunSplit() models.ScenarioReport {
	c := p.config.Split
	logger.Debug("Split pool: amount=%v apr=%v/%v fees=%v/%v prices=%v/%v",
		c.Amount, c.APRPrimary, c.APRSecondary, c.FeesPrimary, c.FeesSecondary, c.PriceRef, c.PriceSecondary)

	return p.report(models.Scenario{
		Kind:        models.ScenarioSplit,
		Title:       c.RewardLabel + " COMPOUNDING",
		RewardLabel: c.RewardLabel,
	}, compound.BestSplitInterval(c.Params()))
}

// RunPair plans the liquidity pair whose rewards feed a secondary pool
func (p *Planner) RunPair() models.ScenarioReport {
	c := p.config.Pair
	logger.Debug("Pair pool: amount=%v apr=%v/%v fees=%v/%v",
		c.Amount, c.APRPair, c.APRSecondary, c.FeesPair, c.FeesSecondaryPool)

	return p.report(models.Scenario{
		Kind:        models.ScenarioPair,
		Title:       c.RewardLabel + " PAIR COMPOUNDING",
		RewardLabel: c.RewardLabel,
	}, compound.BestPairInterval(c.Params()))
}

// Run dispatches to the planner of the given scenario
func (p *Planner) Run(kind models.ScenarioKind) (models.ScenarioReport, error) {
	switch kind {
	case models.ScenarioSingle:
		return p.RunSingle(), nil
	case models.ScenarioSplit:
		return p.RunSplit(), nil
	case models.ScenarioPair:
		return p.RunPair(), nil
	default:
		return models.ScenarioReport{}, fmt.Errorf("unknown scenario: %q", kind)
	}
}

// RunAll plans every scenario in report order
func (p *Planner) RunAll() []models.ScenarioReport {
	reports := make([]models.ScenarioReport, 0, len(models.ScenarioKinds))
	for _, kind := range models.ScenarioKinds {
		report, err := p.Run(kind)
		if err != nil {
			logger.Error("Failed to plan %s: %v", kind, err)
			continue
		}
		reports = append(reports, report)
	}
	return reports
}

func (p *Planner) report(scenario models.Scenario, result compound.Result) models.ScenarioReport {
	logger.Info("%s: compound every %.2f days (%d times a year)",
		scenario.Kind, result.FrequencyInDays, result.Periods)

	if !result.HasAPY() {
		logger.Warn("%s: no meaningful APY for a zero amount", scenario.Kind)
	}
	if result.Periods == compound.MaxPeriods {
		logger.Debug("%s: search stopped at daily compounding", scenario.Kind)
	}

	return models.ScenarioReport{Scenario: scenario, Result: result}
}
