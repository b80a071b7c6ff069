package services

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/str4t3gy/sweetbakery/internal/compound"
	"github.com/str4t3gy/sweetbakery/internal/config"
	"github.com/str4t3gy/sweetbakery/internal/logger"
	"github.com/str4t3gy/sweetbakery/internal/models"
)

func newTestPlanner() *Planner {
	logger.SetOutput(io.Discard)
	return NewPlanner(config.NewConfig())
}

func TestRunAllOrder(t *testing.T) {
	reports := newTestPlanner().RunAll()

	require.Len(t, reports, 3)
	assert.Equal(t, models.ScenarioSingle, reports[0].Scenario.Kind)
	assert.Equal(t, models.ScenarioSplit, reports[1].Scenario.Kind)
	assert.Equal(t, models.ScenarioPair, reports[2].Scenario.Kind)
	assert.Equal(t, "CAKE+BUNNY", reports[1].Scenario.RewardLabel)
}

func TestRunMatchesCore(t *testing.T) {
	planner := newTestPlanner()
	cfg := planner.GetConfig()

	single, err := planner.Run(models.ScenarioSingle)
	require.NoError(t, err)
	assert.Equal(t, compound.BestSingleInterval(cfg.Single.Amount, cfg.Single.APR, cfg.Single.Fee), single.Result)

	split, err := planner.Run(models.ScenarioSplit)
	require.NoError(t, err)
	assert.Equal(t, compound.BestSplitInterval(cfg.Split.Params()), split.Result)

	pair, err := planner.Run(models.ScenarioPair)
	require.NoError(t, err)
	assert.Equal(t, compound.BestPairInterval(cfg.Pair.Params()), pair.Result)
	assert.GreaterOrEqual(t, pair.Result.FinalAmount, cfg.Pair.Amount)
}

func TestRunUnknownScenario(t *testing.T) {
	_, err := newTestPlanner().Run("triple")
	assert.ErrorContains(t, err, "unknown scenario")
}

func TestRunAllIsIdempotent(t *testing.T) {
	planner := newTestPlanner()
	assert.Equal(t, planner.RunAll(), planner.RunAll())
}

func TestRunZeroAmount(t *testing.T) {
	planner := newTestPlanner()
	planner.GetConfig().Single.Amount = 0

	report := planner.RunSingle()
	assert.False(t, report.Result.HasAPY())
}
