package report

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/str4t3gy/sweetbakery/internal/compound"
	"github.com/str4t3gy/sweetbakery/internal/models"
)

func sampleReport() models.ScenarioReport {
	return models.ScenarioReport{
		Scenario: models.Scenario{Kind: models.ScenarioSingle, Title: "BUNNY COMPOUNDING", RewardLabel: "BUNNY"},
		Result: compound.Result{
			Periods:              20,
			FrequencyInDays:      18.25,
			ValueOfFirstCompound: 15.28702,
			FinalAmount:          712.456,
			Baseline:             569.2404,
			RealAPY:              167.840601,
		},
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		places   int32
		expected string
	}{
		{"rounds to places", 1.005, 1, "1.0"},
		{"pads decimals", 365, 2, "365.00"},
		{"negative", -2.456, 2, "-2.46"},
		{"nan", math.NaN(), 2, "n/a"},
		{"inf", math.Inf(-1), 2, "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.value, tt.places))
		})
	}
}

func TestLines(t *testing.T) {
	lines := Lines(sampleReport())

	require.Len(t, lines, 4)
	assert.Equal(t, "The best interval to manually compound your investment is 18.25 days", lines[0])
	assert.Equal(t, "Doing so, you should get to 712.46 in 1 year.", lines[1])
	assert.Equal(t, "The real APY is: 167.84%.", lines[2])
	assert.Equal(t, "The first time, wait until you have 15.29$ in unclaimed BUNNY", lines[3])
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	second := sampleReport()
	second.Scenario.Title = "CAKE+BUNNY COMPOUNDING"

	require.NoError(t, Render(&buf, sampleReport(), second))

	out := buf.String()
	assert.Contains(t, out, "BUNNY COMPOUNDING")
	assert.Contains(t, out, "CAKE+BUNNY COMPOUNDING")
	assert.Contains(t, out, "20 compounds a year, 569.24 without compounding")
	assert.NotContains(t, out, "No meaningful APY")
}

func TestRenderWithoutAPY(t *testing.T) {
	r := sampleReport()
	r.Result.RealAPY = math.NaN()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r))

	assert.Contains(t, buf.String(), "The real APY is: n/a.")
	assert.Contains(t, buf.String(), "No meaningful APY")
}

func TestWriteJSON(t *testing.T) {
	withoutAPY := sampleReport()
	withoutAPY.Result.RealAPY = math.NaN()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport(), withoutAPY))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "single", decoded[0]["kind"])
	assert.Equal(t, 20.0, decoded[0]["periods"])
	assert.InDelta(t, 167.840601, decoded[0]["real_apy"], 1e-9)
	assert.Nil(t, decoded[1]["real_apy"])
}
