package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/str4t3gy/sweetbakery/internal/models"
)

const notAvailable = "n/a"

var (
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Border(lipgloss.DoubleBorder(), true, false).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// FormatNumber rounds v to places decimals. NaN and infinities have no
// decimal representation and render as n/a.
func FormatNumber(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return notAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Lines returns the plain text lines describing one scenario
func Lines(r models.ScenarioReport) []string {
	res := r.Result
	apy := FormatNumber(res.RealAPY, 2) + "%"
	if !res.HasAPY() {
		apy = notAvailable
	}

	return []string{
		fmt.Sprintf("The best interval to manually compound your investment is %s days", FormatNumber(res.FrequencyInDays, 2)),
		fmt.Sprintf("Doing so, you should get to %s in 1 year.", FormatNumber(res.FinalAmount, 2)),
		fmt.Sprintf("The real APY is: %s.", apy),
		fmt.Sprintf("The first time, wait until you have %s$ in unclaimed %s", FormatNumber(res.ValueOfFirstCompound, 2), r.Scenario.RewardLabel),
	}
}

// View renders one scenario with its banner
func View(r models.ScenarioReport) string {
	var s strings.Builder

	s.WriteString(BannerStyle.Render(r.Scenario.Title))
	s.WriteString("\n\n")

	lines := Lines(r)
	for _, line := range lines {
		s.WriteString(ValueStyle.Render(line))
		s.WriteString("\n")
	}

	res := r.Result
	s.WriteString(LabelStyle.Render(fmt.Sprintf("%d compounds a year, %s without compounding",
		res.Periods, FormatNumber(res.Baseline, 2))))
	s.WriteString("\n")

	if !res.HasAPY() {
		s.WriteString(WarnStyle.Render("No meaningful APY: the invested amount is zero"))
		s.WriteString("\n")
	}

	return s.String()
}

// Render writes the styled report of every scenario to w
func Render(w io.Writer, reports ...models.ScenarioReport) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
		}
		if _, err := io.WriteString(w, View(r)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

type jsonResult struct {
	Kind                 models.ScenarioKind `json:"kind"`
	Title                string              `json:"title"`
	RewardLabel          string              `json:"reward_label"`
	Periods              int                 `json:"periods"`
	FrequencyInDays      float64             `json:"frequency_in_days"`
	ValueOfFirstCompound float64             `json:"value_of_first_compound"`
	FinalAmount          float64             `json:"final_amount"`
	Baseline             float64             `json:"baseline"`
	RealAPY              *float64            `json:"real_apy"`
}

// WriteJSON writes the reports as an indented JSON array. A missing APY is
// encoded as null since JSON has no NaN.
func WriteJSON(w io.Writer, reports ...models.ScenarioReport) error {
	out := make([]jsonResult, 0, len(reports))
	for _, r := range reports {
		res := r.Result
		entry := jsonResult{
			Kind:                 r.Scenario.Kind,
			Title:                r.Scenario.Title,
			RewardLabel:          r.Scenario.RewardLabel,
			Periods:              res.Periods,
			FrequencyInDays:      res.FrequencyInDays,
			ValueOfFirstCompound: res.ValueOfFirstCompound,
			FinalAmount:          res.FinalAmount,
			Baseline:             res.Baseline,
		}
		if res.HasAPY() {
			apy := res.RealAPY
			entry.RealAPY = &apy
		}
		out = append(out, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	return nil
}
