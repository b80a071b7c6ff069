package models

import "github.com/str4t3gy/sweetbakery/internal/compound"

type ScenarioKind string

const (
	ScenarioSingle ScenarioKind = "single"
	ScenarioSplit  ScenarioKind = "split"
	ScenarioPair   ScenarioKind = "pair"
)

// ScenarioKinds lists every scenario in report order
var ScenarioKinds = []ScenarioKind{ScenarioSingle, ScenarioSplit, ScenarioPair}

type Scenario struct {
	Kind        ScenarioKind `json:"kind"`
	Title       string       `json:"title"`
	RewardLabel string       `json:"reward_label"`
}

type ScenarioReport struct {
	Scenario Scenario        `json:"scenario"`
	Result   compound.Result `json:"result"`
}

// ParseScenarioKind accepts the lower case kind name
func ParseScenarioKind(s string) (ScenarioKind, bool) {
	for _, kind := range ScenarioKinds {
		if string(kind) == s {
			return kind, true
		}
	}
	return "", false
}
