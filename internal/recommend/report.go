package recommend

import (
	"feeTierScope/internal/aggregate"
	"feeTierScope/internal/model"
	"feeTierScope/internal/source"
)

// Report is a stateless view of one boundary result.
type Report struct {
	Pair         model.TokenPair     `json:"pair"`
	Status       source.Status       `json:"status"`
	Distribution *model.Distribution `json:"distribution,omitempty"`
	Percentages  map[string]string   `json:"percentages,omitempty"`
	Recommended  *model.FeeTier      `json:"recommended"`
	ShowManual   bool                `json:"show_manual"`
	Loading      bool                `json:"loading"`
	Records      int                 `json:"records"`
}

// Evaluate aggregates a result and picks a tier without any one-shot guard.
func Evaluate(pair model.TokenPair, result source.Result) Report {
	report := Report{Pair: pair, Status: result.Status}
	switch result.Status {
	case source.StatusNotRequested:
		return report
	case source.StatusInFlight:
		report.Loading = true
		return report
	case source.StatusFailed:
		report.ShowManual = true
		return report
	}

	dist, err := aggregate.Aggregate(result.Records)
	if err != nil {
		report.Status = source.StatusFailed
		report.ShowManual = true
		return report
	}
	report.Distribution = &dist
	report.Percentages = dist.Percentages()
	report.Records = len(result.Records)

	if tier, ok := Recommend(dist); ok {
		report.Recommended = &tier
	} else {
		report.ShowManual = true
	}
	return report
}
