// Package stats summarizes channel state and renders diagnostic artifacts:
// per-channel aggregates, growth-curve charts, and kernel cross-sections.
package stats

import (
	"lenia/internal/grid"
)

type ChannelSummary struct {
	Channel int     `json:"channel"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	Mass    float64 `json:"mass"`
}

// Summarize reports aggregates per channel, in channel order.
func Summarize(fields []*grid.Field) []ChannelSummary {
	summaries := make([]ChannelSummary, 0, len(fields))
	for i, f := range fields {
		summaries = append(summaries, ChannelSummary{
			Channel: i,
			Min:     f.Min(),
			Max:     f.Max(),
			Mean:    f.Mean(),
			Mass:    f.Sum(),
		})
	}
	return summaries
}
