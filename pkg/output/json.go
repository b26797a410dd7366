package output

import (
	"encoding/json"
	"io"

	"github.com/limaJavier/matchodds/pkg/model"
	"github.com/samber/lo"
)

type jsonReport struct {
	Survivors     uint64       `json:"survivors"`
	Total         uint64       `json:"total"`
	Positions     []string     `json:"positions"`
	Elements      []string     `json:"elements"`
	Counts        [][]uint64   `json:"counts"`
	Probabilities [][]*float64 `json:"probabilities"` // null when there are no survivors
}

// WriteJSON writes the raw counts and probabilities indexed as [element][position]
func WriteJSON(w io.Writer, report model.Report, names model.Names) error {
	output := jsonReport{
		Survivors: report.Survivors,
		Total:     report.Total,
		Positions: lo.Times(report.Positions, func(position int) string { return positionName(names, position) }),
		Elements:  lo.Times(report.Elements, func(element int) string { return elementName(names, element) }),
		Counts:    report.Counts,
		Probabilities: lo.Times(report.Elements, func(element int) []*float64 {
			return lo.Times(report.Positions, func(position int) *float64 {
				probability, ok := report.Probability(element, position)
				if !ok {
					return nil
				}
				return &probability
			})
		}),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
