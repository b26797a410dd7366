package output

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/limaJavier/matchodds/pkg/model"
)

type Format string

const (
	Text Format = "text"
	CSV  Format = "csv"
	JSON Format = "json"
)

var Formats = []Format{Text, CSV, JSON}

func ParseFormat(format string) (Format, error) {
	parsed := Format(strings.ToLower(format))
	if !slices.Contains(Formats, parsed) {
		return "", fmt.Errorf("%v is not a valid format", format)
	}
	return parsed, nil
}

// Writes the report in the given format
func WriteReport(w io.Writer, format Format, report model.Report, names model.Names) error {
	switch format {
	case Text:
		return WriteText(w, report, names)
	case CSV:
		return WriteCSV(w, report, names)
	case JSON:
		return WriteJSON(w, report, names)
	}
	return fmt.Errorf("%v is not a valid format", format)
}

// Formats a cell as a percentage; "X" when there are no survivors
func percentage(report model.Report, element, position int) string {
	probability, ok := report.Probability(element, position)
	switch {
	case !ok:
		return "X"
	case report.Impossible(element, position):
		return "0%"
	case report.Certain(element, position):
		return "100%"
	}
	return fmt.Sprintf("%.1f%%", 100*probability)
}

func positionName(names model.Names, position int) string {
	if position < len(names.Positions) {
		return names.Positions[position]
	}
	return "-"
}

func elementName(names model.Names, element int) string {
	if element >= 0 && element < len(names.Elements) {
		return names.Elements[element]
	}
	return "-"
}
