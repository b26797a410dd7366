package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/limaJavier/matchodds/pkg/model"
)

// WriteText writes the report as a tab separated table: one row per element, one column per position
func WriteText(w io.Writer, report model.Report, names model.Names) error {
	writer := bufio.NewWriter(w)

	fmt.Fprintf(writer, "Number of possible arrangements : %d / %d\n", report.Survivors, report.Total)

	//** Headers
	writer.WriteString(".\t.")
	for position := range report.Positions {
		fmt.Fprintf(writer, "\tpos=%d", position)
	}
	writer.WriteString("\n.\t.")
	for position := range report.Positions {
		fmt.Fprintf(writer, "\t%v", positionName(names, position))
	}
	writer.WriteString("\n")

	//** Content
	for element := range report.Elements {
		fmt.Fprintf(writer, "elt=%d\t%v", element, elementName(names, element))
		for position := range report.Positions {
			writer.WriteString(textCell(report, element, position))
		}
		writer.WriteString("\n")
	}
	writer.WriteString("\n")

	return writer.Flush()
}

// Cells keep the fixed widths of the console table: "\t X    ", "\t  0% ", "\t100% " or "\t%4.1f%"
func textCell(report model.Report, element, position int) string {
	probability, ok := report.Probability(element, position)
	switch {
	case !ok:
		return "\t X    "
	case report.Impossible(element, position):
		return "\t  0% "
	case report.Certain(element, position):
		return "\t100% "
	}
	return fmt.Sprintf("\t%4.1f%%", 100*probability)
}

// WriteSurvivors lists surviving arrangements, one per line, as position=element pairs
func WriteSurvivors(w io.Writer, survivors []model.Survivor, names model.Names) error {
	writer := bufio.NewWriter(w)
	for _, survivor := range survivors {
		fmt.Fprintf(writer, "#%d", survivor.Index)
		for position, element := range survivor.Arrangement {
			fmt.Fprintf(writer, "\t%v=%v", positionName(names, position), elementName(names, element))
		}
		writer.WriteString("\n")
	}
	return writer.Flush()
}

// WriteSuggestion writes the proposed ceremony, one position per line
func WriteSuggestion(w io.Writer, suggestion model.Suggestion, names model.Names) error {
	writer := bufio.NewWriter(w)
	fmt.Fprintf(writer, "Suggested ceremony (every pair at least %.1f%%):\n", 100*suggestion.MinProbability)
	for position, element := range suggestion.Pairs {
		if element == model.Alone {
			fmt.Fprintf(writer, "(pos=%d) %v stays alone\n", position, positionName(names, position))
		} else {
			fmt.Fprintf(writer, "(pos=%d,elt=%d) %v with %v\n", position, element, positionName(names, position), elementName(names, element))
		}
	}
	return writer.Flush()
}
