package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/limaJavier/matchodds/pkg/model"
	"github.com/samber/lo"
)

// WriteCSV writes one record per element; the header holds the position names
func WriteCSV(w io.Writer, report model.Report, names model.Names) error {
	writer := csv.NewWriter(w)

	header := append([]string{"Element"}, lo.Times(report.Positions, func(position int) string {
		return positionName(names, position)
	})...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for element := range report.Elements {
		record := append([]string{elementName(names, element)}, lo.Times(report.Positions, func(position int) string {
			return percentage(report, element, position)
		})...)
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
