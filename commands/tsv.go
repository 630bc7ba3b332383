package commands

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spf13/cast"

	"github.com/sheetlens/sheetlens/dataset"
)

// tableToTSV writes a table as tab separated values, column labels first.
func tableToTSV(f io.Writer, table *dataset.Table) error {
	if table.IsEmpty() && len(table.Labels) == 0 {
		return fmt.Errorf("empty table")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(table.Labels); err != nil {
		return err
	}

	record := make([]string, len(table.Labels))
	for _, row := range table.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = cast.ToString(row[i])
			}
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
