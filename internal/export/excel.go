package export

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Respuestas Encuesta"

const (
	minColumnWidth = 15
	maxColumnWidth = 80
)

// WriteExcel renders a table as an .xlsx workbook: a single sheet with a
// styled header row and content-sized columns.
func WriteExcel(w io.Writer, table *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"059669"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	for col, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for rowIdx, row := range table.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	for col := range table.Headers {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, columnWidth(table, col)); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// columnWidth sizes a column to its longest cell, clamped so short
// columns stay readable and long free text does not blow the sheet up.
func columnWidth(table *Table, col int) float64 {
	longest := len(table.Headers[col])
	for _, row := range table.Rows {
		if col < len(row) && len(row[col]) > longest {
			longest = len(row[col])
		}
	}
	width := float64(longest + 2)
	if width < minColumnWidth {
		width = minColumnWidth
	}
	if width > maxColumnWidth {
		width = maxColumnWidth
	}
	return width
}
