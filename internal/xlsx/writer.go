package xlsx

import (
	"fmt"
	"math"

	"github.com/username/tabel/internal/sheet"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the worksheet title of exported timesheets
const DefaultSheetName = "Учет рабочего времени"

// WriteGrid renders the grid into a new single-sheet workbook
func WriteGrid(g *sheet.Grid, sheetName string) (*excelize.File, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	for row := 1; row <= g.Rows(); row++ {
		for col := 1; col <= g.Width(row); col++ {
			c := g.At(row, col)
			if c.IsEmpty() {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				_ = f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheetName, ref, cellValue(c)); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("failed to write cell %s: %w", ref, err)
			}
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err == nil && g.Rows() > 0 {
		_ = f.SetRowStyle(sheetName, 1, min(sheet.HeaderRows, g.Rows()), headerStyle)
	}

	firstDay, _ := excelize.ColumnNumberToName(sheet.ColFirstDay)
	lastDay, _ := excelize.ColumnNumberToName(sheet.ColFirstDay + sheet.MaxDays - 1)
	firstSummary, _ := excelize.ColumnNumberToName(sheet.ColSummary)
	lastSummary, _ := excelize.ColumnNumberToName(sheet.ColSummary + 3)

	_ = f.SetColWidth(sheetName, "A", "A", 6)
	_ = f.SetColWidth(sheetName, "B", "B", 40)
	_ = f.SetColWidth(sheetName, "C", "C", 14)
	_ = f.SetColWidth(sheetName, firstDay, lastDay, 4)
	_ = f.SetColWidth(sheetName, firstSummary, lastSummary, 18)

	return f, nil
}

// SaveGrid writes the grid to an .xlsx file
func SaveGrid(g *sheet.Grid, sheetName, path string) error {
	f, err := WriteGrid(g, sheetName)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func cellValue(c sheet.Cell) interface{} {
	if c.Kind == sheet.CellNumber {
		if c.Number == math.Trunc(c.Number) && math.Abs(c.Number) < math.MaxInt32 {
			return int(c.Number)
		}
		return c.Number
	}
	return c.Text
}
