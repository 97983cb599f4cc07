package xlsx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/username/tabel/internal/sheet"
	"github.com/xuri/excelize/v2"
)

// ReadFile decodes the first worksheet of a workbook on disk
func ReadFile(path string) (*sheet.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	return ReadGrid(file, path)
}

// ReadGrid decodes the first worksheet of a workbook. The container format is
// chosen by the file name extension: legacy .xls or Office Open XML otherwise.
func ReadGrid(reader io.Reader, filename string) (*sheet.Grid, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		return readXLS(data)
	default:
		return readXLSX(data)
	}
}

func readXLSX(data []byte) (*sheet.Grid, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %q: %w", sheetName, err)
	}

	grid := sheet.NewGrid()
	for i, row := range rows {
		for j, value := range row {
			if value == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			cellType, err := file.GetCellType(sheetName, ref)
			if err != nil {
				return nil, fmt.Errorf("failed to read cell %s: %w", ref, err)
			}

			switch cellType {
			case excelize.CellTypeUnset, excelize.CellTypeNumber:
				grid.Set(i+1, j+1, typedCell(value))
			default:
				grid.Set(i+1, j+1, sheet.Text(value))
			}
		}
	}

	return grid, nil
}

func readXLS(data []byte) (*sheet.Grid, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls: %w", err)
	}
	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}

	ws := workbook.GetSheet(0)
	if ws == nil {
		return nil, fmt.Errorf("no worksheet found")
	}

	// xls values arrive as strings, numbers are recovered by parsing
	grid := sheet.NewGrid()
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			continue
		}
		for j := row.FirstCol(); j <= row.LastCol(); j++ {
			if value := row.Col(j); value != "" {
				grid.Set(i+1, j+1, typedCell(value))
			}
		}
	}

	return grid, nil
}

// typedCell turns a number-looking value into a numeric cell
func typedCell(value string) sheet.Cell {
	if n, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
		return sheet.Number(n)
	}
	return sheet.Text(value)
}
