package sheet

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind distinguishes numbers from text
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one decoded worksheet value
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Text creates a text cell, blank text yields an empty cell
func Text(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: s}
}

// Number creates a numeric cell
func Number(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n}
}

// IsEmpty reports whether the cell holds no value
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String returns the cell as displayed text
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return ""
}

// Grid is a single worksheet addressed by 1-based row and column numbers.
// Rows may be ragged.
type Grid struct {
	rows [][]Cell
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{}
}

// Rows returns the number of the last row that was set
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Width returns the number of the last column set in the row
func (g *Grid) Width(row int) int {
	if row < 1 || row > len(g.rows) {
		return 0
	}
	return len(g.rows[row-1])
}

// At returns the cell at row and column, or an empty cell
func (g *Grid) At(row, col int) Cell {
	if row < 1 || col < 1 || row > len(g.rows) || col > len(g.rows[row-1]) {
		return Cell{}
	}
	return g.rows[row-1][col-1]
}

// Get returns the cell at an A1-style reference such as "D11"
func (g *Grid) Get(ref string) (Cell, error) {
	col, row, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return Cell{}, err
	}
	return g.At(row, col), nil
}

// Set stores the cell, growing the grid as needed
func (g *Grid) Set(row, col int, c Cell) {
	if row < 1 || col < 1 {
		return
	}
	for len(g.rows) < row {
		g.rows = append(g.rows, nil)
	}
	cells := g.rows[row-1]
	for len(cells) < col {
		cells = append(cells, Cell{})
	}
	cells[col-1] = c
	g.rows[row-1] = cells
}
