package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/username/tabel/internal/attendance"
)

// Fixed columns of the timesheet form
const (
	ColNumber   = 1 // A: employee number
	ColName     = 2 // B: "Name, position"
	ColLabel    = 3 // C: sub-row label
	ColFirstDay = 4 // D: day 1, AH: day 31
	MaxDays     = 31
	ColSummary  = ColFirstDay + MaxDays // AI..AL

	HeaderRows = 4
)

// Sub-row labels of one employee block
const (
	LabelTime  = "время"
	LabelHours = "часы"
	LabelNight = "из них ночные"
)

var summaryHeaders = []string{
	"В целом за месяц",
	"В выходные и нерабочие праздничные дни",
	"Сверх установленной продолжительности рабочего времени",
	"Продолжительность отдыха, превышающая продолжительность смены",
}

// DefaultDataStartRow is the first row read by the import
const DefaultDataStartRow = 11

// Layout describes where employee data lives in the worksheet
type Layout struct {
	DataStartRow int
}

// DefaultLayout returns the standard form layout
func DefaultLayout() Layout {
	return Layout{DataStartRow: DefaultDataStartRow}
}

// ImportRoster reads a roster using the default layout
func ImportRoster(g *Grid) (attendance.Roster, error) {
	return DefaultLayout().Import(g)
}

// ExportRoster writes a roster using the default layout
func ExportRoster(roster attendance.Roster, month, year int) *Grid {
	return DefaultLayout().Export(roster, month, year)
}

// Import reads employee blocks starting at DataStartRow.
//
// A row whose column A holds a positive integer starts a new employee.
// Rows with an empty column A continue the current employee: their non-empty
// text day cells overwrite earlier values for the same day. Any other value in
// column A closes the current block and the row is skipped. Numeric day cells
// are hour figures of the sub-rows and are not attendance codes.
func (l Layout) Import(g *Grid) (attendance.Roster, error) {
	var roster attendance.Roster
	seen := make(map[int]int)
	current := -1

	for row := l.DataStartRow; row <= g.Rows(); row++ {
		numberCell := g.At(row, ColNumber)

		if numberCell.IsEmpty() {
			if current >= 0 {
				readDays(g, row, roster[current].Attendance)
			}
			continue
		}

		id, ok := employeeNumber(numberCell)
		if !ok {
			current = -1
			continue
		}

		if first, dup := seen[id]; dup {
			return nil, &FormatError{
				Row:    row,
				Reason: fmt.Sprintf("duplicate employee number %d (first at row %d)", id, first),
			}
		}
		seen[id] = row

		name, position := SplitName(g.At(row, ColName).String())
		emp := attendance.Employee{
			ID:         id,
			Name:       name,
			Position:   position,
			Attendance: attendance.Attendance{},
		}
		readDays(g, row, emp.Attendance)

		roster = append(roster, emp)
		current = len(roster) - 1
	}

	if len(roster) == 0 {
		return nil, &FormatError{
			Row:    l.DataStartRow,
			Reason: "no employee rows found",
			Err:    ErrNoEmployees,
		}
	}

	return roster, nil
}

func readDays(g *Grid, row int, att attendance.Attendance) {
	for day := 1; day <= MaxDays; day++ {
		cell := g.At(row, ColFirstDay+day-1)
		if cell.Kind != CellText {
			continue
		}
		if code := attendance.ParseCode(cell.Text); !code.IsEmpty() {
			att[day] = code
		}
	}
}

func employeeNumber(c Cell) (int, bool) {
	switch c.Kind {
	case CellNumber:
		if c.Number >= 1 && c.Number == math.Trunc(c.Number) && c.Number <= math.MaxInt32 {
			return int(c.Number), true
		}
	case CellText:
		if n, err := strconv.Atoi(strings.TrimSpace(c.Text)); err == nil && n > 0 {
			return n, true
		}
	}
	return 0, false
}

// SplitName splits "Name, position" at the first comma
func SplitName(text string) (name, position string) {
	name, position, _ = strings.Cut(text, ",")
	return strings.TrimSpace(name), strings.TrimSpace(position)
}

// JoinName is the inverse of SplitName
func JoinName(name, position string) string {
	if position == "" {
		return name
	}
	return name + ", " + position
}

// Export writes the header block, the period caption right above the data
// and one three-row block per employee. Summary columns are written only for
// employees that carry a Summary.
func (l Layout) Export(roster attendance.Roster, month, year int) *Grid {
	g := NewGrid()

	g.Set(1, ColNumber, Text("№ п/п"))
	g.Set(1, ColName, Text("Ф.И.О., звание, должность"))
	for day := 1; day <= MaxDays; day++ {
		g.Set(1, ColFirstDay+day-1, Number(float64(day)))
	}
	for i, header := range summaryHeaders {
		g.Set(1, ColSummary+i, Text(header))
	}
	g.Set(2, ColLabel, Text(LabelTime))
	g.Set(3, ColLabel, Text(LabelHours))
	g.Set(4, ColLabel, Text(LabelNight))

	row := max(l.DataStartRow, HeaderRows+1)
	if row > HeaderRows+1 {
		g.Set(row-1, ColName, Text(PeriodTitle(month, year)))
	}
	for _, emp := range roster {
		g.Set(row, ColNumber, Number(float64(emp.ID)))
		g.Set(row, ColName, Text(JoinName(emp.Name, emp.Position)))
		g.Set(row, ColLabel, Text(LabelTime))

		for _, day := range emp.Attendance.Days() {
			if day < 1 || day > MaxDays {
				continue
			}
			g.Set(row, ColFirstDay+day-1, Text(emp.Attendance[day].String()))
		}

		if s := emp.Summary; s != nil {
			for i, v := range []int{s.TotalWorkDays, s.TotalWeekends, s.OvertimeHours, s.TotalDayOffs} {
				g.Set(row, ColSummary+i, Number(float64(v)))
			}
		}

		g.Set(row+1, ColLabel, Text(LabelHours))
		g.Set(row+2, ColLabel, Text(LabelNight))
		row += 3
	}

	return g
}
