package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/username/tabel/internal/attendance"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField selects the column a roster is ordered by
type SortField string

const (
	SortNone     SortField = ""
	SortName     SortField = "name"
	SortPosition SortField = "position"
)

// ParseSortField validates a sort field name
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortNone, SortName, SortPosition:
		return f, nil
	}
	return SortNone, fmt.Errorf("unknown sort field %q (want name or position)", s)
}

// Filter keeps employees whose name or position contains the query,
// ignoring case. An empty query keeps everyone.
func Filter(roster attendance.Roster, query string) attendance.Roster {
	lower := cases.Lower(language.Russian)
	query = lower.String(strings.TrimSpace(query))

	out := make(attendance.Roster, 0, len(roster))
	for _, emp := range roster {
		if query == "" ||
			strings.Contains(lower.String(emp.Name), query) ||
			strings.Contains(lower.String(emp.Position), query) {
			out = append(out, emp)
		}
	}
	return out
}

// Sort returns a copy of the roster ordered with Russian collation.
// Equal keys keep their input order.
func Sort(roster attendance.Roster, field SortField, desc bool) attendance.Roster {
	out := make(attendance.Roster, len(roster))
	copy(out, roster)
	if field == SortNone {
		return out
	}

	key := func(emp attendance.Employee) string {
		if field == SortPosition {
			return emp.Position
		}
		return emp.Name
	}

	col := collate.New(language.Russian, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := col.CompareString(key(out[i]), key(out[j]))
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

var headers = []string{
	"№", "Ф.И.О.", "Должность", "Рабочие дни", "Выходные",
	"Раб. выходные", "Отгулы", "Часы", "Сверхурочные", "Часы в выходные",
}

// Table renders the roster as a bordered table. Employees without a summary
// show dashes in the counter columns.
func Table(roster attendance.Roster) string {
	rows := make([][]string, 0, len(roster))
	for _, emp := range roster {
		row := []string{strconv.Itoa(emp.ID), emp.Name, emp.Position}
		if s := emp.Summary; s != nil {
			row = append(row, counters(*s)...)
		} else {
			for range headers[3:] {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 || col >= 3:
				return numberStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}

func counters(s attendance.Summary) []string {
	return []string{
		strconv.Itoa(s.TotalWorkDays),
		strconv.Itoa(s.TotalWeekends),
		strconv.Itoa(s.TotalWorkedWeekends),
		strconv.Itoa(s.TotalDayOffs),
		strconv.Itoa(s.TotalHours),
		strconv.Itoa(s.OvertimeHours),
		strconv.Itoa(s.WeekendHours),
	}
}

// Totals renders the roster totals block
func Totals(t attendance.Totals) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Итого"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Сотрудников:       %d\n", t.Employees)
	fmt.Fprintf(&b, "  Рабочих дней:      %d\n", t.TotalWorkDays)
	fmt.Fprintf(&b, "  Выходных дней:     %d\n", t.TotalWeekends)
	fmt.Fprintf(&b, "  Раб. выходных:     %d\n", t.TotalWorkedWeekends)
	fmt.Fprintf(&b, "  Отгулов:           %d\n", t.TotalDayOffs)
	fmt.Fprintf(&b, "  Часов всего:       %d\n", t.TotalHours)
	fmt.Fprintf(&b, "  Сверхурочных:      %d\n", t.OvertimeHours)
	fmt.Fprintf(&b, "  Часов в выходные:  %d\n", t.WeekendHours)

	return b.String()
}
