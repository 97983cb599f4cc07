package report

import (
	"strings"
	"testing"

	"github.com/username/tabel/internal/attendance"
)

func testRoster() attendance.Roster {
	return attendance.Roster{
		{ID: 1, Name: "Жуков Г.К.", Position: "водитель"},
		{ID: 2, Name: "Ёлкин А.А.", Position: "Инженер"},
		{ID: 3, Name: "Егоров П.П.", Position: "бухгалтер"},
		{ID: 4, Name: "абрамов В.В.", Position: "инженер-механик"},
	}
}

func ids(roster attendance.Roster) []int {
	out := make([]int, len(roster))
	for i, emp := range roster {
		out[i] = emp.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty query keeps all", "  ", []int{1, 2, 3, 4}},
		{"position ignores case", "ИНЖЕНЕР", []int{2, 4}},
		{"name substring", "ков", []int{1}},
		{"no match", "директор", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(testRoster(), tt.query))
			if !equalIDs(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name  string
		field SortField
		desc  bool
		want  []int
	}{
		{"unsorted keeps order", SortNone, false, []int{1, 2, 3, 4}},
		// Ё sorts with Е, not before А as in code point order
		{"name ascending", SortName, false, []int{4, 3, 2, 1}},
		{"name descending", SortName, true, []int{1, 2, 3, 4}},
		{"position ascending", SortPosition, false, []int{3, 1, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roster := testRoster()
			got := ids(Sort(roster, tt.field, tt.desc))
			if !equalIDs(got, tt.want) {
				t.Errorf("Sort(%q, %v) = %v, want %v", tt.field, tt.desc, got, tt.want)
			}
			if !equalIDs(ids(roster), []int{1, 2, 3, 4}) {
				t.Error("Sort() reordered the input roster")
			}
		})
	}
}

func TestParseSortField(t *testing.T) {
	for _, s := range []string{"", "name", " Position "} {
		if _, err := ParseSortField(s); err != nil {
			t.Errorf("ParseSortField(%q) error = %v", s, err)
		}
	}
	if _, err := ParseSortField("salary"); err == nil {
		t.Error("ParseSortField(salary) should fail")
	}
}

func TestTable(t *testing.T) {
	roster := testRoster()[:2]
	roster[0].Summary = &attendance.Summary{TotalWorkDays: 21, TotalWeekends: 9, TotalHours: 168}

	out := Table(roster)

	for _, want := range []string{"Рабочие дни", "Жуков Г.К.", "водитель", "21", "168", "Ёлкин А.А."} {
		if !strings.Contains(out, want) {
			t.Errorf("Table() missing %q:\n%s", want, out)
		}
	}

	var dashRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Ёлкин") {
			dashRow = line
		}
	}
	if strings.Count(dashRow, " - ") != 7 {
		t.Errorf("row without summary should show 7 dashes: %q", dashRow)
	}
}

func TestTotals(t *testing.T) {
	out := Totals(attendance.Totals{
		Employees: 3,
		Summary:   attendance.Summary{TotalWorkDays: 40, OvertimeHours: 16},
	})

	for _, want := range []string{"Итого", "Сотрудников:       3", "Рабочих дней:      40", "Сверхурочных:      16"} {
		if !strings.Contains(out, want) {
			t.Errorf("Totals() missing %q:\n%s", want, out)
		}
	}
}
