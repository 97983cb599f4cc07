package payroll

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/username/tabel/internal/attendance"
)

func testRoster() attendance.Roster {
	return attendance.Roster{
		{
			ID: 1, Name: "Иванов", Position: "инженер",
			Summary: &attendance.Summary{
				TotalWorkDays: 20, TotalDayOffs: 1, TotalHours: 184,
				OvertimeHours: 8, WeekendHours: 16, TotalWorkedWeekends: 2,
			},
		},
		{
			ID: 2, Name: "Петрова",
			Summary: &attendance.Summary{TotalWorkDays: 10, TotalHours: 80},
		},
	}
}

func TestCalculate(t *testing.T) {
	rates := DefaultRates()
	rates.HourlyRate = decimal.RequireFromString("250.50")

	lines, err := Calculate(testRoster(), rates)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	tests := []struct {
		name         string
		line         Line
		wantRegular  int
		wantWeighted string
		wantAmount   string
	}{
		// 160 + 8*1.5 + 16*2 = 204
		{"escalated hours", lines[0], 160, "204.0", "51102.00"},
		{"regular hours only", lines[1], 80, "80.0", "20040.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.line.RegularHours != tt.wantRegular {
				t.Errorf("RegularHours = %d, want %d", tt.line.RegularHours, tt.wantRegular)
			}
			if tt.line.WeightedHours != tt.wantWeighted {
				t.Errorf("WeightedHours = %s, want %s", tt.line.WeightedHours, tt.wantWeighted)
			}
			if tt.line.Amount != tt.wantAmount {
				t.Errorf("Amount = %s, want %s", tt.line.Amount, tt.wantAmount)
			}
		})
	}

	total, err := Sum(lines)
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	if !total.Equal(decimal.RequireFromString("71142")) {
		t.Errorf("Sum() = %s, want 71142", total)
	}
}

func TestCalculate_DefaultRatesHaveZeroAmount(t *testing.T) {
	lines, err := Calculate(testRoster(), DefaultRates())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if lines[0].Amount != "0.00" || lines[0].WeightedHours != "204.0" {
		t.Errorf("line = %+v", lines[0])
	}
}

func TestCalculate_NotSummarized(t *testing.T) {
	roster := append(testRoster(), attendance.Employee{ID: 3, Name: "Без расчета"})

	lines, err := Calculate(roster, DefaultRates())
	if !errors.Is(err, ErrNotSummarized) {
		t.Errorf("Calculate() error = %v, want ErrNotSummarized", err)
	}
	if lines != nil {
		t.Errorf("Calculate() returned lines on error: %+v", lines)
	}
}

func TestWrite(t *testing.T) {
	lines, err := Calculate(testRoster()[:1], DefaultRates())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, lines); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "employee_id,name,position,work_days,day_offs,regular_hours,overtime_hours,weekend_hours,weighted_hours,amount\n" +
		"1,Иванов,инженер,20,1,160,8,16,204.0,0.00\n"
	if buf.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", buf.String(), want)
	}

	path := filepath.Join(t.TempDir(), "payroll.csv")
	if err := WriteFile(path, lines); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "employee_id,") {
		t.Errorf("payroll file starts with %q", string(data))
	}
}
