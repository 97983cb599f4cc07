package payroll

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/username/tabel/internal/attendance"
)

// ErrNotSummarized is returned for employees without a computed summary
var ErrNotSummarized = errors.New("employee has no summary")

// Rates holds the pay rate escalation for one payroll run
type Rates struct {
	HourlyRate         decimal.Decimal
	OvertimeMultiplier decimal.Decimal
	WeekendMultiplier  decimal.Decimal
}

// DefaultRates returns hour weighting only (rate 0), 1.5x overtime, 2.0x weekends
func DefaultRates() Rates {
	return Rates{
		HourlyRate:         decimal.Zero,
		OvertimeMultiplier: decimal.NewFromFloat(1.5),
		WeekendMultiplier:  decimal.NewFromInt(2),
	}
}

// Line is one row of the payroll sheet
type Line struct {
	EmployeeID    int    `csv:"employee_id"`
	Name          string `csv:"name"`
	Position      string `csv:"position"`
	WorkDays      int    `csv:"work_days"`
	DayOffs       int    `csv:"day_offs"`
	RegularHours  int    `csv:"regular_hours"`
	OvertimeHours int    `csv:"overtime_hours"`
	WeekendHours  int    `csv:"weekend_hours"`
	WeightedHours string `csv:"weighted_hours"`
	Amount        string `csv:"amount"`
}

// Calculate builds payroll lines for a summarized roster
func Calculate(roster attendance.Roster, rates Rates) ([]Line, error) {
	lines := make([]Line, 0, len(roster))

	for _, emp := range roster {
		if emp.Summary == nil {
			return nil, fmt.Errorf("employee %d: %w", emp.ID, ErrNotSummarized)
		}
		s := emp.Summary

		regular := s.TotalHours - s.OvertimeHours - s.WeekendHours
		weighted := decimal.NewFromInt(int64(regular)).
			Add(decimal.NewFromInt(int64(s.OvertimeHours)).Mul(rates.OvertimeMultiplier)).
			Add(decimal.NewFromInt(int64(s.WeekendHours)).Mul(rates.WeekendMultiplier))
		amount := weighted.Mul(rates.HourlyRate).Round(2)

		lines = append(lines, Line{
			EmployeeID:    emp.ID,
			Name:          emp.Name,
			Position:      emp.Position,
			WorkDays:      s.TotalWorkDays,
			DayOffs:       s.TotalDayOffs,
			RegularHours:  regular,
			OvertimeHours: s.OvertimeHours,
			WeekendHours:  s.WeekendHours,
			WeightedHours: weighted.StringFixed(1),
			Amount:        amount.StringFixed(2),
		})
	}

	return lines, nil
}

// Sum returns the total amount over all lines
func Sum(lines []Line) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range lines {
		amount, err := decimal.NewFromString(line.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("employee %d: invalid amount %q: %w", line.EmployeeID, line.Amount, err)
		}
		total = total.Add(amount)
	}
	return total, nil
}

// Write renders the lines as CSV
func Write(w io.Writer, lines []Line) error {
	if err := gocsv.Marshal(&lines, w); err != nil {
		return fmt.Errorf("failed to write payroll csv: %w", err)
	}
	return nil
}

// WriteFile renders the lines into a CSV file
func WriteFile(path string, lines []Line) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create payroll file: %w", err)
	}
	defer file.Close()

	return Write(file, lines)
}
