package attendance

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownEmployee is returned when an edit targets a missing employee
	ErrUnknownEmployee = errors.New("unknown employee")
	// ErrDayOutOfRange is returned when an edit targets a day outside the month
	ErrDayOutOfRange = errors.New("day out of range")
)

// Attendance maps day of month (1..31) to the code recorded for it.
// Absent days have no entry.
type Attendance map[int]Code

// Days returns the recorded days in ascending order
func (a Attendance) Days() []int {
	days := make([]int, 0, len(a))
	for day := range a {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Clone returns an independent copy
func (a Attendance) Clone() Attendance {
	clone := make(Attendance, len(a))
	for day, code := range a {
		clone[day] = code
	}
	return clone
}

// Set stores the code for the day, an empty code removes the entry
func (a Attendance) Set(day int, code Code) {
	if code.IsEmpty() {
		delete(a, day)
		return
	}
	a[day] = code
}

// Summary holds aggregate counters for one employee and one month
type Summary struct {
	TotalWorkDays       int
	TotalWeekends       int
	TotalWorkedWeekends int
	TotalDayOffs        int
	TotalHours          int
	OvertimeHours       int
	WeekendHours        int
}

func (s *Summary) add(other Summary) {
	s.TotalWorkDays += other.TotalWorkDays
	s.TotalWeekends += other.TotalWeekends
	s.TotalWorkedWeekends += other.TotalWorkedWeekends
	s.TotalDayOffs += other.TotalDayOffs
	s.TotalHours += other.TotalHours
	s.OvertimeHours += other.OvertimeHours
	s.WeekendHours += other.WeekendHours
}

// Employee is one roster entry.
// Summary is nil until computed and is not invalidated by attendance edits.
type Employee struct {
	ID         int
	Name       string
	Position   string
	Attendance Attendance
	Summary    *Summary
}

// Roster is an ordered list of employees
type Roster []Employee

// Index returns the position of the employee with the given ID
func (r Roster) Index(id int) (int, bool) {
	for i, emp := range r {
		if emp.ID == id {
			return i, true
		}
	}
	return -1, false
}

// WithCode returns a copy of the roster where the employee's day holds the
// code parsed from raw. Empty raw clears the day.
func (r Roster) WithCode(id, day int, raw string, lastDay int) (Roster, error) {
	if day < 1 || day > lastDay {
		return nil, fmt.Errorf("day %d not in 1..%d: %w", day, lastDay, ErrDayOutOfRange)
	}

	i, ok := r.Index(id)
	if !ok {
		return nil, fmt.Errorf("employee %d: %w", id, ErrUnknownEmployee)
	}

	out := make(Roster, len(r))
	copy(out, r)

	emp := out[i]
	emp.Attendance = emp.Attendance.Clone()
	emp.Attendance.Set(day, ParseCode(raw))
	out[i] = emp

	return out, nil
}

// Totals aggregates counters over the roster
type Totals struct {
	Employees  int
	Summarized int
	Summary
}

// Totals sums the summaries of all employees that carry one
func (r Roster) Totals() Totals {
	totals := Totals{Employees: len(r)}
	for _, emp := range r {
		if emp.Summary == nil {
			continue
		}
		totals.Summarized++
		totals.add(*emp.Summary)
	}
	return totals
}
