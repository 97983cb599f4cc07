package calendar

import (
	"time"

	"github.com/username/tabel/pkg/dateutil"
)

// StandardShiftHours is the length of a regular working day
const StandardShiftHours = 8

// IsWeekend reports whether the day is a Saturday or Sunday.
// month is zero-based: 0 is January, 11 is December.
func IsWeekend(year, month, day int) bool {
	return dateutil.IsWeekend(Date(year, month, day))
}

// LastDayOfMonth returns the number of days in the month (zero-based month).
func LastDayOfMonth(year, month int) int {
	return dateutil.DaysInMonth(year, time.Month(month+1))
}

// Date builds the UTC date for a zero-based month
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
}

// Gregorian implements Calendar with plain Saturday/Sunday weekends and
// standard-length shifts on every other day.
type Gregorian struct{}

// GetDayInfo returns detailed info for a specific day
func (Gregorian) GetDayInfo(date time.Time) (*DayInfo, error) {
	date = dateutil.StartOfDay(date)

	if dateutil.IsWeekend(date) {
		return &DayInfo{Date: date, Type: DayTypeWeekend}, nil
	}

	return &DayInfo{
		Date:         date,
		Type:         DayTypeWorkday,
		WorkingHours: StandardShiftHours,
		IsWorkday:    true,
	}, nil
}

// GetMonthInfo returns calendar info for the entire month
func (g Gregorian) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	days := dateutil.DaysInMonth(year, month)
	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, days),
	}

	for day := 1; day <= days; day++ {
		info, _ := g.GetDayInfo(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		monthInfo.add(*info)
	}

	return monthInfo, nil
}
