package calendar

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"January", 2025, 0, 31},
		{"February leap year", 2024, 1, 29},
		{"February common year", 2023, 1, 28},
		{"April", 2025, 3, 30},
		{"December", 2025, 11, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastDayOfMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("LastDayOfMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		want  bool
	}{
		{"Saturday", 2025, 0, 4, true},
		{"Sunday", 2025, 0, 5, true},
		{"Monday", 2025, 0, 6, false},
		{"Leap day 2024 is Thursday", 2024, 1, 29, false},
		{"1 June 2024 is Saturday", 2024, 5, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWeekend(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("IsWeekend(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestGregorian_GetMonthInfo(t *testing.T) {
	// June 2024: 30 days, starts on Saturday, 10 weekend days
	monthInfo, err := Gregorian{}.GetMonthInfo(2024, time.June)
	if err != nil {
		t.Fatalf("GetMonthInfo() error = %v", err)
	}

	if len(monthInfo.Days) != 30 {
		t.Errorf("Days count = %d, want 30", len(monthInfo.Days))
	}
	if monthInfo.Weekends != 10 {
		t.Errorf("Weekends = %d, want 10", monthInfo.Weekends)
	}
	if monthInfo.WorkDays != 20 {
		t.Errorf("WorkDays = %d, want 20", monthInfo.WorkDays)
	}
	if monthInfo.WorkingHours != 160 {
		t.Errorf("WorkingHours = %d, want 160", monthInfo.WorkingHours)
	}
}

const testCalendarFile = `# exceptions
2025-01-01 holiday 0 Новогодние каникулы
2025-01-02 holiday 0
2025-11-01 workday 7 Перенос рабочего дня
2025-11-03 shortened 7
broken line
2025-13-01 holiday 0
2025-11-04 festival 0
`

func TestFileCalendar_Read(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	cal := NewFileCalendar("", logger)

	if err := cal.Read(strings.NewReader(testCalendarFile)); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(cal.days) != 4 {
		t.Fatalf("loaded %d days, want 4", len(cal.days))
	}

	day, err := cal.GetDayInfo(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetDayInfo() error = %v", err)
	}
	if day.Type != DayTypeHoliday || day.IsWorkday {
		t.Errorf("Jan 1 = %v (workday %v), want holiday", day.Type, day.IsWorkday)
	}
	if day.Note != "Новогодние каникулы" {
		t.Errorf("Jan 1 note = %q", day.Note)
	}

	saturday, err := cal.GetDayInfo(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetDayInfo() error = %v", err)
	}
	if !saturday.IsWorkday || saturday.WorkingHours != 7 {
		t.Errorf("Nov 1 = %+v, want transferred working day", saturday)
	}

	if _, err := cal.GetDayInfo(time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("GetDayInfo() for unlisted day should fail")
	}

	if _, err := cal.GetMonthInfo(2025, time.March); err == nil {
		t.Error("GetMonthInfo() for unlisted month should fail")
	}
}

func TestCompositeCalendar_GetMonthInfo(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	file := NewFileCalendar("", logger)
	if err := file.Read(strings.NewReader(testCalendarFile)); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	cal := NewCompositeCalendar(file, Gregorian{}, logger)

	// November 2025: 30 days, 10 Saturday/Sunday; Nov 1 (Sat) is worked
	monthInfo, err := cal.GetMonthInfo(2025, time.November)
	if err != nil {
		t.Fatalf("GetMonthInfo() error = %v", err)
	}

	if len(monthInfo.Days) != 30 {
		t.Errorf("Days count = %d, want 30", len(monthInfo.Days))
	}
	if monthInfo.Weekends != 9 {
		t.Errorf("Weekends = %d, want 9", monthInfo.Weekends)
	}
	if monthInfo.WorkDays != 21 {
		t.Errorf("WorkDays = %d, want 21", monthInfo.WorkDays)
	}
	// 19 regular days * 8 + Nov 1 (7) + Nov 3 (7)
	if monthInfo.WorkingHours != 166 {
		t.Errorf("WorkingHours = %d, want 166", monthInfo.WorkingHours)
	}

	// January 2025: two listed holidays on Wed/Thu
	january, err := cal.GetMonthInfo(2025, time.January)
	if err != nil {
		t.Fatalf("GetMonthInfo() error = %v", err)
	}
	if january.Holidays != 2 {
		t.Errorf("Holidays = %d, want 2", january.Holidays)
	}
}
