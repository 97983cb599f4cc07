package attendance

import (
	"github.com/username/tabel/internal/calendar"
	"go.uber.org/zap"
)

// Engine computes monthly summaries against a calendar
type Engine struct {
	cal    calendar.Calendar
	logger *zap.Logger
}

// NewEngine creates a new summarization engine
func NewEngine(cal calendar.Calendar, logger *zap.Logger) *Engine {
	return &Engine{
		cal:    cal,
		logger: logger,
	}
}

var defaultEngine = NewEngine(calendar.Gregorian{}, zap.NewNop())

// Summarize computes the summary using Saturday/Sunday weekends
func Summarize(att Attendance, lastDay, year, month int) Summary {
	return defaultEngine.Summarize(att, lastDay, year, month)
}

// SummarizeRoster summarizes every employee using Saturday/Sunday weekends
func SummarizeRoster(roster Roster, lastDay, year, month int) Roster {
	return defaultEngine.SummarizeRoster(roster, lastDay, year, month)
}

// Summarize walks days 1..lastDay of the zero-based month and aggregates the
// recorded codes. Entries outside that range are ignored.
func (e *Engine) Summarize(att Attendance, lastDay, year, month int) Summary {
	var s Summary

	for day := 1; day <= lastDay; day++ {
		dayIsWeekend := e.isNonWorking(year, month, day)
		if dayIsWeekend {
			s.TotalWeekends++
		}

		switch att[day].Kind() {
		case KindWork:
			s.TotalWorkDays++
			s.TotalHours += calendar.StandardShiftHours
		case KindCompRest:
			s.TotalDayOffs++
		case KindWorkedWeekend:
			s.TotalHours += calendar.StandardShiftHours
			if dayIsWeekend {
				s.TotalWorkedWeekends++
				s.WeekendHours += calendar.StandardShiftHours
			} else {
				s.OvertimeHours += calendar.StandardShiftHours
			}
		case KindWeekend, KindNone, KindUnrecognized:
			// only the calendar tally applies
		}
	}

	return s
}

// SummarizeRoster returns a new roster with summaries attached.
// Input employees are left untouched.
func (e *Engine) SummarizeRoster(roster Roster, lastDay, year, month int) Roster {
	out := make(Roster, len(roster))

	for i, emp := range roster {
		summary := e.Summarize(emp.Attendance, lastDay, year, month)
		emp.Attendance = emp.Attendance.Clone()
		emp.Summary = &summary
		out[i] = emp
	}

	e.logger.Debug("Roster summarized",
		zap.Int("employees", len(out)),
		zap.Int("year", year),
		zap.Int("month", month+1),
		zap.Int("last_day", lastDay))

	return out
}

func (e *Engine) isNonWorking(year, month, day int) bool {
	info, err := e.cal.GetDayInfo(calendar.Date(year, month, day))
	if err != nil {
		e.logger.Warn("Calendar lookup failed, using Saturday/Sunday rule",
			zap.Int("year", year),
			zap.Int("month", month+1),
			zap.Int("day", day),
			zap.Error(err))
		return calendar.IsWeekend(year, month, day)
	}
	return !info.IsWorkday
}
