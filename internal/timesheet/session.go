package timesheet

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/username/tabel/internal/attendance"
	"github.com/username/tabel/internal/calendar"
	"github.com/username/tabel/internal/sheet"
	"github.com/username/tabel/pkg/dateutil"
	"go.uber.org/zap"
)

// Advisory is a non-fatal notice for the caller. The zero value means none.
type Advisory string

const (
	AdvisoryNone            Advisory = ""
	AdvisoryEmptyRoster     Advisory = "Нет данных для расчета"
	AdvisoryNothingToExport Advisory = "Нет данных для экспорта"
	AdvisoryNotCalculated   Advisory = "Сначала выполните расчет"
)

// Session holds the roster being worked on and its reporting period.
// Uploading, editing or changing the period drops the calculated state.
type Session struct {
	id         string
	engine     *attendance.Engine
	layout     sheet.Layout
	logger     *zap.Logger
	roster     attendance.Roster
	month      int // zero-based
	year       int
	calculated bool
}

// NewSession creates an empty session for the current month
func NewSession(engine *attendance.Engine, layout sheet.Layout, logger *zap.Logger) *Session {
	id := uuid.New().String()
	today := dateutil.Today()

	return &Session{
		id:     id,
		engine: engine,
		layout: layout,
		logger: logger.With(zap.String("session_id", id)),
		month:  int(today.Month()) - 1,
		year:   today.Year(),
	}
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id
}

// Load replaces the roster with the one imported from the grid.
// On error the previous roster is kept.
func (s *Session) Load(g *sheet.Grid) error {
	roster, err := s.layout.Import(g)
	if err != nil {
		s.logger.Warn("Timesheet import failed", zap.Error(err))
		return fmt.Errorf("failed to import timesheet: %w", err)
	}

	s.roster = roster
	s.calculated = false

	s.logger.Info("Timesheet loaded", zap.Int("employees", len(roster)))
	return nil
}

// SetPeriod selects the reporting month (zero-based) and year
func (s *Session) SetPeriod(month, year int) error {
	if month < 0 || month > 11 {
		return fmt.Errorf("month must be between 1 and 12, got %d", month+1)
	}
	if year < 1 {
		return fmt.Errorf("year must be positive, got %d", year)
	}

	if month != s.month || year != s.year {
		s.calculated = false
	}
	s.month, s.year = month, year

	s.logger.Debug("Period selected",
		zap.String("period", sheet.PeriodTitle(month, year)))
	return nil
}

// Period returns the zero-based month and the year
func (s *Session) Period() (month, year int) {
	return s.month, s.year
}

// LastDay returns the number of days in the selected month
func (s *Session) LastDay() int {
	return calendar.LastDayOfMonth(s.year, s.month)
}

// Edit records raw text for an employee's day. Text may be a full code or a
// quick-entry key.
func (s *Session) Edit(employeeID, day int, raw string) error {
	text := raw
	if code, ok := attendance.FromShortcut(raw); ok {
		text = code.String()
	}

	roster, err := s.roster.WithCode(employeeID, day, text, s.LastDay())
	if err != nil {
		return err
	}

	s.roster = roster
	s.calculated = false

	s.logger.Debug("Attendance edited",
		zap.Int("employee_id", employeeID),
		zap.Int("day", day),
		zap.String("code", attendance.ParseCode(text).String()))
	return nil
}

// Calculate summarizes the roster for the selected period
func (s *Session) Calculate() Advisory {
	if len(s.roster) == 0 {
		return AdvisoryEmptyRoster
	}

	s.roster = s.engine.SummarizeRoster(s.roster, s.LastDay(), s.year, s.month)
	s.calculated = true

	totals := s.roster.Totals()
	s.logger.Info("Timesheet calculated",
		zap.String("period", sheet.PeriodTitle(s.month, s.year)),
		zap.Int("employees", totals.Employees),
		zap.Int("total_hours", totals.TotalHours),
		zap.Int("overtime_hours", totals.OvertimeHours))

	return AdvisoryNone
}

// Calculated reports whether summaries match the current roster and period
func (s *Session) Calculated() bool {
	return s.calculated
}

// Export renders the calculated roster. Nothing is produced before a
// calculation for the current roster and period.
func (s *Session) Export() (*sheet.Grid, Advisory) {
	if len(s.roster) == 0 {
		return nil, AdvisoryNothingToExport
	}
	if !s.calculated {
		return nil, AdvisoryNotCalculated
	}

	return s.layout.Export(s.roster, s.month, s.year), AdvisoryNone
}

// Roster returns a copy of the current roster
func (s *Session) Roster() attendance.Roster {
	out := make(attendance.Roster, len(s.roster))
	copy(out, s.roster)
	return out
}

// Totals aggregates the current roster
func (s *Session) Totals() attendance.Totals {
	return s.roster.Totals()
}
