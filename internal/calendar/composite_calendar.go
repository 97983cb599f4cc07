package calendar

import (
	"fmt"
	"time"

	"github.com/username/tabel/pkg/dateutil"
	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy, day by day.
// Primary: FileCalendar (listed exceptions)
// Fallback: Gregorian (Saturday/Sunday weekends)
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// GetDayInfo returns detailed info for a specific day
func (cc *CompositeCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	// Try primary first
	dayInfo, err := cc.primary.GetDayInfo(date)
	if err == nil {
		return dayInfo, nil
	}

	cc.logger.Debug("Primary calendar has no entry, falling back",
		zap.Time("date", date),
		zap.Error(err))

	return cc.fallback.GetDayInfo(date)
}

// GetMonthInfo merges both calendars for every day of the month
func (cc *CompositeCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	days := dateutil.DaysInMonth(year, month)
	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, days),
	}

	for day := 1; day <= days; day++ {
		info, err := cc.GetDayInfo(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		if err != nil {
			return nil, fmt.Errorf("failed to classify %d-%02d-%02d: %w", year, month, day, err)
		}
		monthInfo.add(*info)
	}

	return monthInfo, nil
}

// LoadPrimary loads the primary calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadPrimary() error {
	if fc, ok := cc.primary.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load primary calendar: %w", err)
		}
		cc.logger.Info("Primary calendar loaded successfully")
	}
	return nil
}
