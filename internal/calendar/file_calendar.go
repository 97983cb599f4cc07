package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/username/tabel/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar using a local list of exceptional days
// (holidays, transferred working days, shortened pre-holiday days).
// Days that are not listed are unknown to it.
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	days     map[string]DayInfo // key: "YYYY-MM-DD"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		days:     make(map[string]DayInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	if err := fc.Read(file); err != nil {
		return err
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(fc.days)))

	return nil
}

// Read parses calendar lines from r.
//
// Format: DATE TYPE WORKING_HOURS [NOTE], DATE is YYYY-MM-DD or DD.MM.YYYY.
// Example: 2025-01-01 holiday 0 Новогодние каникулы
func (fc *FileCalendar) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, " ", 4)
		if len(parts) < 3 {
			fc.logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		date, err := dateutil.ParseDate(parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		dayType, ok := parseDayType(parts[1])
		if !ok {
			fc.logger.Warn("Unknown day type", zap.String("type", parts[1]))
			continue
		}

		hours, err := strconv.Atoi(parts[2])
		if err != nil || hours < 0 {
			fc.logger.Warn("Failed to parse hours", zap.String("hours", parts[2]), zap.Error(err))
			continue
		}

		note := ""
		if len(parts) == 4 {
			note = parts[3]
		}

		fc.days[date.Format("2006-01-02")] = DayInfo{
			Date:         date,
			Type:         dayType,
			WorkingHours: hours,
			IsWorkday:    dayType == DayTypeWorkday || dayType == DayTypeShortened,
			Note:         note,
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}

	return nil
}

// GetDayInfo returns the listed info for a specific day
func (fc *FileCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	key := date.Format("2006-01-02")

	day, ok := fc.days[key]
	if !ok {
		return nil, fmt.Errorf("day not found in calendar: %s", key)
	}

	return &day, nil
}

// GetMonthInfo returns the listed days of the month
func (fc *FileCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	monthInfo := &MonthInfo{Year: year, Month: month}

	for day := 1; day <= dateutil.DaysInMonth(year, month); day++ {
		info, err := fc.GetDayInfo(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		if err != nil {
			continue
		}
		monthInfo.add(*info)
	}

	if len(monthInfo.Days) == 0 {
		return nil, fmt.Errorf("month not found in calendar: %d-%02d", year, month)
	}

	return monthInfo, nil
}

func parseDayType(s string) (DayType, bool) {
	for _, t := range []DayType{DayTypeWorkday, DayTypeWeekend, DayTypeHoliday, DayTypeShortened} {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}
