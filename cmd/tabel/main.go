package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/tabel/internal/attendance"
	"github.com/username/tabel/internal/calendar"
	"github.com/username/tabel/internal/config"
	"github.com/username/tabel/internal/report"
	"github.com/username/tabel/internal/sheet"
	"github.com/username/tabel/internal/timesheet"
	"github.com/username/tabel/internal/xlsx"
	"github.com/username/tabel/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	out        io.Writer = os.Stdout
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "tabel",
		Short:         "Табель учета рабочего времени",
		Long:          "Import an attendance timesheet, compute monthly summaries and export the filled form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				initLogger()
				return err
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ., $HOME/.tabel, /etc/tabel)")

	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(markCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// periodFlags binds --month (1..12) and --year, defaulting to the current month
type periodFlags struct {
	month int
	year  int
}

func (p *periodFlags) bind(cmd *cobra.Command) {
	today := dateutil.Today()
	cmd.Flags().IntVarP(&p.month, "month", "m", int(today.Month()), "Month number (1-12)")
	cmd.Flags().IntVarP(&p.year, "year", "y", today.Year(), "Year")
}

func summaryCmd() *cobra.Command {
	var period periodFlags
	var search string
	var sortBy string
	var desc bool

	cmd := &cobra.Command{
		Use:   "summary FILE",
		Short: "Рассчитать итоги табеля за месяц",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := report.ParseSortField(sortBy)
			if err != nil {
				return err
			}

			cal := initializeCalendar()
			session, err := openSessionWith(cal, args[0], period)
			if err != nil {
				return err
			}

			if adv := session.Calculate(); adv != timesheet.AdvisoryNone {
				fmt.Fprintf(out, "⚠️  %s\n", adv)
				return nil
			}

			roster := report.Sort(report.Filter(session.Roster(), search), field, desc)
			month, year := session.Period()

			fmt.Fprintf(out, "\n📊 Табель за %s\n", sheet.PeriodTitle(month, year))
			if monthInfo, err := cal.GetMonthInfo(year, time.Month(month+1)); err != nil {
				logger.Warn("Failed to get month info", zap.Error(err))
			} else {
				fmt.Fprintf(out, "   Норма: %d рабочих дней, %d ч, выходных и праздничных: %d\n",
					monthInfo.WorkDays, monthInfo.WorkingHours, monthInfo.Weekends+monthInfo.Holidays)
			}
			fmt.Fprintln(out, report.Table(roster))
			fmt.Fprintln(out)
			fmt.Fprint(out, report.Totals(roster.Totals()))
			return nil
		},
	}

	period.bind(cmd)
	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by name or position")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort by: name, position")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort in descending order")

	return cmd
}

// openSession imports the workbook into a session for the requested period
func openSession(path string, period periodFlags) (*timesheet.Session, error) {
	return openSessionWith(initializeCalendar(), path, period)
}

func openSessionWith(cal calendar.Calendar, path string, period periodFlags) (*timesheet.Session, error) {
	session := timesheet.NewSession(
		attendance.NewEngine(cal, logger),
		cfg.Sheet.Layout(),
		logger,
	)

	if err := session.SetPeriod(period.month-1, period.year); err != nil {
		return nil, err
	}

	grid, err := xlsx.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := session.Load(grid); err != nil {
		return nil, err
	}

	logger.Debug("Session opened",
		zap.String("session_id", session.ID()),
		zap.String("file", path))

	return session, nil
}

func initializeCalendar() calendar.Calendar {
	if cfg.Calendar.HolidaysFile == "" {
		return calendar.Gregorian{}
	}

	fileCal := calendar.NewFileCalendar(cfg.Calendar.HolidaysFile, logger)
	compositeCal := calendar.NewCompositeCalendar(fileCal, calendar.Gregorian{}, logger)

	if err := compositeCal.LoadPrimary(); err != nil {
		logger.Warn("Failed to load holidays file, using Saturday/Sunday weekends",
			zap.String("file", cfg.Calendar.HolidaysFile),
			zap.Error(err))
		return calendar.Gregorian{}
	}

	return compositeCal
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
