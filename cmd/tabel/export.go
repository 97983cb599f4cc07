package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/tabel/internal/payroll"
	"github.com/username/tabel/internal/sheet"
	"github.com/username/tabel/internal/timesheet"
	"github.com/username/tabel/internal/xlsx"
	"go.uber.org/zap"
)

func exportCmd() *cobra.Command {
	var period periodFlags
	var outDir string
	var withCSV bool

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Рассчитать табель и выгрузить его в Excel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(args[0], period)
			if err != nil {
				return err
			}

			if adv := session.Calculate(); adv != timesheet.AdvisoryNone {
				fmt.Fprintf(out, "⚠️  %s\n", adv)
				return nil
			}

			if outDir == "" {
				outDir = cfg.Output.Dir
			}
			path, err := saveTimesheet(session, filepath.Join(outDir, fileName(session)))
			if err != nil || path == "" {
				return err
			}

			if withCSV {
				csvPath := strings.TrimSuffix(path, filepath.Ext(path)) + "_расчет.csv"
				if err := writePayroll(session, csvPath); err != nil {
					return err
				}
			}

			return nil
		},
	}

	period.bind(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: output.dir from config)")
	cmd.Flags().BoolVar(&withCSV, "csv", false, "Also write the payroll CSV")

	return cmd
}

func markCmd() *cobra.Command {
	var period periodFlags
	var employeeID int
	var day int
	var code string
	var outPath string

	cmd := &cobra.Command{
		Use:   "mark FILE",
		Short: "Отметить день сотрудника и сохранить табель",
		Long:  "Record one attendance code (Я, В, ОВ, РВ or the quick keys Я, В, О, R) and write the recalculated timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if employeeID <= 0 {
				return fmt.Errorf("--employee is required")
			}

			session, err := openSession(args[0], period)
			if err != nil {
				return err
			}

			if err := session.Edit(employeeID, day, code); err != nil {
				return err
			}

			if adv := session.Calculate(); adv != timesheet.AdvisoryNone {
				fmt.Fprintf(out, "⚠️  %s\n", adv)
				return nil
			}

			if outPath == "" {
				outPath = filepath.Join(cfg.Output.Dir, fileName(session))
			}
			_, err = saveTimesheet(session, outPath)
			return err
		},
	}

	period.bind(cmd)
	cmd.Flags().IntVarP(&employeeID, "employee", "e", 0, "Employee number")
	cmd.Flags().IntVarP(&day, "day", "d", 0, "Day of month")
	cmd.Flags().StringVar(&code, "code", "", "Attendance code, empty clears the day")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: generated name in output.dir)")

	return cmd
}

func fileName(session *timesheet.Session) string {
	month, year := session.Period()
	return sheet.FileName(cfg.Sheet.FilePrefix, month, year)
}

// saveTimesheet writes the calculated session. An empty path means an
// advisory was printed instead.
func saveTimesheet(session *timesheet.Session, path string) (string, error) {
	grid, adv := session.Export()
	if adv != timesheet.AdvisoryNone {
		fmt.Fprintf(out, "⚠️  %s\n", adv)
		return "", nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := xlsx.SaveGrid(grid, cfg.Sheet.SheetName, path); err != nil {
		return "", err
	}

	totals := session.Totals()
	logger.Info("Timesheet exported",
		zap.String("file", path),
		zap.Int("employees", totals.Employees))

	fmt.Fprintf(out, "✅ Табель сохранен: %s (%d сотрудников)\n", path, totals.Employees)
	return path, nil
}

func writePayroll(session *timesheet.Session, path string) error {
	lines, err := payroll.Calculate(session.Roster(), cfg.Payroll.Rates())
	if err != nil {
		return err
	}
	if err := payroll.WriteFile(path, lines); err != nil {
		return err
	}

	total, err := payroll.Sum(lines)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ Расчет сохранен: %s", path)
	if total.IsPositive() {
		fmt.Fprintf(out, " (итого %s)", total.StringFixed(2))
	}
	fmt.Fprintln(out)
	return nil
}
