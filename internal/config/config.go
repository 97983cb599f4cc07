package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/username/tabel/internal/payroll"
	"github.com/username/tabel/internal/sheet"
	"github.com/username/tabel/internal/xlsx"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// Config represents application configuration
type Config struct {
	Sheet    SheetConfig    `mapstructure:"sheet"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Payroll  PayrollConfig  `mapstructure:"payroll"`
	Log      LogConfig      `mapstructure:"log"`
	Output   OutputConfig   `mapstructure:"output"`
}

// SheetConfig represents the timesheet form layout
type SheetConfig struct {
	DataStartRow int    `mapstructure:"data_start_row"`
	SheetName    string `mapstructure:"sheet_name"`
	FilePrefix   string `mapstructure:"file_prefix"`
}

// CalendarConfig represents calendar configuration
type CalendarConfig struct {
	HolidaysFile string `mapstructure:"holidays_file"` // Optional list of holidays and transferred days
}

// PayrollConfig represents pay rate escalation
type PayrollConfig struct {
	HourlyRate         string  `mapstructure:"hourly_rate"`
	OvertimeMultiplier float64 `mapstructure:"overtime_multiplier"`
	WeekendMultiplier  float64 `mapstructure:"weekend_multiplier"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// OutputConfig represents where exported files go
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load loads configuration from file. Without an explicit path a missing
// config file is not an error and defaults are used.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.tabel")
		v.AddConfigPath("/etc/tabel")
	}

	// Read environment variables, e.g. TABEL_PAYROLL_HOURLY_RATE
	v.SetEnvPrefix("tabel")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sheet.data_start_row", sheet.DefaultDataStartRow)
	v.SetDefault("sheet.sheet_name", xlsx.DefaultSheetName)
	v.SetDefault("sheet.file_prefix", "Учет_рабочего_времени")
	v.SetDefault("calendar.holidays_file", "")
	v.SetDefault("payroll.hourly_rate", "0")
	v.SetDefault("payroll.overtime_multiplier", 1.5)
	v.SetDefault("payroll.weekend_multiplier", 2.0)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("output.dir", ".")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Sheet.DataStartRow <= sheet.HeaderRows {
		return fmt.Errorf("sheet.data_start_row must be greater than %d", sheet.HeaderRows)
	}
	if c.Sheet.SheetName == "" {
		return fmt.Errorf("sheet.sheet_name is required")
	}
	if c.Sheet.FilePrefix == "" {
		return fmt.Errorf("sheet.file_prefix is required")
	}

	rate, err := decimal.NewFromString(c.Payroll.HourlyRate)
	if err != nil {
		return fmt.Errorf("payroll.hourly_rate must be a decimal number: %w", err)
	}
	if rate.IsNegative() {
		return fmt.Errorf("payroll.hourly_rate must not be negative")
	}
	if c.Payroll.OvertimeMultiplier < 1 {
		return fmt.Errorf("payroll.overtime_multiplier must be at least 1")
	}
	if c.Payroll.WeekendMultiplier < 1 {
		return fmt.Errorf("payroll.weekend_multiplier must be at least 1")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

// Layout returns the sheet layout
func (c *SheetConfig) Layout() sheet.Layout {
	return sheet.Layout{DataStartRow: c.DataStartRow}
}

// Rates returns payroll rates. Validate must have passed.
func (c *PayrollConfig) Rates() payroll.Rates {
	return payroll.Rates{
		HourlyRate:         decimal.RequireFromString(c.HourlyRate),
		OvertimeMultiplier: decimal.NewFromFloat(c.OvertimeMultiplier),
		WeekendMultiplier:  decimal.NewFromFloat(c.WeekendMultiplier),
	}
}

// ExpandEnvVars expands environment variables in path settings
func (c *Config) ExpandEnvVars() {
	c.Calendar.HolidaysFile = os.ExpandEnv(c.Calendar.HolidaysFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
	c.Output.Dir = os.ExpandEnv(c.Output.Dir)
}
