package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/workday-calendar/internal/calendar"
	"github.com/username/workday-calendar/internal/config"
	"github.com/username/workday-calendar/pkg/dateutil"
	"github.com/username/workday-calendar/pkg/format"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "workday-calendar",
		Short: "French working-day calendar",
		Long:  "Compute French public holidays and working-day arithmetic, with Teliway and ISO date conversions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(
		checkCmd(),
		nextCmd(),
		prevCmd(),
		nextHoursCmd(),
		prevHoursCmd(),
		easterCmd(),
		holidaysCmd(),
		convertCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <date>",
		Short: "Check whether a date is a working day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			date, err := format.ParseISODate(args[0])
			if err != nil {
				return err
			}

			cal, err := newCalendar(cfg, date.Year)
			if err != nil {
				return err
			}

			switch {
			case cal.IsHoliday(date):
				fmt.Printf("%s (%s) is a day off: holiday\n", formatDate(cfg, date), date.Weekday())
			case cal.IsDayOff(date):
				fmt.Printf("%s (%s) is a day off: weekend\n", formatDate(cfg, date), date.Weekday())
			default:
				fmt.Printf("%s (%s) is a working day\n", formatDate(cfg, date), date.Weekday())
			}
			return nil
		},
	}
}

// loadConfig loads and prepares the configuration for a command run.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()
	return cfg, nil
}

// newCalendar builds a Calendar for the given year using the configured
// weekend policy and extra closures.
func newCalendar(cfg *config.Config, year int) (*calendar.Calendar, error) {
	var closures []dateutil.Date
	if cfg.Calendar.ExtraClosuresFile != "" {
		var err error
		closures, err = calendar.LoadClosuresFile(cfg.Calendar.ExtraClosuresFile, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load extra closures: %w", err)
		}
	}

	cal, err := calendar.NewWithClosures(year, cfg.Calendar.SaturdayOff, cfg.Calendar.SundayOff, closures)
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar: %w", err)
	}

	logger.Debug("Calendar built",
		zap.Int("year", year),
		zap.Bool("saturday_off", cfg.Calendar.SaturdayOff),
		zap.Bool("sunday_off", cfg.Calendar.SundayOff),
		zap.Int("closures", len(closures)))

	return cal, nil
}

func formatDate(cfg *config.Config, date dateutil.Date) string {
	if cfg.Output.Format == "fr" {
		return format.LocaleDate(date)
	}
	return date.String()
}

func formatDateTime(cfg *config.Config, dt dateutil.DateTime) string {
	if cfg.Output.Format == "fr" {
		return format.LocaleDate(dt.Date) + " " + format.LocaleTime(dt)
	}
	return dt.String()
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

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
