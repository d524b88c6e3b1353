package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/workday-calendar/pkg/format"
	"go.uber.org/zap"
)

func nextCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "next <date>",
		Short: "Next working day after stepping N calendar days forward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDayTraversal(args[0], days, true)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 1, "Calendar days for the first step")

	return cmd
}

func prevCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prev <date>",
		Short: "Previous working day after stepping N calendar days backward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDayTraversal(args[0], days, false)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 1, "Calendar days for the first step")

	return cmd
}

func runDayTraversal(dateArg string, days int, forward bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	date, err := format.ParseISODate(dateArg)
	if err != nil {
		return err
	}

	cal, err := newCalendar(cfg, date.Year)
	if err != nil {
		return err
	}

	result := date
	if forward {
		result = cal.NextWorkingDay(date, days)
	} else {
		result = cal.PreviousWorkingDay(date, days)
	}

	logger.Info("Day traversal",
		zap.String("from", date.String()),
		zap.Int("days", days),
		zap.Bool("forward", forward),
		zap.String("result", result.String()))

	fmt.Println(formatDate(cfg, result))
	return nil
}

func nextHoursCmd() *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "next-hours <datetime>",
		Short: "Next working-day datetime after stepping N hours forward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHourTraversal(args[0], hours, true)
		},
	}

	cmd.Flags().IntVarP(&hours, "hours", "H", 24, "Hours for the first step")

	return cmd
}

func prevHoursCmd() *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "prev-hours <datetime>",
		Short: "Previous working-day datetime after stepping N hours backward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHourTraversal(args[0], hours, false)
		},
	}

	cmd.Flags().IntVarP(&hours, "hours", "H", 24, "Hours for the first step")

	return cmd
}

func runHourTraversal(datetimeArg string, hours int, forward bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dt, err := format.ParseISODateTime(datetimeArg)
	if err != nil {
		return err
	}

	cal, err := newCalendar(cfg, dt.Date.Year)
	if err != nil {
		return err
	}

	result := dt
	if forward {
		result = cal.NextWorkingDayHours(dt, hours)
	} else {
		result = cal.PreviousWorkingDayHours(dt, hours)
	}

	logger.Info("Hour traversal",
		zap.String("from", dt.String()),
		zap.Int("hours", hours),
		zap.Bool("forward", forward),
		zap.String("result", result.String()))

	fmt.Println(formatDateTime(cfg, result))
	return nil
}
