package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/workday-calendar/internal/calendar"
)

func easterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "easter <year>",
		Short: "Easter Sunday and the movable feasts for a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year '%s': %w", args[0], err)
			}

			easter, err := calendar.Easter(year)
			if err != nil {
				return err
			}
			easterMonday, err := calendar.EasterMonday(year)
			if err != nil {
				return err
			}
			ascension, err := calendar.Ascension(year)
			if err != nil {
				return err
			}
			whitMonday, err := calendar.WhitMonday(year)
			if err != nil {
				return err
			}

			fmt.Printf("Easter Sunday:  %s\n", formatDate(cfg, easter))
			fmt.Printf("Easter Monday:  %s\n", formatDate(cfg, easterMonday))
			fmt.Printf("Ascension:      %s\n", formatDate(cfg, ascension))
			fmt.Printf("Whit Monday:    %s\n", formatDate(cfg, whitMonday))
			return nil
		},
	}
}

func holidaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holidays <year>",
		Short: "List holidays and closures for a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year '%s': %w", args[0], err)
			}

			cal, err := newCalendar(cfg, year)
			if err != nil {
				return err
			}

			for _, date := range cal.Holidays() {
				fmt.Printf("%s (%s)\n", formatDate(cfg, date), date.Weekday())
			}
			return nil
		},
	}
}
