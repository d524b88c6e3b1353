package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/workday-calendar/pkg/format"
)

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between ISO and legacy Teliway date formats",
	}

	cmd.AddCommand(fromLegacyCmd(), toLegacyCmd())

	return cmd
}

func fromLegacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-legacy <YYYYMMDD> <HHMMSS>",
		Short: "Convert legacy Teliway digits to ISO date and time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			isoDate, isoTime, err := format.LegacyToISO(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", isoDate, isoTime)
			return nil
		},
	}
}

func toLegacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-legacy <date-or-datetime>",
		Short: "Convert an ISO date or datetime to legacy Teliway digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Datetime input also yields the legacy hour
			if dt, err := format.ParseISODateTime(args[0]); err == nil {
				fmt.Printf("%s %s\n", format.ToLegacyDate(dt.Date), format.ToLegacyHour(dt))
				return nil
			}

			date, err := format.ParseISODate(args[0])
			if err != nil {
				return err
			}

			fmt.Println(format.ToLegacyDate(date))
			return nil
		},
	}
}
