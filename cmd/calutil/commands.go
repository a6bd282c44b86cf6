package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/calendar-utils/internal/holidays"
	"github.com/username/calendar-utils/pkg/dateutil"
	"github.com/username/calendar-utils/pkg/schedule"
)

func infoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <date>",
		Short: "Show day name, week, quarter and timestamp for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse date: %w", err)
			}

			fmt.Printf("\n📅 %s\n", dateutil.FormatDateTime(date))
			fmt.Println("═══════════════════════════════════════")
			fmt.Printf("  Day:           %s\n", dateutil.DayName(date))
			fmt.Printf("  Week:          %d\n", dateutil.WeekNumber(date))
			fmt.Printf("  Quarter:       Q%d\n", dateutil.Quarter(date))
			fmt.Printf("  Leap year:     %t\n", dateutil.IsLeapYear(date))
			fmt.Printf("  Time of day:   %s\n", dateutil.TimeOfDay(date))
			fmt.Printf("  Days in month: %d\n", dateutil.DaysInMonth(int(date.Month()), date.Year()))
			fmt.Printf("  Timestamp:     %d ms\n", dateutil.ToTimestamp(date))

			return nil
		},
	}

	return cmd
}

func timestampCmd() *cobra.Command {
	var fromMillis bool

	cmd := &cobra.Command{
		Use:   "timestamp <date>",
		Short: "Convert a date to Unix milliseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromMillis {
				ms, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("failed to parse milliseconds: %w", err)
				}

				fmt.Println(dateutil.FormatDateTime(dateutil.FromTimestamp(ms)))
				return nil
			}

			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse date: %w", err)
			}

			fmt.Println(dateutil.ToTimestamp(date))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromMillis, "from-millis", false, "Treat the argument as Unix milliseconds and print the date")

	return cmd
}

func nextFridayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next-friday [date]",
		Short: "Find the next Friday strictly after a date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := dateutil.Today()
			if len(args) == 1 {
				var err error
				date, err = dateutil.ParseDate(args[0])
				if err != nil {
					return fmt.Errorf("failed to parse date: %w", err)
				}
			}

			fmt.Println(dateutil.FormatDateTime(dateutil.NextFriday(date)))
			return nil
		},
	}

	return cmd
}

func friday13thCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friday-13th [date]",
		Short: "Find the first Friday the 13th on or after a date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := dateutil.Today()
			if len(args) == 1 {
				var err error
				date, err = dateutil.ParseDate(args[0])
				if err != nil {
					return fmt.Errorf("failed to parse date: %w", err)
				}
			}

			found, ok := dateutil.NextFridayThe13th(date)
			if !ok {
				return fmt.Errorf("no Friday the 13th within a year of %s", date.Format(schedule.DateLayout))
			}

			fmt.Println(found.Format(schedule.DateLayout))
			return nil
		},
	}

	return cmd
}

func monthCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "month <year> <month>",
		Short: "Show workday/weekend/holiday summary for a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse year: %w", err)
			}

			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse month: %w", err)
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month must be between 1 and 12, got %d", month)
			}

			cfg := loadConfigOrDefault()
			if source != "" {
				cfg.Holidays.Source = source
			}

			cal, err := buildCalendar(cfg)
			if err != nil {
				return err
			}

			info, err := cal.GetMonthInfo(year, time.Month(month))
			if err != nil {
				return fmt.Errorf("failed to get month info: %w", err)
			}

			fmt.Printf("\n📋 %s %d:\n", info.Month, info.Year)
			fmt.Println("═══════════════════════════════════════")
			fmt.Printf("  Days:      %d\n", len(info.Days))
			fmt.Printf("  Workdays:  %d\n", info.WorkDays)
			fmt.Printf("  Weekends:  %d\n", info.Weekends)
			fmt.Printf("  Holidays:  %d\n", info.Holidays)

			for _, day := range info.Days {
				if day.Kind == holidays.DayHoliday {
					fmt.Printf("    • %s  %s\n", day.Date.Format(schedule.DateLayout), day.Name)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Override holidays source (weekends, file, us-federal)")

	return cmd
}

func periodCmd() *cobra.Command {
	var containsStr string

	cmd := &cobra.Command{
		Use:   "period <start> <end>",
		Short: "Count days in an inclusive period",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := dateutil.ParsePeriod(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("📋 %s to %s: %d days\n",
				period.Start.Format(schedule.DateLayout),
				period.End.Format(schedule.DateLayout),
				dateutil.DaysInPeriod(period))

			if containsStr != "" {
				date, err := dateutil.ParseDate(containsStr)
				if err != nil {
					return fmt.Errorf("failed to parse date: %w", err)
				}

				if dateutil.InPeriod(date, period) {
					fmt.Printf("  ✅ %s is inside the period\n", date.Format(schedule.DateLayout))
				} else {
					fmt.Printf("  ❌ %s is outside the period\n", date.Format(schedule.DateLayout))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&containsStr, "contains", "", "Also check whether this date falls inside the period")

	return cmd
}

func scheduleCmd() *cobra.Command {
	var (
		startStr string
		endStr   string
		workDays int
		offDays  int
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List work dates for a rotating work/off pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := dateutil.ParsePeriod(startStr, endStr)
			if err != nil {
				return err
			}

			pattern := schedule.Pattern{WorkDays: workDays, OffDays: offDays}
			if err := pattern.Validate(); err != nil {
				return err
			}

			dates := schedule.Strings(period, pattern)

			fmt.Printf("\n📋 Work schedule %d/%d (%s to %s):\n",
				pattern.WorkDays, pattern.OffDays,
				period.Start.Format(schedule.DateLayout),
				period.End.Format(schedule.DateLayout))
			fmt.Println("═══════════════════════════════════════")
			for _, d := range dates {
				fmt.Printf("  %s\n", d)
			}
			fmt.Printf("\n✅ %d work dates\n", len(dates))

			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "Period start date (required)")
	cmd.Flags().StringVar(&endStr, "end", "", "Period end date (required)")
	cmd.Flags().IntVar(&workDays, "work", 1, "Consecutive work days in the cycle")
	cmd.Flags().IntVar(&offDays, "off", 3, "Consecutive off days in the cycle")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func workdaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workdays <start> <end>",
		Short: "Count business days in a period via the configured calendar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := dateutil.ParsePeriod(args[0], args[1])
			if err != nil {
				return err
			}

			cfg := loadConfigOrDefault()
			cal, err := buildCalendar(cfg)
			if err != nil {
				return err
			}

			count, err := holidays.WorkdaysInPeriod(cal, period)
			if err != nil {
				return fmt.Errorf("failed to count workdays: %w", err)
			}

			fmt.Printf("✅ %d workdays between %s and %s\n",
				count,
				period.Start.Format(schedule.DateLayout),
				period.End.Format(schedule.DateLayout))

			return nil
		},
	}

	return cmd
}
