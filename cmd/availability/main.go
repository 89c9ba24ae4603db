package main

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/services/core/availability"
	centersAPI "dialysis-portal-service/internal/app/services/dialysis_api/centers"
	"dialysis-portal-service/internal/app/services/dialysis_api/httpclient"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/locale"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	centerID  int
	date      string
	time      string
	baseURL   string
	token     string
	file      string
	timezone  string
	horizon   int
	inactive  bool
	verbose   bool
	timeout   time.Duration
	internals *config.InternalConfig
}

func main() {
	opts := &options{internals: config.NewInternalConfig()}

	rootCmd := &cobra.Command{
		Use:          "availability",
		Short:        "Inspect the bookable dates and times of a dialysis center",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&opts.centerID, "center", 0, "center id")
	flags.StringVar(&opts.baseURL, "base-url", opts.internals.DialysisAPI.BaseUrl, "dialysis API base URL")
	flags.StringVar(&opts.token, "token", os.Getenv("DIALYSIS_API_TOKEN"), "dialysis API bearer token")
	flags.StringVar(&opts.file, "file", "", "read centers from a JSON file instead of the API")
	flags.StringVar(&opts.timezone, "timezone", opts.internals.App.Timezone, "IANA time zone of the centers")
	flags.IntVar(&opts.horizon, "horizon", opts.internals.Booking.HorizonDays, "days ahead to enumerate")
	flags.BoolVar(&opts.inactive, "include-inactive", opts.internals.Booking.IncludeInactiveSchedules, "treat inactive schedules as bookable")
	flags.BoolVar(&opts.verbose, "verbose", false, "log upstream calls to stderr")
	flags.DurationVar(&opts.timeout, "timeout", 15*time.Second, "overall timeout")

	rootCmd.AddCommand(datesCmd(opts))
	rootCmd.AddCommand(timesCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func datesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "List the selectable dates of a center",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, set, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			return printDates(cmd.OutOrStdout(), service.ListSelectableDates(set))
		},
	}
}

func timesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "times",
		Short: "List the slots of a center on one date",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, set, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			if window, ok := service.WindowFor(set, opts.date); ok {
				described := service.DescribeWindow(window)
				fmt.Fprintf(cmd.OutOrStdout(), "window %s - %s\n", described.StartLabel, described.EndLabel)
			}
			return printTimes(cmd.OutOrStdout(), service.ListSelectableTimes(set, opts.date, opts.time))
		},
	}
	cmd.Flags().StringVar(&opts.date, "date", "", "date key yyyy-MM-dd")
	cmd.Flags().StringVar(&opts.time, "time", "", "stored appointment time to highlight")
	cmd.MarkFlagRequired("date")
	return cmd
}

func (o *options) load(parent context.Context) (*availability.Service, availability.ScheduleSet, error) {
	if o.centerID <= 0 {
		return nil, availability.ScheduleSet{}, fmt.Errorf("--center is required")
	}
	location, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, availability.ScheduleSet{}, fmt.Errorf("load timezone %q: %w", o.timezone, err)
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, o.timeout)
	defer cancel()

	centers, err := o.fetchCenters(ctx)
	if err != nil {
		return nil, availability.ScheduleSet{}, err
	}

	for _, center := range centers {
		if center.ID != o.centerID {
			continue
		}
		service := availability.NewService(
			locale.NewArabic(),
			availability.WithLocation(location),
			availability.WithHorizonDays(o.horizon),
			availability.WithInactiveWindows(o.inactive),
		)
		return service, availability.ScheduleSetFromAPI(center.Schedules), nil
	}
	return nil, availability.ScheduleSet{}, fmt.Errorf("center %d not found", o.centerID)
}

func (o *options) fetchCenters(ctx context.Context) ([]api_dto.Center, error) {
	if o.file != "" {
		raw, err := os.ReadFile(o.file)
		if err != nil {
			return nil, err
		}
		var centers []api_dto.Center
		err = json.Unmarshal(raw, &centers)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", o.file, err)
		}
		return centers, nil
	}

	logger := zap.NewNop()
	if o.verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	cfg := *o.internals
	cfg.DialysisAPI.BaseUrl = o.baseURL
	client := httpclient.NewClient(&cfg, nil, logger)
	return centersAPI.NewCenterAPIClient(client, logger).FindAll(ctx, o.token)
}

func printDates(out io.Writer, dates []availability.DateOption) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, date := range dates {
		fmt.Fprintf(w, "%s\t%s\n", date.Key, date.Label)
	}
	return w.Flush()
}

func printTimes(out io.Writer, times []availability.TimeOption) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, option := range times {
		marker := ""
		if option.Selected {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", option.Value, option.Label, marker)
	}
	return w.Flush()
}
