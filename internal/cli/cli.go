package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mshahgoogle/nps-campsite-scraper/internal/campsite"
	"github.com/mshahgoogle/nps-campsite-scraper/internal/logger"
	"github.com/mshahgoogle/nps-campsite-scraper/internal/notifier"
	"github.com/mshahgoogle/nps-campsite-scraper/internal/poller"
	"github.com/mshahgoogle/nps-campsite-scraper/internal/scraper"
)

const (
	ExitFound          = 0
	ExitError          = 1
	ExitNoAvailability = 2
)

var (
	flagPark        string
	flagDate        string
	flagInterval    int
	flagEmail       string
	flagMaxAttempts int
	flagFormat      string
	flagDryRun      bool
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campsite-alert",
		Short: "Poll recreation.gov for campsite availability",
		Long: `Polls recreation.gov for newly-opened campsite availability in a national
park on a target date, and optionally emails you the moment a site opens up.`,
		RunE:          runPoll,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define flags
	cmd.Flags().StringVar(&flagPark, "park", "", `National park name, e.g. "Yosemite" (required)`)
	cmd.Flags().StringVar(&flagDate, "date", "", "Date to check, YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&flagInterval, "interval", 3600, "Polling interval in seconds")
	cmd.Flags().StringVar(&flagEmail, "email", "", "Email address to notify when availability is found")
	cmd.Flags().IntVar(&flagMaxAttempts, "max-attempts", 24, "Maximum number of polling attempts")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the notification instead of emailing it")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and counter output")

	cmd.MarkFlagRequired("park") // nolint:errcheck
	cmd.MarkFlagRequired("date") // nolint:errcheck

	return cmd
}

// runPoll is the main command logic. Configuration errors surface here,
// before polling begins; upstream failures never do.
func runPoll(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	park := strings.TrimSpace(flagPark)
	if park == "" {
		return fmt.Errorf("--park must not be empty")
	}

	date, err := time.Parse(campsite.DateFormat, flagDate)
	if err != nil {
		return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", flagDate)
	}

	if flagInterval < 0 {
		return fmt.Errorf("--interval must not be negative")
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	notif, err := buildNotifier()
	if err != nil {
		return err
	}

	client := scraper.NewClient()
	engine := poller.New(scraper.NewResolver(client), scraper.NewChecker(client), notif)

	// ctrl-c aborts the poll mid-wait instead of killing the process
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := engine.Poll(ctx, poller.Config{
		ParkName:    park,
		Date:        date,
		Interval:    time.Duration(flagInterval) * time.Second,
		MaxAttempts: flagMaxAttempts,
	})
	if err != nil {
		return fmt.Errorf("polling aborted: %w", err)
	}

	output := &OutputResult{
		CheckedAt:   time.Now().UTC(),
		Park:        park,
		Date:        date.Format(campsite.DateFormat),
		MaxAttempts: flagMaxAttempts,
		Found:       result != nil,
		Result:      result,
	}
	if err := WriteOutput(os.Stdout, output, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagVerbose {
		printCounters(os.Stderr)
	}

	if result != nil {
		os.Exit(ExitFound)
	}
	os.Exit(ExitNoAvailability)
	return nil
}

// buildNotifier picks the notifier for this run: none when --email is
// absent, dry-run when requested, otherwise SMTP configured from the
// environment. A requested email with no usable SMTP config is a fatal
// configuration error.
func buildNotifier() (notifier.Notifier, error) {
	if flagEmail == "" {
		return nil, nil
	}
	if flagDryRun {
		return notifier.NewDryRunNotifier(), nil
	}

	// .env is optional; deployed environments set the variables directly
	_ = godotenv.Load()

	cfg, err := notifier.SMTPConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("email notification requested: %w", err)
	}
	return notifier.NewEmailNotifier(cfg, flagEmail), nil
}

// printCounters dumps the run's operational counters in a stable order
func printCounters(w *os.File) {
	counters := logger.GetCounters()

	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "%s: %d\n", name, counters[name])
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
