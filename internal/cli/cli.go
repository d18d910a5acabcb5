package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pfrederiksen/bin-days/internal/calendar"
	"github.com/pfrederiksen/bin-days/internal/config"
	"github.com/pfrederiksen/bin-days/internal/logger"
	"github.com/pfrederiksen/bin-days/internal/schedule"
	"github.com/pfrederiksen/bin-days/internal/scraper"
	"github.com/pfrederiksen/bin-days/internal/server"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitNoData  = 2
)

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// options holds the flags shared by all commands.
type options struct {
	configPath string
	logLevel   string
	timeout    time.Duration
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "bin-days",
		Short: "Show bin collection dates scraped from the council schedule",
		Long: `bin-days fetches the council's bin collection schedule pages, picks out
the rows for configured areas, and renders their dates as small HTML pages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("BIN_DAYS_CONFIG"), "JSON file with variant definitions (or env: BIN_DAYS_CONFIG; default: built-in variants)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOr("BIN_DAYS_LOG_LEVEL", "INFO"), "Log level: DEBUG, INFO, WARN or ERROR (or env: BIN_DAYS_LOG_LEVEL)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", scraper.DefaultTimeout, "Upstream fetch timeout")

	cmd.AddCommand(
		newServeCmd(opts),
		newShowCmd(opts),
		newICSCmd(opts),
		newVariantsCmd(opts),
	)

	return cmd
}

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bin pages over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(set, scraper.New(scraper.WithTimeout(opts.timeout)))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr("BIN_DAYS_ADDR", ":8080"), "Listen address (or env: BIN_DAYS_ADDR)")

	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <variant>",
		Short: "Print the collection dates of a variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat := OutputFormat(strings.ToLower(format))
			if outputFormat != FormatText && outputFormat != FormatJSON {
				return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", format)
			}

			v, res, err := lookupVariant(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}

			if err := WriteOutput(cmd.OutOrStdout(), newOutputResult(v, res), outputFormat); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return resultError(res)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	return cmd
}

func newICSCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "ics <variant>",
		Short: "Write the iCalendar feed of a variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, res, err := lookupVariant(cmd.Context(), opts, args[0])
			if err != nil {
				return err
			}
			if err := resultError(res); err != nil {
				return err
			}

			feed := calendar.Generate(v, res.Areas, time.Now())
			if output == "" || output == "-" {
				_, err := io.WriteString(cmd.OutOrStdout(), feed)
				return err
			}
			if err := os.WriteFile(output, []byte(feed), 0o644); err != nil {
				return fmt.Errorf("writing calendar: %w", err)
			}
			logger.Info("calendar written", logger.Fields{"variant": v.Slug, "path": output})
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func newVariantsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List configured variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			w := cmd.OutOrStdout()
			for _, v := range set.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", v.Slug, v.Title, strings.Join(v.Targets, ", "))
			}
			return nil
		},
	}
}

// lookupVariant loads the config and resolves one variant.
func lookupVariant(ctx context.Context, opts *options, slug string) (config.Variant, schedule.Result, error) {
	set, err := config.Load(opts.configPath)
	if err != nil {
		return config.Variant{}, schedule.Result{}, fmt.Errorf("loading config: %w", err)
	}
	v, ok := set.Get(slug)
	if !ok {
		return config.Variant{}, schedule.Result{}, fmt.Errorf("unknown variant %q", slug)
	}

	logger.Debug("fetching schedule", logger.Fields{"variant": v.Slug, "url": v.URL})
	res := schedule.Lookup(ctx, scraper.New(scraper.WithTimeout(opts.timeout)), v)
	return v, res, nil
}

// resultError maps an unsuccessful lookup to an exit code.
func resultError(res schedule.Result) error {
	switch res.Kind {
	case schedule.KindSuccess:
		return nil
	case schedule.KindFetchError:
		return &exitError{code: ExitError, err: fmt.Errorf("fetching schedule: %w", res.Err)}
	default:
		return &exitError{code: ExitNoData, err: fmt.Errorf("no collection dates found (%s)", res.Kind)}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return ExitError
	}
	return ExitSuccess
}
