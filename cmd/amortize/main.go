/*
main.go - Application entry point

PURPOSE:
  Reads loan terms (interactively or from flags), builds the amortization
  schedule and prints it.

STARTUP SEQUENCE:
  1. Load .env and environment configuration
  2. Parse command-line flags (flags override the environment)
  3. Validate configuration, set up logging
  4. Collect amount, rate and term
  5. Build and render the schedule

COMMAND-LINE FLAGS:
  -amount       Amount to borrow in dollars
  -rate         Annual percentage rate
  -years        Term in whole years
                When all three are given, no prompts are shown.
  -format       table | csv | json          (env AMORTIZE_FORMAT)
  -summary      Print totals after the schedule (env AMORTIZE_SUMMARY)
  -max-periods  Hard cap on payment records   (env AMORTIZE_MAX_PERIODS)
  -log-level    debug | info | warn | error   (env AMORTIZE_LOG_LEVEL)

EXIT STATUS:
  0  Schedule printed
  1  Input aborted or the values could not be processed
  2  Bad flags or configuration

EXAMPLES:
  # Interactive
  ./amortize

  # One shot, CSV
  ./amortize -amount=250000 -rate=6.25 -years=30 -format=csv

SEE ALSO:
  - console/prompt.go: Interactive input
  - amortization/engine.go: Schedule generation
  - report/render.go: Output formats
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/warp/amortization-engine/amortization"
	"github.com/warp/amortization-engine/config"
	"github.com/warp/amortization-engine/console"
	"github.com/warp/amortization-engine/report"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("amortize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	amount := fs.Float64("amount", 0, "amount to borrow in dollars")
	rate := fs.Float64("rate", 0, "annual percentage rate")
	years := fs.Int("years", 0, "term in whole years")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: table, csv or json")
	fs.BoolVar(&cfg.Summary, "summary", cfg.Summary, "print totals after the schedule")
	fs.IntVar(&cfg.MaxPeriods, "max-periods", cfg.MaxPeriods, "hard cap on payment records, 0 for none")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()})).
		With("component", "amortize")

	given := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })

	var in console.Input
	if given["amount"] && given["rate"] && given["years"] {
		in = console.Input{Amount: *amount, Rate: *rate, Years: *years}
		logger.Debug("using terms from flags", "amount", in.Amount, "rate", in.Rate, "years", in.Years)
	} else {
		var err error
		in, err = console.New(stdin, stdout, logger).ReadTerms(ctx)
		if err != nil {
			logger.Warn("input aborted", "error", err)
			fmt.Fprintln(stdout, "Unable to read input. Terminating program.")
			return exitFailure
		}
	}

	terms, err := amortization.NewLoanTerms(in.Amount, in.Rate, in.Years)
	if err != nil {
		return reportFailure(stdout, logger, err)
	}

	engine := amortization.NewEngine(amortization.WithMaxPeriods(cfg.MaxPeriods))
	schedule, err := engine.BuildSchedule(terms)
	if err != nil {
		return reportFailure(stdout, logger, err)
	}
	logger.Info("schedule built", "terms", terms.String(), "payments", schedule.Len()-1)

	if err := report.Render(stdout, schedule, cfg.OutputFormat()); err != nil {
		logger.Error("failed to render schedule", "error", err)
		return exitFailure
	}
	if cfg.Summary {
		if err := report.Summary(stdout, schedule); err != nil {
			logger.Error("failed to render summary", "error", err)
			return exitFailure
		}
	}
	return exitOK
}

func reportFailure(w io.Writer, logger *slog.Logger, err error) int {
	logger.Warn("unable to build schedule", "error", err)

	fmt.Fprintln(w, "Unable to process the values entered. Terminating program.")
	switch {
	case amortization.IsValidationError(err):
		var ite *amortization.InvalidTermsError
		if errors.As(err, &ite) {
			for _, f := range ite.Fields {
				fmt.Fprintf(w, "  %s\n", f)
			}
		}
	default:
		fmt.Fprintf(w, "  %s\n", err)
	}
	return exitFailure
}
