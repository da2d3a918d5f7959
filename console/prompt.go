/*
Package console collects loan inputs interactively.

PURPOSE:
  Prompts for the amount, rate and term one after another and keeps asking
  for the same field until its value parses and passes the matching
  amortization predicate. The prompter only touches the reader and writer
  it was given, so tests drive it with strings.

FLOW:
  amount -> rate -> term
  On a rejected value:
    "Please enter a positive value between <min> and <max>. "
    "An invalid value was entered.\n"
  and the same prompt is shown again.
  End of input aborts with ErrInputAborted; nothing is returned.

SEE ALSO:
  - amortization/validate.go: The predicates and ranges
  - cmd/amortize/main.go: Wires the prompter to stdin/stdout
*/
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/amortization-engine/amortization"
)

// ErrInputAborted is returned when input ends or cannot be read.
var ErrInputAborted = errors.New("input aborted")

// Prompts shown for each field, in order.
const (
	AmountPrompt = "Please enter the amount you would like to borrow: "
	RatePrompt   = "Please enter the annual percentage rate used to repay the loan: "
	TermPrompt   = "Please enter the term, in years, over which the loan is repaid: "

	invalidValue = "An invalid value was entered.\n"
)

// Input is a set of values that passed the predicates.
type Input struct {
	Amount float64
	Rate   float64
	Years  int
}

// Prompter reads loan inputs from a line-oriented reader.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// New creates a prompter over r and w. A nil logger discards.
func New(r io.Reader, w io.Writer, logger *slog.Logger) *Prompter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Prompter{
		in:     bufio.NewReader(r),
		out:    w,
		logger: logger.With("component", "console"),
	}
}

// ReadTerms prompts for all three fields.
func (p *Prompter) ReadTerms(ctx context.Context) (Input, error) {
	var in Input
	var err error

	if in.Amount, err = p.readFloat(ctx, AmountPrompt, amortization.IsValidAmount, amortization.AmountRange, "a positive value"); err != nil {
		return Input{}, err
	}
	if in.Rate, err = p.readFloat(ctx, RatePrompt, amortization.IsValidRate, amortization.RateRange, "a positive value"); err != nil {
		return Input{}, err
	}
	if in.Years, err = p.readInt(ctx, TermPrompt, amortization.IsValidTerm, amortization.TermRange, "a positive integer value"); err != nil {
		return Input{}, err
	}
	return in, nil
}

func (p *Prompter) readFloat(ctx context.Context, prompt string, valid func(float64) bool, r amortization.Range, what string) (float64, error) {
	for {
		line, err := p.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		d, perr := decimal.NewFromString(line)
		if perr == nil {
			v := d.InexactFloat64()
			if valid(v) {
				return v, nil
			}
		}
		p.reject(line, r, what)
	}
}

func (p *Prompter) readInt(ctx context.Context, prompt string, valid func(int) bool, r amortization.Range, what string) (int, error) {
	for {
		line, err := p.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, perr := strconv.Atoi(line)
		if perr == nil && valid(v) {
			return v, nil
		}
		p.reject(line, r, what)
	}
}

func (p *Prompter) reject(line string, r amortization.Range, what string) {
	p.logger.Debug("rejected input", "value", line, "min", r.Min, "max", r.Max)
	fmt.Fprintf(p.out, "Please enter %s between %s. %s", what, r, invalidValue)
}

// readLine shows the prompt and returns the trimmed line.
// A final line without a newline is still accepted.
func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInputAborted, err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputAborted
		}
		return "", fmt.Errorf("%w: %v", ErrInputAborted, err)
	}
	return strings.TrimSpace(line), nil
}
