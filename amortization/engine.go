/*
engine.go - Monthly payment derivation and schedule generation

PURPOSE:
  Derives the fixed monthly payment from the standard annuity formula and
  walks the loan period by period until the balance reaches zero.

PAYMENT FORMULA:
  J = R / 1200                      monthly rate as a fraction
  M = P * J / (1 - (1 + J)^-N)      P principal in cents, N months
  M is rounded half-up to a whole cent.

SCHEDULE LOOP:
  Starting at period 0 with balance P, while balance > 0 and the period
  counter has not passed the cap (N + 1):
    1. interest = round(balance * J)
    2. payoff   = balance + interest
    3. payment  = min(M, payoff)
    4. at the cap, payment = payoff
    5. balance -= payment - interest
  The extra period past N absorbs rounding slippage. Forcing the payoff at
  the cap retires loans whose payment rounds down to nothing or covers only
  interest, so the last record always has a zero balance.

LIMITS:
  A schedule has at most N + 2 payment records. WithMaxPeriods puts a hard
  ceiling on that number; terms that could exceed it are rejected before
  any record is generated. Running totals are int64 cents; a schedule whose
  totals would not fit fails with ErrTotalsOverflow and returns nothing.
*/
package amortization

import (
	"math"
)

// capSlack is how many periods past the nominal term the loop may run.
const capSlack = 1

// maxPrealloc bounds the records reserved up front; longer schedules grow.
const maxPrealloc = 1024

func monthlyRate(annualRate float64) float64 {
	return annualRate / (MonthsPerYear * 100)
}

// ComputeMonthlyPayment derives the fixed monthly payment in cents.
// It fails with ErrPaymentInconsistent when the payment exceeds the principal.
func ComputeMonthlyPayment(principal Cents, annualRate float64, termMonths int) (Cents, error) {
	j := monthlyRate(annualRate)
	m := float64(principal) * j / (1 - math.Pow(1+j, -float64(termMonths)))

	payment := roundHalfUp(m)
	if math.IsNaN(m) || math.IsInf(m, 0) || payment > principal {
		return 0, &PaymentDerivationError{
			Principal:  principal,
			AnnualRate: annualRate,
			TermMonths: termMonths,
			Payment:    payment,
		}
	}
	return payment, nil
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine generates schedules. The zero value has no period limit.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	maxPeriods int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxPeriods caps the number of payment records a schedule may hold.
// Zero or negative means no cap beyond the natural term + 2.
func WithMaxPeriods(n int) Option {
	return func(e *Engine) {
		e.maxPeriods = n
	}
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxPeriods returns the configured cap, zero if none.
func (e *Engine) MaxPeriods() int {
	if e.maxPeriods < 0 {
		return 0
	}
	return e.maxPeriods
}

// BuildSchedule generates the schedule with a default engine.
func BuildSchedule(terms LoanTerms, opts ...Option) (*Schedule, error) {
	return NewEngine(opts...).BuildSchedule(terms)
}

// BuildSchedule generates the full schedule for terms.
// The result is identical for identical terms.
func (e *Engine) BuildSchedule(terms LoanTerms) (*Schedule, error) {
	if terms.termMonths <= 0 {
		return nil, ValidateTerm(terms.termMonths / MonthsPerYear)
	}

	lastPeriod := terms.termMonths + capSlack
	worst := lastPeriod + 1
	if limit := e.MaxPeriods(); limit > 0 && worst > limit {
		return nil, &PeriodLimitError{TermMonths: terms.termMonths, Needed: worst, Limit: limit}
	}

	j := terms.MonthlyRate()
	payment := terms.monthlyPayment

	records := make([]PaymentRecord, 0, min(worst+1, maxPrealloc))
	records = append(records, newPaymentRecord(0, 0, 0, terms.principal, 0, 0))

	var (
		balance       = terms.principal
		period        = 0
		totalPaid     Cents
		totalInterest Cents
	)

	for balance > 0 && period <= lastPeriod {
		interest := roundHalfUp(float64(balance) * j)
		payoff := balance + interest

		cur := payment
		if payoff < cur {
			cur = payoff
		}

		// Last chance: whatever is left gets paid now.
		if period == lastPeriod {
			cur = payoff
		}

		newBalance := balance - (cur - interest)

		var ok bool
		if totalPaid, ok = addCents(totalPaid, cur); !ok {
			return nil, &TotalsOverflowError{Period: period + 1, Total: "payments"}
		}
		if totalInterest, ok = addCents(totalInterest, interest); !ok {
			return nil, &TotalsOverflowError{Period: period + 1, Total: "interest"}
		}

		period++
		records = append(records, newPaymentRecord(period, cur, interest, newBalance, totalPaid, totalInterest))
		balance = newBalance
	}

	return &Schedule{terms: terms, records: records}, nil
}

// addCents adds two non-negative amounts, reporting false on int64 overflow.
func addCents(a, b Cents) (Cents, bool) {
	if b > math.MaxInt64-a {
		return a, false
	}
	return a + b, true
}
