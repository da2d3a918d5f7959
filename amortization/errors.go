/*
errors.go - Error kinds for loan construction and schedule generation

PURPOSE:
  All error types in one place. Callers match them with errors.Is for the
  kind and errors.As for the details.

ERROR CATEGORIES:
  1. Validation errors - A field is outside its configured range
  2. Derivation errors - The monthly payment formula produced nonsense
  3. Resource errors - A schedule would exceed the configured period cap
     or its running totals would overflow

USAGE:
  terms, err := amortization.NewLoanTerms(amount, rate, years)
  if errors.Is(err, amortization.ErrInvalidAmount) {
      // re-prompt for the amount
  }

SEE ALSO:
  - validate.go: Produces FieldError and InvalidTermsError
  - engine.go: Produces PaymentDerivationError, PeriodLimitError and
    TotalsOverflowError
*/
package amortization

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidAmount is returned when the amount to borrow is out of range.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidRate is returned when the annual percentage rate is out of range.
	ErrInvalidRate = errors.New("invalid annual percentage rate")

	// ErrInvalidTerm is returned when the term in years is out of range.
	ErrInvalidTerm = errors.New("invalid term")

	// ErrPaymentInconsistent is returned when the derived monthly payment
	// exceeds the principal.
	ErrPaymentInconsistent = errors.New("monthly payment calculation produced an inconsistent result")

	// ErrPeriodLimit is returned when a schedule would need more periods than
	// the engine is allowed to generate.
	ErrPeriodLimit = errors.New("schedule exceeds period limit")

	// ErrTotalsOverflow is returned when cumulative payments or interest
	// no longer fit in int64 cents.
	ErrTotalsOverflow = errors.New("schedule totals overflow")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// Field names used in FieldError.
const (
	FieldAmount = "amount"
	FieldRate   = "rate"
	FieldTerm   = "term"
)

// FieldError describes one field outside its range.
type FieldError struct {
	Field string
	Value any
	Range Range
	kind  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v is not between %s and %s", e.kind, e.Value, e.Range.Min, e.Range.Max)
}

func (e *FieldError) Unwrap() error {
	return e.kind
}

// InvalidTermsError aggregates every field that failed validation.
type InvalidTermsError struct {
	Fields []*FieldError
}

func (e *InvalidTermsError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid loan terms: " + strings.Join(msgs, "; ")
}

func (e *InvalidTermsError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, f := range e.Fields {
		errs[i] = f
	}
	return errs
}

// PaymentDerivationError carries the inputs that produced a bad payment.
type PaymentDerivationError struct {
	Principal  Cents
	AnnualRate float64
	TermMonths int
	Payment    Cents
}

func (e *PaymentDerivationError) Error() string {
	return fmt.Sprintf("%s: payment %s exceeds principal %s (rate %g%%, %d months)",
		ErrPaymentInconsistent, e.Payment, e.Principal, e.AnnualRate, e.TermMonths)
}

func (e *PaymentDerivationError) Unwrap() error {
	return ErrPaymentInconsistent
}

// PeriodLimitError reports a schedule that would outgrow the period cap.
type PeriodLimitError struct {
	TermMonths int
	Needed     int
	Limit      int
}

func (e *PeriodLimitError) Error() string {
	return fmt.Sprintf("%s: %d-month term may need %d periods, limit is %d",
		ErrPeriodLimit, e.TermMonths, e.Needed, e.Limit)
}

func (e *PeriodLimitError) Unwrap() error {
	return ErrPeriodLimit
}

// TotalsOverflowError reports the period at which a running total overflowed.
type TotalsOverflowError struct {
	Period int
	Total  string // "payments" or "interest"
}

func (e *TotalsOverflowError) Error() string {
	return fmt.Sprintf("%s: cumulative %s exceed the largest representable amount at period %d",
		ErrTotalsOverflow, e.Total, e.Period)
}

func (e *TotalsOverflowError) Unwrap() error {
	return ErrTotalsOverflow
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidationError returns true if the error is due to an out-of-range input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidRate) ||
		errors.Is(err, ErrInvalidTerm)
}

// IsResourceLimit returns true if the error is due to the period cap or to
// totals too large to represent.
func IsResourceLimit(err error) bool {
	return errors.Is(err, ErrPeriodLimit) || errors.Is(err, ErrTotalsOverflow)
}
