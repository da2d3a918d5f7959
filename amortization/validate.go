/*
validate.go - Range checks for loan inputs

PURPOSE:
  Three pure predicates decide whether an amount, a rate and a term are
  acceptable. Their error-returning twins say which field failed and what
  the allowed range is, so an interactive caller can re-prompt.

BOUNDS:
  amount  [0.01, 1e12]        dollars
  rate    [0.000001, 100]     annual percent
  term    [1, 1000000]        whole years

  NaN and infinities are never valid.

IMPLEMENTATION:
  Bounds are expressed as go-playground/validator tags and evaluated with
  a shared *validator.Validate, which is safe for concurrent use.
*/
package amortization

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Input bounds.
const (
	MinAmount = 0.01
	MaxAmount = 1_000_000_000_000.0
	MinRate   = 0.000001
	MaxRate   = 100.0
	MinYears  = 1
	MaxYears  = 1_000_000

	MonthsPerYear = 12
)

// Range is an inclusive interval, pre-formatted for messages.
type Range struct {
	Min string
	Max string
}

func (r Range) String() string {
	return r.Min + " and " + r.Max
}

// Allowed ranges, formatted for display.
var (
	AmountRange = Range{Min: formatFloat(MinAmount), Max: formatFloat(MaxAmount)}
	RateRange   = Range{Min: formatFloat(MinRate), Max: formatFloat(MaxRate)}
	TermRange   = Range{Min: strconv.Itoa(MinYears), Max: strconv.Itoa(MaxYears)}
)

var (
	validate = validator.New()

	amountTag = fmt.Sprintf("gte=%s,lte=%s", AmountRange.Min, AmountRange.Max)
	rateTag   = fmt.Sprintf("gte=%s,lte=%s", RateRange.Min, RateRange.Max)
	termTag   = fmt.Sprintf("gte=%d,lte=%d", MinYears, MaxYears)
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// IsValidAmount reports whether amount lies in [0.01, 1e12].
func IsValidAmount(amount float64) bool {
	return validate.Var(amount, amountTag) == nil
}

// IsValidRate reports whether rate lies in [0.000001, 100].
func IsValidRate(rate float64) bool {
	return validate.Var(rate, rateTag) == nil
}

// IsValidTerm reports whether years lies in [1, 1000000].
func IsValidTerm(years int) bool {
	return validate.Var(years, termTag) == nil
}

// ValidateAmount returns a *FieldError wrapping ErrInvalidAmount when the
// amount is out of range.
func ValidateAmount(amount float64) error {
	if IsValidAmount(amount) {
		return nil
	}
	return &FieldError{Field: FieldAmount, Value: amount, Range: AmountRange, kind: ErrInvalidAmount}
}

// ValidateRate returns a *FieldError wrapping ErrInvalidRate when the rate is
// out of range.
func ValidateRate(rate float64) error {
	if IsValidRate(rate) {
		return nil
	}
	return &FieldError{Field: FieldRate, Value: rate, Range: RateRange, kind: ErrInvalidRate}
}

// ValidateTerm returns a *FieldError wrapping ErrInvalidTerm when the term is
// out of range.
func ValidateTerm(years int) error {
	if IsValidTerm(years) {
		return nil
	}
	return &FieldError{Field: FieldTerm, Value: years, Range: TermRange, kind: ErrInvalidTerm}
}

// validateTerms checks all three fields and aggregates the failures.
func validateTerms(amount, rate float64, years int) error {
	var fields []*FieldError
	for _, err := range []error{ValidateAmount(amount), ValidateRate(rate), ValidateTerm(years)} {
		if fe, ok := err.(*FieldError); ok {
			fields = append(fields, fe)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &InvalidTermsError{Fields: fields}
}
