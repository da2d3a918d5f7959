/*
Package amortization computes fixed-payment loan amortization schedules.

PURPOSE:
  Given a principal, an annual percentage rate and a term in years, derive
  the fixed monthly payment and produce a period-by-period breakdown of
  payment, interest, remaining balance and running totals until the loan
  is paid off.

KEY CONCEPTS IN THIS FILE (types.go):
  - Cents: Integer minor currency units (all money in this package)
  - LoanTerms: Validated, immutable inputs plus the derived monthly payment
  - PaymentRecord: One row of the schedule
  - Schedule: Ordered records, index 0 is the disbursement

DESIGN PRINCIPLES:
  1. Integer money: Balances and totals never drift, only the payment
     formula and per-period interest touch float64, each rounded to a cent
  2. Immutability: LoanTerms, PaymentRecord and Schedule are read-only
     once built
  3. All or nothing: Either a complete schedule is produced or an error

USAGE:
  terms, err := amortization.NewLoanTerms(1000, 12, 1)
  if err != nil {
      return err
  }
  schedule, err := amortization.BuildSchedule(terms)

SEE ALSO:
  - validate.go: Input bounds
  - engine.go: Payment derivation and schedule generation
  - errors.go: Error kinds
*/
package amortization

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CENTS - Money in minor units
// =============================================================================

// Cents is an amount of money in minor currency units.
type Cents int64

var hundred = decimal.NewFromInt(100)

// CentsFromDollars converts a decimal dollar amount to cents, rounding half up.
// The conversion works on the shortest decimal form of the float, so 0.285
// becomes 29 cents rather than the 28 a binary multiply would give.
func CentsFromDollars(dollars float64) Cents {
	return CentsFromDecimal(decimal.NewFromFloat(dollars))
}

// CentsFromDecimal converts a decimal dollar amount to cents, rounding half up.
func CentsFromDecimal(dollars decimal.Decimal) Cents {
	return Cents(dollars.Shift(2).Round(0).IntPart())
}

// Dollars returns the amount in major units.
func (c Cents) Dollars() decimal.Decimal {
	return decimal.NewFromInt(int64(c)).Div(hundred)
}

// String renders the amount as dollars with two decimals.
func (c Cents) String() string {
	return c.Dollars().StringFixed(2)
}

// roundHalfUp rounds to the nearest whole cent, halves going up.
func roundHalfUp(x float64) Cents {
	return Cents(math.Floor(x + 0.5))
}

// =============================================================================
// LOAN TERMS - Validated inputs
// =============================================================================

// LoanTerms holds the validated inputs of a loan and its derived monthly payment.
// The zero value is not usable; build one with NewLoanTerms.
type LoanTerms struct {
	principal      Cents
	annualRate     float64
	termMonths     int
	monthlyPayment Cents
}

// NewLoanTerms validates the inputs and derives the monthly payment.
//
// Every invalid field is reported at once in an *InvalidTermsError, so
// errors.Is(err, ErrInvalidAmount) and friends match each violation. A payment
// larger than the principal fails with ErrPaymentInconsistent.
func NewLoanTerms(amount, annualRate float64, years int) (LoanTerms, error) {
	if err := validateTerms(amount, annualRate, years); err != nil {
		return LoanTerms{}, err
	}

	terms := LoanTerms{
		principal:  CentsFromDollars(amount),
		annualRate: annualRate,
		termMonths: years * MonthsPerYear,
	}

	payment, err := ComputeMonthlyPayment(terms.principal, terms.annualRate, terms.termMonths)
	if err != nil {
		return LoanTerms{}, err
	}
	terms.monthlyPayment = payment
	return terms, nil
}

// Principal returns the borrowed amount.
func (t LoanTerms) Principal() Cents { return t.principal }

// AnnualRate returns the annual percentage rate (5.0 means 5%).
func (t LoanTerms) AnnualRate() float64 { return t.annualRate }

// TermMonths returns the nominal number of monthly payments.
func (t LoanTerms) TermMonths() int { return t.termMonths }

// MonthlyPayment returns the fixed payment derived at construction.
func (t LoanTerms) MonthlyPayment() Cents { return t.monthlyPayment }

// MonthlyRate returns the fractional monthly interest rate J.
func (t LoanTerms) MonthlyRate() float64 { return monthlyRate(t.annualRate) }

func (t LoanTerms) String() string {
	return fmt.Sprintf("%s at %g%% over %d months", t.principal, t.annualRate, t.termMonths)
}

// =============================================================================
// PAYMENT RECORD - One row of the schedule
// =============================================================================

// PaymentRecord is one period of a schedule. Period 0 is the disbursement.
type PaymentRecord struct {
	Period        int
	Payment       Cents
	Interest      Cents
	Balance       Cents
	TotalPaid     Cents
	TotalInterest Cents
}

// newPaymentRecord builds a record and panics if it breaks an invariant.
// A broken record means the engine has a bug; there is nothing to recover.
func newPaymentRecord(period int, payment, interest, balance, totalPaid, totalInterest Cents) PaymentRecord {
	switch {
	case period < 0:
		panic(fmt.Sprintf("amortization: negative period %d", period))
	case payment < 0 || interest < 0:
		panic(fmt.Sprintf("amortization: period %d has negative payment %d or interest %d", period, payment, interest))
	case interest > payment && period > 0:
		panic(fmt.Sprintf("amortization: period %d interest %d exceeds payment %d", period, interest, payment))
	case balance < 0:
		panic(fmt.Sprintf("amortization: period %d has negative balance %d", period, balance))
	case totalPaid < payment || totalInterest < interest:
		panic(fmt.Sprintf("amortization: period %d totals below period amounts", period))
	}
	return PaymentRecord{
		Period:        period,
		Payment:       payment,
		Interest:      interest,
		Balance:       balance,
		TotalPaid:     totalPaid,
		TotalInterest: totalInterest,
	}
}

// Principal returns the part of the payment that reduced the balance.
func (r PaymentRecord) Principal() Cents { return r.Payment - r.Interest }

// IsDisbursement reports whether this is the initial period-0 record.
func (r PaymentRecord) IsDisbursement() bool { return r.Period == 0 }

// =============================================================================
// SCHEDULE - Ordered records
// =============================================================================

// Schedule is a complete amortization schedule. It is read-only.
type Schedule struct {
	terms   LoanTerms
	records []PaymentRecord
}

// Terms returns the loan terms the schedule was built from.
func (s *Schedule) Terms() LoanTerms { return s.terms }

// MonthlyPayment returns the fixed monthly payment.
func (s *Schedule) MonthlyPayment() Cents { return s.terms.monthlyPayment }

// Len returns the number of records including the disbursement.
func (s *Schedule) Len() int { return len(s.records) }

// At returns the i-th record. Index 0 is the disbursement.
func (s *Schedule) At(i int) PaymentRecord { return s.records[i] }

// Records returns a copy of all records, disbursement first.
func (s *Schedule) Records() []PaymentRecord {
	out := make([]PaymentRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Payments returns a copy of the payment records (periods 1..N).
func (s *Schedule) Payments() []PaymentRecord {
	out := make([]PaymentRecord, len(s.records)-1)
	copy(out, s.records[1:])
	return out
}

// Final returns the last record.
func (s *Schedule) Final() PaymentRecord { return s.records[len(s.records)-1] }

// TotalPaid returns the sum of all payments.
func (s *Schedule) TotalPaid() Cents { return s.Final().TotalPaid }

// TotalInterest returns the sum of all interest.
func (s *Schedule) TotalInterest() Cents { return s.Final().TotalInterest }

// PrincipalRepaid returns total payments minus total interest.
func (s *Schedule) PrincipalRepaid() Cents { return s.TotalPaid() - s.TotalInterest() }
