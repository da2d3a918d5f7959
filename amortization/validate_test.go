package amortization_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/amortization-engine/amortization"
)

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   bool
	}{
		{0.01, true},
		{0.00999, false},
		{0, false},
		{-5, false},
		{1000, true},
		{1e12, true},
		{1e12 + 1, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, amortization.IsValidAmount(tt.amount), "amount %v", tt.amount)
	}
}

func TestIsValidRate(t *testing.T) {
	tests := []struct {
		rate float64
		want bool
	}{
		{0.000001, true},
		{0.0000009, false},
		{0, false},
		{5, true},
		{100, true},
		{100.0001, false},
		{math.NaN(), false},
		{math.Inf(-1), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, amortization.IsValidRate(tt.rate), "rate %v", tt.rate)
	}
}

func TestIsValidTerm(t *testing.T) {
	tests := []struct {
		years int
		want  bool
	}{
		{0, false},
		{1, true},
		{30, true},
		{1_000_000, true},
		{1_000_001, false},
		{-1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, amortization.IsValidTerm(tt.years), "years %v", tt.years)
	}
}

func TestValidateAmount_FieldError(t *testing.T) {
	err := amortization.ValidateAmount(0.00999)
	require.Error(t, err)
	assert.ErrorIs(t, err, amortization.ErrInvalidAmount)

	var fe *amortization.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, amortization.FieldAmount, fe.Field)
	assert.Equal(t, "0.01", fe.Range.Min)
	assert.Equal(t, "1000000000000", fe.Range.Max)

	assert.NoError(t, amortization.ValidateAmount(0.01))
}

func TestRanges(t *testing.T) {
	assert.Equal(t, "0.01 and 1000000000000", amortization.AmountRange.String())
	assert.Equal(t, "0.000001 and 100", amortization.RateRange.String())
	assert.Equal(t, "1 and 1000000", amortization.TermRange.String())
}

func TestNewLoanTerms_Boundaries(t *testing.T) {
	// GIVEN: The minimum accepted values
	terms, err := amortization.NewLoanTerms(0.01, 0.000001, 1)

	// THEN: Construction succeeds
	require.NoError(t, err)
	assert.Equal(t, amortization.Cents(1), terms.Principal())
	assert.Equal(t, 12, terms.TermMonths())

	_, err = amortization.NewLoanTerms(0.00999, 5, 1)
	assert.ErrorIs(t, err, amortization.ErrInvalidAmount)

	_, err = amortization.NewLoanTerms(1000, 5, 0)
	assert.ErrorIs(t, err, amortization.ErrInvalidTerm)

	_, err = amortization.NewLoanTerms(1000, 0, 1)
	assert.ErrorIs(t, err, amortization.ErrInvalidRate)
}

func TestNewLoanTerms_AggregatesEveryField(t *testing.T) {
	// GIVEN: All three fields out of range
	_, err := amortization.NewLoanTerms(0, 101, 0)

	// THEN: One error reports all of them
	require.Error(t, err)
	assert.True(t, amortization.IsValidationError(err))
	assert.ErrorIs(t, err, amortization.ErrInvalidAmount)
	assert.ErrorIs(t, err, amortization.ErrInvalidRate)
	assert.ErrorIs(t, err, amortization.ErrInvalidTerm)
	assert.False(t, errors.Is(err, amortization.ErrPaymentInconsistent))

	var ite *amortization.InvalidTermsError
	require.ErrorAs(t, err, &ite)
	require.Len(t, ite.Fields, 3)
	assert.Equal(t, amortization.FieldAmount, ite.Fields[0].Field)
	assert.Equal(t, amortization.FieldRate, ite.Fields[1].Field)
	assert.Equal(t, amortization.FieldTerm, ite.Fields[2].Field)
	assert.Contains(t, err.Error(), "invalid term: 0 is not between 1 and 1000000")
}

func TestNewLoanTerms_SingleField(t *testing.T) {
	_, err := amortization.NewLoanTerms(500, 5, 2_000_000)

	var ite *amortization.InvalidTermsError
	require.ErrorAs(t, err, &ite)
	require.Len(t, ite.Fields, 1)
	assert.Equal(t, 2_000_000, ite.Fields[0].Value)
	assert.False(t, errors.Is(err, amortization.ErrInvalidAmount))
}
