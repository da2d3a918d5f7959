/*
dto.go - Data Transfer Objects for machine-readable schedule output

PURPOSE:
  Defines the JSON structures for the json output format. These types
  decouple the engine's types from the external contract, so fields can be
  renamed or added without touching the engine.

NAMING CONVENTION:
  - *DTO: Output types
  - Money is rendered as dollar strings with two decimals, never floats

SEE ALSO:
  - render.go: Uses these types
  - amortization/types.go: Source types
*/
package report

import (
	"github.com/warp/amortization-engine/amortization"
)

// ScheduleDTO represents a full schedule.
type ScheduleDTO struct {
	Principal            string       `json:"principal"`
	AnnualPercentageRate float64      `json:"annual_percentage_rate"`
	TermMonths           int          `json:"term_months"`
	MonthlyPayment       string       `json:"monthly_payment"`
	TotalPaid            string       `json:"total_paid"`
	TotalInterest        string       `json:"total_interest"`
	Payments             []PaymentDTO `json:"payments"`
}

// PaymentDTO represents one schedule row.
type PaymentDTO struct {
	Period        int    `json:"period"`
	Payment       string `json:"payment"`
	Interest      string `json:"interest"`
	Balance       string `json:"balance"`
	TotalPaid     string `json:"total_paid"`
	TotalInterest string `json:"total_interest"`
}

// NewScheduleDTO converts a schedule, disbursement record included.
func NewScheduleDTO(s *amortization.Schedule) ScheduleDTO {
	terms := s.Terms()
	dto := ScheduleDTO{
		Principal:            terms.Principal().String(),
		AnnualPercentageRate: terms.AnnualRate(),
		TermMonths:           terms.TermMonths(),
		MonthlyPayment:       s.MonthlyPayment().String(),
		TotalPaid:            s.TotalPaid().String(),
		TotalInterest:        s.TotalInterest().String(),
		Payments:             make([]PaymentDTO, s.Len()),
	}
	for i := 0; i < s.Len(); i++ {
		dto.Payments[i] = toPaymentDTO(s.At(i))
	}
	return dto
}

func toPaymentDTO(r amortization.PaymentRecord) PaymentDTO {
	return PaymentDTO{
		Period:        r.Period,
		Payment:       r.Payment.String(),
		Interest:      r.Interest.String(),
		Balance:       r.Balance.String(),
		TotalPaid:     r.TotalPaid.String(),
		TotalInterest: r.TotalInterest.String(),
	}
}
