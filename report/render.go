/*
Package report renders amortization schedules for people and programs.

FORMATS:
  table  Six columns, the first three padded to 20 characters and the last
         three comma separated:
           PaymentNumber  PaymentAmount  PaymentInterest  CurrentBalance,TotalPayments,TotalInterestPaid
  csv    The same six columns as RFC 4180 records
  json   A ScheduleDTO document

  Period numbers are integers. Every money column is shown in dollars with
  two decimals.

USAGE:
  format, err := report.ParseFormat("table")
  err = report.Render(os.Stdout, schedule, format)
*/
package report

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/warp/amortization-engine/amortization"
)

// Format selects an output rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatCSV, FormatJSON}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want table, csv or json)", s)
}

// Header holds the column titles in display order.
var Header = []string{
	"PaymentNumber", "PaymentAmount", "PaymentInterest",
	"CurrentBalance", "TotalPayments", "TotalInterestPaid",
}

const tableLayout = "%-20s%-20s%-20s%s,%s,%s\n"

// Render writes the schedule to w in the given format.
func Render(w io.Writer, s *amortization.Schedule, format Format) error {
	switch format {
	case FormatTable, "":
		return renderTable(w, s)
	case FormatCSV:
		return renderCSV(w, s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewScheduleDTO(s))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Row returns the six display columns for a record.
func Row(r amortization.PaymentRecord) []string {
	return []string{
		strconv.Itoa(r.Period),
		r.Payment.String(),
		r.Interest.String(),
		r.Balance.String(),
		r.TotalPaid.String(),
		r.TotalInterest.String(),
	}
}

func renderTable(w io.Writer, s *amortization.Schedule) error {
	bw := bufio.NewWriter(w)
	writeRow(bw, Header)
	for i := 0; i < s.Len(); i++ {
		writeRow(bw, Row(s.At(i)))
	}
	return bw.Flush()
}

func writeRow(w io.Writer, cols []string) {
	fmt.Fprintf(w, tableLayout, cols[0], cols[1], cols[2], cols[3], cols[4], cols[5])
}

func renderCSV(w io.Writer, s *amortization.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		if err := cw.Write(Row(s.At(i))); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary writes the monthly payment and totals.
func Summary(w io.Writer, s *amortization.Schedule) error {
	_, err := fmt.Fprintf(w, "Monthly payment: %s\nTotal payments: %s\nTotal interest: %s\nNumber of payments: %d\n",
		s.MonthlyPayment(), s.TotalPaid(), s.TotalInterest(), s.Len()-1)
	return err
}
