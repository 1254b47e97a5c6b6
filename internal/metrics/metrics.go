// Package metrics provides Prometheus metrics for the payment and digit helpers.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PaymentDatesTotal counts computed payment dates by weekend adjustment.
	PaymentDatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_dates_calculated_total",
			Help: "Total number of payment dates calculated",
		},
		[]string{"adjustment"},
	)

	// DateParseErrorsTotal counts proposed dates that could not be parsed.
	DateParseErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_date_parse_errors_total",
			Help: "Total number of proposed dates rejected by the parser",
		},
	)

	// DigitQueriesTotal counts digit analyzer queries by kind.
	DigitQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digit_queries_total",
			Help: "Total number of digit analyzer queries",
		},
		[]string{"query"},
	)

	// DigitTargetsTotal counts digit count queries by target digit.
	// Targets outside 0-9 share the "out_of_range" label.
	DigitTargetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digit_count_targets_total",
			Help: "Total number of digit count queries by target digit",
		},
		[]string{"target"},
	)
)

// Query labels for DigitQueriesTotal.
const (
	QueryOddDigit = "odd_digit"
	QueryCount    = "count"
	QueryReport   = "report"
)

// RecordPaymentDate records a calculated payment date.
func RecordPaymentDate(adjustment string) {
	PaymentDatesTotal.WithLabelValues(adjustment).Inc()
}

// RecordDateParseError records a rejected date string.
func RecordDateParseError() {
	DateParseErrorsTotal.Inc()
}

// RecordDigitQuery records a digit analyzer query.
func RecordDigitQuery(query string) {
	DigitQueriesTotal.WithLabelValues(query).Inc()
}

// RecordDigitTarget records the target of a digit count query.
func RecordDigitTarget(target int) {
	DigitTargetsTotal.WithLabelValues(TargetLabel(target)).Inc()
}

// TargetLabel returns the label value used for a target digit.
func TargetLabel(target int) string {
	if target < 0 || target > 9 {
		return "out_of_range"
	}
	return strconv.Itoa(target)
}
