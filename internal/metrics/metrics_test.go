package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentDate(t *testing.T) {
	before := testutil.ToFloat64(PaymentDatesTotal.WithLabelValues("sunday"))

	RecordPaymentDate("sunday")
	RecordPaymentDate("sunday")

	assert.Equal(t, before+2, testutil.ToFloat64(PaymentDatesTotal.WithLabelValues("sunday")))
}

func TestRecordDateParseError(t *testing.T) {
	before := testutil.ToFloat64(DateParseErrorsTotal)

	RecordDateParseError()

	assert.Equal(t, before+1, testutil.ToFloat64(DateParseErrorsTotal))
}

func TestRecordDigitQuery(t *testing.T) {
	before := testutil.ToFloat64(DigitQueriesTotal.WithLabelValues(QueryOddDigit))

	RecordDigitQuery(QueryOddDigit)

	assert.Equal(t, before+1, testutil.ToFloat64(DigitQueriesTotal.WithLabelValues(QueryOddDigit)))
}

func TestRecordDigitTarget(t *testing.T) {
	before := testutil.ToFloat64(DigitTargetsTotal.WithLabelValues("out_of_range"))

	RecordDigitTarget(11)
	RecordDigitTarget(-1)

	assert.Equal(t, before+2, testutil.ToFloat64(DigitTargetsTotal.WithLabelValues("out_of_range")))
}

func TestTargetLabel(t *testing.T) {
	tests := []struct {
		target   int
		expected string
	}{
		{0, "0"},
		{9, "9"},
		{10, "out_of_range"},
		{-1, "out_of_range"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TargetLabel(tt.target))
	}
}

func TestMetricsRegistered(t *testing.T) {
	RecordPaymentDate("none")
	RecordDigitQuery(QueryReport)
	RecordDigitTarget(4)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Subset(t, names, []string{
		"payment_dates_calculated_total",
		"payment_date_parse_errors_total",
		"digit_queries_total",
		"digit_count_targets_total",
	})
}
