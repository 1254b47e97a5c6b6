package payment

import (
	"testing"
	"time"
)

func BenchmarkCalculateFuturePaymentDate(b *testing.B) {
	proposed := time.Date(2011, time.July, 7, 0, 0, 0, 0, time.UTC)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if got := CalculateFuturePaymentDate(proposed); !IsWeekday(got) {
				b.Errorf("weekend result %v", got)
			}
		}
	})
}

func BenchmarkParseDate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ParseDate("7/6/2011"); err != nil {
			b.Fatal(err)
		}
	}
}
