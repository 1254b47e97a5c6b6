// Package digits reports statistics over the decimal digits of an integer.
package digits

// Analyzer answers digit queries about a single candidate integer.
// The sign of the candidate is ignored.
type Analyzer struct {
	candidate int64
}

// NewAnalyzer creates an Analyzer for candidate.
func NewAnalyzer(candidate int64) Analyzer {
	return Analyzer{candidate: candidate}
}

// Candidate returns the analyzed value.
func (a Analyzer) Candidate() int64 {
	return a.candidate
}

// Digits returns the decimal digits of the candidate's absolute value,
// most significant first. Zero yields a single 0.
func (a Analyzer) Digits() []int {
	n := magnitude(a.candidate)
	if n == 0 {
		return []int{0}
	}

	var out []int
	for ; n > 0; n /= 10 {
		out = append(out, int(n%10))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ContainsOddDigit reports whether any digit is 1, 3, 5, 7 or 9.
func (a Analyzer) ContainsOddDigit() bool {
	for n := magnitude(a.candidate); n > 0; n /= 10 {
		if n%2 == 1 {
			return true
		}
	}
	return false
}

// CountOfDigit returns how many times target occurs among the digits.
// Targets outside 0-9 never occur.
func (a Analyzer) CountOfDigit(target int) int {
	if target < 0 || target > 9 {
		return 0
	}
	return a.Frequencies()[target]
}

// Frequencies returns the occurrence count of each digit 0-9.
func (a Analyzer) Frequencies() [10]int {
	var freq [10]int
	n := magnitude(a.candidate)
	if n == 0 {
		freq[0] = 1
		return freq
	}
	for ; n > 0; n /= 10 {
		freq[n%10]++
	}
	return freq
}

// magnitude returns |v| without overflowing on math.MinInt64.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
