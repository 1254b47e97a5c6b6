// Package models contains the records produced by the service layer.
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation errors
var (
	ErrMissingID         = errors.New("record id cannot be empty")
	ErrWeekendDueDate    = errors.New("due date falls on a weekend")
	ErrDueBeforeProposed = errors.New("due date is before the proposed date")
	ErrFrequencyMismatch = errors.New("digit frequencies do not match digit count")
)

// PaymentSchedule is a computed payment date for a proposed date.
type PaymentSchedule struct {
	ID           uuid.UUID `json:"id"`
	ProposedDate time.Time `json:"proposed_date"`
	DueDate      time.Time `json:"due_date"`
	Adjustment   string    `json:"adjustment"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks the schedule's invariants.
func (p *PaymentSchedule) Validate() error {
	if p.ID == uuid.Nil {
		return ErrMissingID
	}
	switch p.DueDate.Weekday() {
	case time.Saturday, time.Sunday:
		return ErrWeekendDueDate
	}
	if p.DueDate.Before(p.ProposedDate) {
		return ErrDueBeforeProposed
	}
	return nil
}

// DaysUntilDue returns the number of calendar days from the proposed date to the due date.
func (p *PaymentSchedule) DaysUntilDue() int {
	py, pm, pd := p.ProposedDate.Date()
	dy, dm, dd := p.DueDate.Date()
	from := time.Date(py, pm, pd, 0, 0, 0, 0, time.UTC)
	to := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// DigitReport summarises the decimal digits of a candidate.
type DigitReport struct {
	ID               uuid.UUID `json:"id"`
	Candidate        int64     `json:"candidate"`
	Digits           []int     `json:"digits"`
	ContainsOddDigit bool      `json:"contains_odd_digit"`
	Frequencies      [10]int   `json:"frequencies"`
	CreatedAt        time.Time `json:"created_at"`
}

// Validate checks the report's invariants.
func (r *DigitReport) Validate() error {
	if r.ID == uuid.Nil {
		return ErrMissingID
	}
	sum := 0
	for _, n := range r.Frequencies {
		if n < 0 {
			return ErrFrequencyMismatch
		}
		sum += n
	}
	if sum != len(r.Digits) {
		return ErrFrequencyMismatch
	}
	return nil
}

// CountOf returns the frequency of digit d, or 0 outside 0-9.
func (r *DigitReport) CountOf(d int) int {
	if d < 0 || d > 9 {
		return 0
	}
	return r.Frequencies[d]
}
