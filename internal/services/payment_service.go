// Package services wraps the payment and digit helpers with logging, metrics and record IDs.
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brokeragelib/brokerage/internal/config"
	"github.com/brokeragelib/brokerage/internal/metrics"
	"github.com/brokeragelib/brokerage/internal/models"
	"github.com/brokeragelib/brokerage/internal/payment"
	"github.com/brokeragelib/brokerage/pkg/logger"
)

// PaymentService defines payment scheduling operations.
type PaymentService interface {
	Schedule(proposed time.Time) *models.PaymentSchedule
	ScheduleFromString(s string) (*models.PaymentSchedule, error)
}

// PaymentServiceImpl implements PaymentService.
type PaymentServiceImpl struct {
	calc     payment.Calculator
	location *time.Location
	log      *logger.Logger
	now      func() time.Time
}

var _ PaymentService = (*PaymentServiceImpl)(nil)

// NewPaymentService creates a PaymentService from configuration.
// A nil cfg uses config.Default; a nil log is built from cfg with NewLogger.
func NewPaymentService(cfg *config.Config, log *logger.Logger) *PaymentServiceImpl {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = NewLogger(cfg, nil)
	}
	loc := cfg.Payment.Location
	if loc == nil {
		loc = time.UTC
	}
	return &PaymentServiceImpl{
		calc:     payment.NewCalculator(cfg.Payment.OffsetDays),
		location: loc,
		log:      log.Named("payment"),
		now:      time.Now,
	}
}

// Schedule computes the payment date for proposed.
func (s *PaymentServiceImpl) Schedule(proposed time.Time) *models.PaymentSchedule {
	due, adj := s.calc.FuturePaymentDate(proposed)
	y, m, d := proposed.Date()

	schedule := &models.PaymentSchedule{
		ID:           uuid.New(),
		ProposedDate: time.Date(y, m, d, 0, 0, 0, 0, proposed.Location()),
		DueDate:      due,
		Adjustment:   adj.String(),
		CreatedAt:    s.now().UTC(),
	}

	metrics.RecordPaymentDate(schedule.Adjustment)
	s.log.Debug("payment date calculated",
		"id", schedule.ID.String(),
		"proposed_date", schedule.ProposedDate.Format(time.DateOnly),
		"due_date", due.Format(time.DateOnly),
		"adjustment", schedule.Adjustment,
	)

	return schedule
}

// ScheduleFromString parses value in the configured location and schedules it.
func (s *PaymentServiceImpl) ScheduleFromString(value string) (*models.PaymentSchedule, error) {
	proposed, err := payment.ParseDateIn(value, s.location)
	if err != nil {
		metrics.RecordDateParseError()
		s.log.Warn("rejected proposed date", "input", value, "error", err.Error())
		return nil, fmt.Errorf("failed to parse proposed date: %w", err)
	}
	return s.Schedule(proposed), nil
}

// OffsetDays returns the calculator's offset.
func (s *PaymentServiceImpl) OffsetDays() int {
	return s.calc.OffsetDays()
}
