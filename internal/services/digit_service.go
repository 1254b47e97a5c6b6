package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/brokeragelib/brokerage/internal/config"
	"github.com/brokeragelib/brokerage/internal/digits"
	"github.com/brokeragelib/brokerage/internal/metrics"
	"github.com/brokeragelib/brokerage/internal/models"
	"github.com/brokeragelib/brokerage/pkg/logger"
)

// DigitService defines digit analysis operations.
type DigitService interface {
	Analyze(candidate int64) *models.DigitReport
	ContainsOddDigit(candidate int64) bool
	CountOfDigit(candidate int64, target int) int
}

// DigitServiceImpl implements DigitService.
type DigitServiceImpl struct {
	log *logger.Logger
	now func() time.Time
}

var _ DigitService = (*DigitServiceImpl)(nil)

// NewDigitService creates a DigitService from configuration.
// A nil cfg uses config.Default; a nil log is built from cfg with NewLogger.
func NewDigitService(cfg *config.Config, log *logger.Logger) *DigitServiceImpl {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = NewLogger(cfg, nil)
	}
	return &DigitServiceImpl{
		log: log.Named("digits"),
		now: time.Now,
	}
}

// Analyze builds a full digit report for candidate.
func (s *DigitServiceImpl) Analyze(candidate int64) *models.DigitReport {
	a := digits.NewAnalyzer(candidate)
	report := &models.DigitReport{
		ID:               uuid.New(),
		Candidate:        candidate,
		Digits:           a.Digits(),
		ContainsOddDigit: a.ContainsOddDigit(),
		Frequencies:      a.Frequencies(),
		CreatedAt:        s.now().UTC(),
	}

	metrics.RecordDigitQuery(metrics.QueryReport)
	s.log.Debug("digit report built",
		"id", report.ID.String(),
		"candidate", candidate,
		"digit_count", len(report.Digits),
	)
	return report
}

// ContainsOddDigit reports whether candidate has an odd decimal digit.
func (s *DigitServiceImpl) ContainsOddDigit(candidate int64) bool {
	odd := digits.NewAnalyzer(candidate).ContainsOddDigit()
	metrics.RecordDigitQuery(metrics.QueryOddDigit)
	s.log.Debug("odd digit query", "candidate", candidate, "result", odd)
	return odd
}

// CountOfDigit returns the occurrences of target in candidate.
// Targets outside 0-9 return 0 and are logged at warn level.
func (s *DigitServiceImpl) CountOfDigit(candidate int64, target int) int {
	count := digits.NewAnalyzer(candidate).CountOfDigit(target)
	metrics.RecordDigitQuery(metrics.QueryCount)
	metrics.RecordDigitTarget(target)
	if target < 0 || target > 9 {
		s.log.Warn("target digit out of range", "candidate", candidate, "target", target)
		return count
	}
	s.log.Debug("digit count query", "candidate", candidate, "target", target, "result", count)
	return count
}
