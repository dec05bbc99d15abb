package leads

import (
	"context"
	"time"

	"github.com/nobug-il/leadgen/internal/observability/metrics"
	"github.com/nobug-il/leadgen/pkg/logging"
)

// Dispatcher sends the owner notification (and best-effort customer
// confirmation) for a validated lead.
type Dispatcher interface {
	NotifyNewLead(ctx context.Context, lead *Lead) error

	// LogOnly reports whether the dispatcher is running without a provider
	// credential and records leads to the log instead of emailing them.
	LogOnly() bool
}

// Service is the single validation + dispatch pipeline behind every endpoint
// adapter. Both the HTTP handler and the serverless function call Submit so
// the two surfaces cannot drift apart.
type Service struct {
	dispatcher Dispatcher
	metrics    *metrics.LeadMetrics
	logger     *logging.Logger
}

// NewService creates a submission service
func NewService(dispatcher Dispatcher, m *metrics.LeadMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		dispatcher: dispatcher,
		metrics:    m,
		logger:     logger,
	}
}

// Submit validates the request and dispatches the owner notification.
// Validation failures return a *ValidationError; dispatch failures return the
// dispatcher's error. The lead only exists for the duration of this call.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if verr := req.Validate(); verr != nil {
		s.logger.Info("submission rejected", "kind", string(verr.Kind), "city", req.City)
		s.metrics.ObserveSubmission("rejected_" + string(verr.Kind))
		return nil, verr
	}

	lead := &Lead{
		Name:        req.Name,
		Phone:       req.Phone,
		City:        req.City,
		Email:       req.Email,
		SubmittedAt: time.Now(),
	}

	s.logger.Info("submission received", "name", lead.Name, "city", lead.City)

	if err := s.dispatcher.NotifyNewLead(ctx, lead); err != nil {
		s.metrics.ObserveSubmission("dispatch_failed")
		return nil, err
	}

	s.metrics.ObserveSubmission("dispatched")

	result := &SubmitResult{Success: true}
	if s.dispatcher.LogOnly() {
		result.Message = "Form submitted successfully (logged to console)"
	}
	return result, nil
}
