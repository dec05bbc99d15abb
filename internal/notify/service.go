package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/nobug-il/leadgen/internal/leads"
	"github.com/nobug-il/leadgen/internal/observability/metrics"
	"github.com/nobug-il/leadgen/pkg/logging"
)

// Config holds the fixed addressing for lead notifications.
type Config struct {
	// OwnerEmail receives every valid lead.
	OwnerEmail string

	// ReplyTo is set on both outbound messages.
	ReplyTo string

	// Timezone renders the submission timestamp in the business's local
	// time. Invalid or empty values fall back to UTC.
	Timezone string
}

// Service dispatches lead notifications: one owner email per valid lead, and
// a best-effort confirmation to the customer when they left an address.
type Service struct {
	sender  EmailSender
	cfg     Config
	loc     *time.Location
	metrics *metrics.LeadMetrics
	logger  *logging.Logger
	logOnly bool
}

// NewService creates a notification service. A nil sender selects the stub
// fallback so submissions keep succeeding without a provider credential.
func NewService(sender EmailSender, cfg Config, m *metrics.LeadMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}

	logOnly := false
	if sender == nil {
		sender = NewStubEmailSender(logger)
		logOnly = true
	} else if _, ok := sender.(*StubEmailSender); ok {
		logOnly = true
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil || cfg.Timezone == "" {
		loc = time.UTC
	}

	return &Service{
		sender:  sender,
		cfg:     cfg,
		loc:     loc,
		metrics: m,
		logger:  logger,
		logOnly: logOnly,
	}
}

// LogOnly reports whether the service records leads to the log instead of
// emailing them.
func (s *Service) LogOnly() bool {
	return s.logOnly
}

// NotifyNewLead sends the owner notification for a validated lead. A provider
// failure on the owner message returns a *DispatchError. The customer
// confirmation is attempted afterwards when an email was supplied; its
// failure is logged and swallowed.
func (s *Service) NotifyNewLead(ctx context.Context, lead *leads.Lead) error {
	submitted := lead.SubmittedAt
	if submitted.IsZero() {
		submitted = time.Now()
	}
	timestamp := submitted.In(s.loc).Format("02/01/2006, 15:04:05")

	if s.logOnly {
		// No provider credential: record the lead so nothing is lost.
		s.logger.Info("form submission (no email provider configured)",
			"name", lead.Name,
			"phone", lead.Phone,
			"city", lead.City,
			"email", orNotProvided(lead.Email),
			"submitted_at", timestamp,
		)
	}

	owner := EmailMessage{
		To:      s.cfg.OwnerEmail,
		Subject: fmt.Sprintf("🐜 New Pest Control Lead from %s", lead.City),
		Body:    ownerText(lead, timestamp),
		HTML:    ownerHTML(lead, timestamp),
		ReplyTo: s.cfg.ReplyTo,
	}

	start := time.Now()
	if err := s.sender.Send(ctx, owner); err != nil {
		s.metrics.ObserveDispatchLatency("owner", time.Since(start).Seconds())
		s.logger.Error("owner notification failed", "error", err, "city", lead.City)
		return &DispatchError{Err: err}
	}
	s.metrics.ObserveDispatchLatency("owner", time.Since(start).Seconds())
	s.logger.Info("owner notification sent", "city", lead.City)

	if lead.Email != "" {
		s.sendConfirmation(ctx, lead)
	}

	return nil
}

// sendConfirmation sends the customer-facing acknowledgment. Errors never
// propagate: the lead already reached the owner.
func (s *Service) sendConfirmation(ctx context.Context, lead *leads.Lead) {
	msg := EmailMessage{
		To:      lead.Email,
		ToName:  lead.Name,
		Subject: "🐜 תודה על פנייתך - נובאג הדברה",
		Body:    confirmationText(lead),
		HTML:    confirmationHTML(lead),
		ReplyTo: s.cfg.ReplyTo,
	}

	start := time.Now()
	err := s.sender.Send(ctx, msg)
	s.metrics.ObserveDispatchLatency("confirmation", time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("customer confirmation failed", "error", err, "to", lead.Email)
		return
	}
	s.logger.Info("customer confirmation sent", "to", lead.Email)
}

func orNotProvided(v string) string {
	if v == "" {
		return "Not provided"
	}
	return v
}

var _ leads.Dispatcher = (*Service)(nil)
