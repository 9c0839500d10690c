package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/airport-service/config"
	"github.com/Domenick1991/airport-service/internal/kafka"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Mailer is the part of the Resend client the sender uses.
type Mailer interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Sender delivers order notifications through Resend, or only logs them
// when no mailer is configured.
type Sender struct {
	mailer Mailer
	from   string
	log    zerolog.Logger
}

// NewSender returns a log-only sender.
func NewSender(log zerolog.Logger) *Sender {
	return &Sender{log: log.With().Str("component", "email").Logger()}
}

// NewSenderFromConfig uses Resend when cfg carries an API key.
func NewSenderFromConfig(cfg config.EmailConfig, log zerolog.Logger) *Sender {
	s := NewSender(log)
	if cfg.ResendAPIKey != "" {
		s.mailer = resend.NewClient(cfg.ResendAPIKey).Emails
		s.from = cfg.From
	}
	return s
}

func newWithMailer(mailer Mailer, from string, log zerolog.Logger) *Sender {
	s := NewSender(log)
	s.mailer = mailer
	s.from = from
	return s
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	if event.Email == "" {
		return fmt.Errorf("order %d: no recipient", event.OrderID)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.mailer == nil {
		s.log.Info().
			Str("to", event.Email).
			Str("subject", Subject(event)).
			Str("body", Body(event)).
			Msg("send email")
		return nil
	}

	resp, err := s.mailer.Send(&resend.SendEmailRequest{
		From:    s.from,
		To:      []string{event.Email},
		Subject: Subject(event),
		Text:    Body(event),
	})
	if err != nil {
		return fmt.Errorf("failed to send email for order %d: %w", event.OrderID, err)
	}
	s.log.Info().Str("to", event.Email).Str("message_id", resp.Id).Int64("order_id", event.OrderID).Msg("email sent")
	return nil
}

func Subject(event kafka.OrderEvent) string {
	return fmt.Sprintf("Order #%d confirmed", event.OrderID)
}

func Body(event kafka.OrderEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your order #%d has %d ticket(s):", event.OrderID, len(event.Tickets))
	for _, t := range event.Tickets {
		fmt.Fprintf(&b, "\n- %s, row %d seat %d", t.Flight, t.Row, t.Seat)
	}
	return b.String()
}
