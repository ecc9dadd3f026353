package notifications

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Bovice22/axequacks-app-sub000/internal/reservations"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/config"
	"github.com/Bovice22/axequacks-app-sub000/pkg/logger"
)

// EmailService sends guest-facing booking mail.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, event reservations.BookingEvent) error
	SendBookingCancellation(ctx context.Context, event reservations.BookingEvent) error
}

// SMTPEmailService delivers through a plain SMTP relay.
type SMTPEmailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	return &SMTPEmailService{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.FromEmail,
	}
}

func (s *SMTPEmailService) SendBookingConfirmation(ctx context.Context, event reservations.BookingEvent) error {
	subject := fmt.Sprintf("Booking confirmed: %s", event.BookingRef)
	body := confirmationBody(event)
	return s.send(event.GuestEmail, subject, body)
}

func (s *SMTPEmailService) SendBookingCancellation(ctx context.Context, event reservations.BookingEvent) error {
	subject := fmt.Sprintf("Booking cancelled: %s", event.BookingRef)
	body := cancellationBody(event)
	return s.send(event.GuestEmail, subject, body)
}

func (s *SMTPEmailService) send(to, subject, body string) error {
	var message strings.Builder
	message.WriteString(fmt.Sprintf("From: %s\r\n", s.from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(message.String())); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// LogEmailService logs instead of sending. Used in development when no SMTP
// relay is configured.
type LogEmailService struct{}

func (LogEmailService) SendBookingConfirmation(ctx context.Context, event reservations.BookingEvent) error {
	logger.GetDefault().InfoWithContext(ctx, "booking confirmation email (dev mode)", map[string]interface{}{
		"to":          event.GuestEmail,
		"booking_ref": event.BookingRef,
		"date_key":    event.DateKey,
	})
	return nil
}

func (LogEmailService) SendBookingCancellation(ctx context.Context, event reservations.BookingEvent) error {
	logger.GetDefault().InfoWithContext(ctx, "booking cancellation email (dev mode)", map[string]interface{}{
		"to":          event.GuestEmail,
		"booking_ref": event.BookingRef,
	})
	return nil
}

func confirmationBody(event reservations.BookingEvent) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour booking is confirmed.\n\nReference: %s\nDate: %s\nStart: %s\nActivity: %s\nParty size: %d\nTotal: $%.2f\n\nSee you soon!\nAxeQuacks\n",
		event.GuestName,
		event.BookingRef,
		event.DateKey,
		formatMinute(event.StartMin),
		event.ActivityLabel,
		event.PartySize,
		float64(event.TotalCents)/100,
	)
}

func cancellationBody(event reservations.BookingEvent) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour booking %s on %s has been cancelled.\n\nWe hope to see you another time.\nAxeQuacks\n",
		event.GuestName,
		event.BookingRef,
		event.DateKey,
	)
}

// formatMinute renders minutes from midnight as a clock time, e.g. 1020 -> 17:00.
func formatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
