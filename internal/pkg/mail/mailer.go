package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/salonhub/salonhub/internal/pkg/env"
)

// Mailer sends notification emails. Sends are fire-and-forget: failures are
// logged by the implementation and never surfaced to request handlers.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends emails via plain SMTP.
type SMTPMailer struct{}

// NewSMTPMailer creates a mailer configured from the environment.
func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// NoopMailer discards all mail. Used in tests and when SMTP is unset.
type NoopMailer struct{}

func (NoopMailer) Send(to, subject, body string) error { return nil }
