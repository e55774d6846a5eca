// Package mailer relays contact-form submissions to the project inbox.
package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/MuneelHaider/NeuroFusion-sub000/internal/dto"
)

// Config holds SMTP relay configuration
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	Recipients []string
}

// Mailer sends contact notifications
type Mailer interface {
	// SendContactNotification relays a contact form submission to the
	// configured recipients.
	SendContactNotification(ctx context.Context, req *dto.ContactRequest) error
}

// SMTPMailer implements Mailer over SMTP
type SMTPMailer struct {
	config *Config
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{config: config}
}

// SendContactNotification relays a contact form submission
func (m *SMTPMailer) SendContactNotification(ctx context.Context, req *dto.ContactRequest) error {
	if len(m.config.Recipients) == 0 {
		return fmt.Errorf("no contact recipients configured")
	}

	msg := mail.NewMsg()
	if err := msg.From(m.config.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(m.config.Recipients...); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	subject := "NeuroFusion Interest - General Inquiry"
	if req.RequestAccess {
		subject = "NeuroFusion Interest - ACCESS REQUESTED"
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, renderBody(req))

	client, err := mail.NewClient(m.config.Host,
		mail.WithPort(m.config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.Username),
		mail.WithPassword(m.config.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

func renderBody(req *dto.ContactRequest) string {
	orNotProvided := func(s string) string {
		if s == "" {
			return "Not provided"
		}
		return html.EscapeString(s)
	}

	access := "NO"
	if req.RequestAccess {
		access = "YES"
	}

	var b strings.Builder
	b.WriteString("<h1>New NeuroFusion Interest</h1>")
	b.WriteString("<h2>Contact Information</h2>")
	fmt.Fprintf(&b, "<p><strong>Full Name:</strong> %s</p>", html.EscapeString(req.FullName))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(req.Email))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", orNotProvided(req.Phone))
	fmt.Fprintf(&b, "<p><strong>Location:</strong> %s</p>", orNotProvided(req.Location))
	fmt.Fprintf(&b, "<p><strong>Request Access:</strong> %s</p>", access)
	b.WriteString("<h3>Their Message</h3>")
	fmt.Fprintf(&b, "<blockquote>%s</blockquote>", html.EscapeString(req.Message))
	fmt.Fprintf(&b, "<p><small>Sent from the NeuroFusion contact form at %s</small></p>",
		time.Now().Format(time.RFC1123))
	return b.String()
}
