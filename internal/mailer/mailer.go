// Package mailer sends outbound notification email for contact form
// submissions.
package mailer

import (
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	gosmtp "net/smtp"
	"strings"
	"time"

	"showcase/internal/config"
	"showcase/internal/models"
)

// Mailer is the interface the contact flow uses to relay notifications.
type Mailer interface {
	SendContactNotification(msg *models.ContactMessage) error
}

// SMTPMailer delivers mail over SMTP with the configured credentials.
type SMTPMailer struct {
	host    string
	port    string
	user    string
	pass    string
	secure  bool
	to      string
	timeout time.Duration
}

// NewSMTPMailer builds a mailer from config. The notification recipient
// is CONTACT_EMAIL, falling back to the SMTP user itself.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	to := cfg.ContactEmail
	if to == "" {
		to = cfg.SMTPUser
	}
	return &SMTPMailer{
		host:    cfg.SMTPHost,
		port:    cfg.SMTPPort,
		user:    cfg.SMTPUser,
		pass:    cfg.SMTPPass,
		secure:  cfg.SMTPSecure,
		to:      to,
		timeout: 10 * time.Second,
	}
}

// SendContactNotification relays a persisted contact message to the
// configured recipient with both text and HTML bodies.
func (m *SMTPMailer) SendContactNotification(msg *models.ContactMessage) error {
	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	text := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", msg.Name, msg.Email, msg.Message)
	html := fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong> %s</p>",
		htmlEscape(msg.Name), htmlEscape(msg.Email), htmlEscape(msg.Message))

	body := m.buildMessage(subject, text, html)

	addr := net.JoinHostPort(m.host, m.port)
	if m.secure {
		return m.sendTLS(addr, body)
	}

	auth := gosmtp.PlainAuth("", m.user, m.pass, m.host)
	return gosmtp.SendMail(addr, auth, m.user, []string{m.to}, []byte(body))
}

// sendTLS delivers over an implicit-TLS connection (typically port 465).
func (m *SMTPMailer) sendTLS(addr, body string) error {
	conn, err := tls.DialWithDialer(&net.Dialer{Timeout: m.timeout}, "tcp", addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return fmt.Errorf("dialing smtp server: %w", err)
	}

	client, err := gosmtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("creating smtp client: %w", err)
	}
	defer client.Close()

	if err := client.Auth(gosmtp.PlainAuth("", m.user, m.pass, m.host)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(m.user); err != nil {
		return err
	}
	if err := client.Rcpt(m.to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(body)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// buildMessage assembles a multipart/alternative MIME message.
func (m *SMTPMailer) buildMessage(subject, text, html string) string {
	boundary := "showcase-alt-boundary"
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", "Portfolio Contact"), m.user)
	fmt.Fprintf(&b, "To: %s\r\n", m.to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", boundary, text)
	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n", boundary, html)
	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.String()
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
