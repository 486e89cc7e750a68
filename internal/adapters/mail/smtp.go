// Package mail contains notifier implementations for outbound assignment
// mail.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/taskmeister/internal/config"
	"github.com/example/taskmeister/internal/ports/secondary"
)

// SMTPNotifier implements secondary.Notifier over SMTP with STARTTLS.
// Every send is bounded by the configured timeout; a timeout counts as a
// failed delivery and the caller keeps the batch pending.
type SMTPNotifier struct {
	host    string
	port    int
	user    string
	pass    string
	from    string
	timeout time.Duration
	log     *zap.Logger
}

// NewSMTPNotifier creates a notifier from the application configuration.
func NewSMTPNotifier(cfg *config.Config, log *zap.Logger) *SMTPNotifier {
	timeout := time.Duration(cfg.NotifyTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = config.DefaultNotifyTimeoutSecs * time.Second
	}
	return &SMTPNotifier{
		host:    cfg.SMTPHost,
		port:    cfg.SMTPPort,
		user:    cfg.SMTPUser,
		pass:    cfg.SMTPPass,
		from:    cfg.From,
		timeout: timeout,
		log:     log,
	}
}

// Send delivers one message and returns only after the server accepted it.
func (n *SMTPNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	addr := net.JoinHostPort(n.host, fmt.Sprintf("%d", n.port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return fmt.Errorf("failed to set send deadline: %w", err)
		}
	}

	client, err := smtp.NewClient(conn, n.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to start smtp session: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: n.host}); err != nil {
			return fmt.Errorf("failed to start tls: %w", err)
		}
	}

	if n.user != "" {
		auth := smtp.PlainAuth("", n.user, n.pass, n.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := client.Mail(n.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open message body: %w", err)
	}
	if _, err := w.Write(buildMessage(n.from, recipient, subject, body)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	if err := client.Quit(); err != nil {
		n.log.Warn("smtp quit failed after accepted message", zap.Error(err))
	}

	n.log.Info("notification sent",
		zap.String("recipient", recipient),
		zap.String("subject", subject))

	return nil
}

// buildMessage assembles the RFC 5322 message with CRLF line endings.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// Ensure SMTPNotifier implements the interface
var _ secondary.Notifier = (*SMTPNotifier)(nil)
