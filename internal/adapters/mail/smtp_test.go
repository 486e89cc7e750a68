package mail

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/example/taskmeister/internal/config"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("mailer@x.com", "ana@x.com", "Work Assignment - 01.05.2024", "Hello Ana,\n\nDate: 01.05.2024"))

	for _, want := range []string{
		"From: mailer@x.com\r\n",
		"To: ana@x.com\r\n",
		"Subject: Work Assignment - 01.05.2024\r\n",
		"Content-Type: text/plain; charset=utf-8\r\n",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}

	if strings.Contains(msg, "Date: 01.05.2024\n\r\n") {
		t.Error("body line endings must be normalized to CRLF")
	}
	if !strings.Contains(msg, "Hello Ana,\r\n\r\nDate: 01.05.2024") {
		t.Errorf("body not carried over with CRLF endings:\n%s", msg)
	}
}

func TestSMTPNotifierTimeout(t *testing.T) {
	cfg := config.Default()
	// Reserved TEST-NET address: connection attempts hang or fail fast,
	// either way the bounded send must return an error.
	cfg.SMTPHost = "192.0.2.1"
	cfg.SMTPPort = 2525
	cfg.From = "mailer@x.com"
	cfg.NotifyTimeoutSecs = 1

	n := NewSMTPNotifier(cfg, zap.NewNop())

	start := time.Now()
	err := n.Send(context.Background(), "ana@x.com", "subject", "body")
	if err == nil {
		t.Fatal("expected error for unreachable smtp server")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("send was not bounded by the timeout, took %v", elapsed)
	}
}

func TestNopNotifierAlwaysSucceeds(t *testing.T) {
	n := NewNopNotifier(zap.NewNop())
	if err := n.Send(context.Background(), "ana@x.com", "subject", "body"); err != nil {
		t.Errorf("nop notifier must not fail: %v", err)
	}
}
