package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/taskmeister/internal/ports/secondary"
)

// NopNotifier logs the message instead of sending it. Used for dry runs
// (--no-email) and for stores without SMTP configuration.
type NopNotifier struct {
	log *zap.Logger
}

// NewNopNotifier creates a notifier that confirms every send without
// touching the network.
func NewNopNotifier(log *zap.Logger) *NopNotifier {
	return &NopNotifier{log: log}
}

// Send logs the would-be message and reports success.
func (n *NopNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	n.log.Info("notification suppressed (dry run)",
		zap.String("recipient", recipient),
		zap.String("subject", subject))
	return nil
}

// Ensure NopNotifier implements the interface
var _ secondary.Notifier = (*NopNotifier)(nil)
