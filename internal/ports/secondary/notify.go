package secondary

import "context"

// Notifier defines the secondary port for outbound notifications. A nil
// error means the delivery was confirmed; anything else leaves the batch
// pending. Implementations must respect ctx cancellation and deadlines.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
