package primary

import "fmt"

// ValidationError indicates the caller supplied invalid input.
// Validation failures never reach storage.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotificationError indicates the assignment records were written but the
// notification could not be confirmed. The batch stays pending and can be
// resent by batch ID.
type NotificationError struct {
	BatchID string
	Err     error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification for batch %s failed: %v", e.BatchID, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
