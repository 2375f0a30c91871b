// Package notifier abstracts outbound email delivery.
package notifier

import "context"

// Notifier sends HTML email to a single recipient.
type Notifier interface {
	SendHTMLEmail(ctx context.Context, to, subject, htmlBody string) error
}
