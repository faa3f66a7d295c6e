package model

import "context"

// Mailer delivers out-of-band notifications. Failures surface to the caller;
// the lifecycle service decides whether they abort the triggering operation.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
