// Package notify publishes notification messages to a RabbitMQ queue. A
// separate mailer worker consumes the queue and delivers the actual emails;
// the API only hands the message off. Publish failures are logged by callers
// and never retried.
package notify

import "context"

// Sender hands an activation email off for delivery.
type Sender interface {
	SendActivationEmail(ctx context.Context, email, name, token string) error
}

// Noop is a Sender that discards every message. Used when no AMQP broker is
// configured and in tests.
type Noop struct{}

// SendActivationEmail implements Sender.
func (Noop) SendActivationEmail(context.Context, string, string, string) error {
	return nil
}
