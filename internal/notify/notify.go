package notify

import (
	"context"
	"fmt"

	"github.com/andinovuelo/flightops/internal/kafka"
)

// Notifier fans audit events out to the operations channel. The real
// integration (mail, chat webhook) sits behind this; the default writes
// to stdout.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Notify(ctx context.Context, event kafka.AuditEvent) error {
	fmt.Printf("audit: %s %s %d by %s: %s\n", event.Type, event.EntityType, event.EntityID, event.Actor, event.Detail)
	return nil
}
