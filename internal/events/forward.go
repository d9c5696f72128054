package events

import (
	"context"
	"log/slog"
	"time"

	"budgetbook/internal/ledger"
	applog "budgetbook/internal/log"
)

// Publisher is the subset of Client the forwarder needs.
type Publisher interface {
	PublishTransactionEvent(ctx context.Context, msg *TransactionEvent) error
}

// Forward subscribes to the ledger and publishes every transaction mutation.
// Publishing happens off the mutation path; failures are logged, never
// surfaced to the caller that edited the ledger.
func Forward(l *ledger.Ledger, pub Publisher) {
	l.Subscribe(func(ev ledger.Event) {
		action := actionFor(ev.Type)
		if action == "" || ev.Transaction == nil {
			return
		}
		msg := NewTransactionEvent(action, *ev.Transaction)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := pub.PublishTransactionEvent(ctx, msg); err != nil {
				slog.ErrorContext(ctx, "Failed to publish transaction event",
					applog.FieldAction, action,
					applog.FieldTransactionID, msg.Transaction.ID,
					applog.FieldError, err)
			}
		}()
	})
}

func actionFor(t ledger.EventType) string {
	switch t {
	case ledger.TransactionAdded:
		return ActionCreated
	case ledger.TransactionUpdated:
		return ActionUpdated
	case ledger.TransactionDeleted:
		return ActionDeleted
	default:
		return ""
	}
}
