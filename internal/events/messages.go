package events

import (
	"encoding/json"
	"time"

	"budgetbook/internal/core"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// TransactionEvent is published on every transaction mutation. It carries the
// full transaction because the ledger state lives in memory and a consumer
// cannot fetch the record by id later.
type TransactionEvent struct {
	Action      string           `json:"action"`
	Transaction core.Transaction `json:"transaction"`
	Timestamp   time.Time        `json:"timestamp"`
}

func NewTransactionEvent(action string, tx core.Transaction) *TransactionEvent {
	return &TransactionEvent{
		Action:      action,
		Transaction: tx,
		Timestamp:   time.Now(),
	}
}

func (m *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var msg TransactionEvent
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
