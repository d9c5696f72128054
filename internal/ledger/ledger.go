// Package ledger holds the in-memory transaction and category stores behind a
// single mutation API. All writes go through the Ledger; every other component
// reads state via Snapshot or reacts to published events.
package ledger

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"budgetbook/internal/core"
	applog "budgetbook/internal/log"
)

type EventType string

const (
	TransactionAdded   EventType = "transaction:added"
	TransactionUpdated EventType = "transaction:updated"
	TransactionDeleted EventType = "transaction:deleted"
	CategoryUpdated    EventType = "category:updated"
	LedgerReset        EventType = "ledger:reset"
)

// Event describes a completed mutation. Transaction is set for transaction
// events, CategoryID for category events.
type Event struct {
	Type        EventType
	Transaction *core.Transaction
	CategoryID  string
}

// State is a read-only snapshot of both stores. Transactions are ordered
// newest-inserted-first; categories keep their seed order.
type State struct {
	Transactions []core.Transaction
	Categories   []core.Category
}

type Ledger struct {
	mu           sync.Mutex
	transactions []core.Transaction
	categories   []core.Category
	edit         EditState
	subscribers  []func(Event)
	clock        func() time.Time
	lastIDMillis int64
}

// New creates a ledger seeded with the initial catalog and demo transactions.
func New() *Ledger {
	return NewWithClock(time.Now)
}

// NewWithClock creates a seeded ledger with an injectable clock, used by id
// generation. Tests pass a fixed clock.
func NewWithClock(clock func() time.Time) *Ledger {
	l := &Ledger{clock: clock, edit: EditState{Phase: EditIdle}}
	l.seed()
	return l
}

func (l *Ledger) seed() {
	l.transactions = core.SeedTransactions()
	l.categories = core.SeedCategories()
}

// Subscribe registers a callback invoked after every mutation. Callbacks run
// outside the ledger lock and may read state.
func (l *Ledger) Subscribe(fn func(Event)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, fn)
}

func (l *Ledger) notify(ev Event) {
	l.mu.Lock()
	subs := append([]func(Event){}, l.subscribers...)
	l.mu.Unlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// Snapshot returns a deep copy of the current state.
func (l *Ledger) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return State{
		Transactions: append([]core.Transaction(nil), l.transactions...),
		Categories:   append([]core.Category(nil), l.categories...),
	}
}

// AddTransaction assigns a fresh id to the draft and prepends it to the
// sequence. The caller-supplied ID field is ignored.
func (l *Ledger) AddTransaction(tx core.Transaction) (core.Transaction, error) {
	tx.ID = ""
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	l.mu.Lock()
	tx.ID = l.nextTransactionID()
	l.transactions = append([]core.Transaction{tx}, l.transactions...)
	l.mu.Unlock()

	slog.Debug("Transaction added", applog.NewFields().
		WithOperation(applog.OpCreate).
		WithTransaction(tx.ID, tx.Amount.Cents, string(tx.Type), tx.CategoryID).
		ToSlice()...)

	l.notify(Event{Type: TransactionAdded, Transaction: &tx})
	return tx, nil
}

// nextTransactionID derives ids from the clock in milliseconds, bumping
// monotonically so rapid successive calls never collide. Callers must hold mu.
func (l *Ledger) nextTransactionID() string {
	ms := l.clock().UnixMilli()
	if ms <= l.lastIDMillis {
		ms = l.lastIDMillis + 1
	}
	l.lastIDMillis = ms
	return "tx-" + strconv.FormatInt(ms, 10)
}

// UpdateTransaction replaces the record with matching id, preserving its
// sequence position. An unknown id leaves the store unchanged.
func (l *Ledger) UpdateTransaction(tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	found := false
	for i := range l.transactions {
		if l.transactions[i].ID == tx.ID {
			l.transactions[i] = tx
			found = true
			break
		}
	}
	l.mu.Unlock()

	if !found {
		slog.Debug("Update for unknown transaction ignored", "id", tx.ID)
		return nil
	}
	l.notify(Event{Type: TransactionUpdated, Transaction: &tx})
	return nil
}

// DeleteTransaction removes the record with matching id; no-op if absent.
func (l *Ledger) DeleteTransaction(id string) {
	l.mu.Lock()
	var removed *core.Transaction
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			tx := l.transactions[i]
			removed = &tx
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			break
		}
	}
	l.mu.Unlock()

	if removed == nil {
		slog.Debug("Delete for unknown transaction ignored", "id", id)
		return
	}
	l.notify(Event{Type: TransactionDeleted, Transaction: removed})
}

// UpdateCategory replaces the stored category with matching id in place. The
// catalog is fixed: an unknown id leaves the collection unchanged.
func (l *Ledger) UpdateCategory(cat core.Category) error {
	if err := cat.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	found := false
	for i := range l.categories {
		if l.categories[i].ID == cat.ID {
			l.categories[i] = cat
			found = true
			break
		}
	}
	l.mu.Unlock()

	if !found {
		slog.Debug("Update for unknown category ignored", "id", cat.ID)
		return nil
	}
	l.notify(Event{Type: CategoryUpdated, CategoryID: cat.ID})
	return nil
}

// Reset restores both stores to their seeded contents and returns the edit
// state to idle. Invoking it twice yields the same state as invoking it once.
func (l *Ledger) Reset() {
	l.mu.Lock()
	l.seed()
	l.edit = EditState{Phase: EditIdle}
	l.mu.Unlock()

	l.notify(Event{Type: LedgerReset})
}

// Transaction looks up a transaction by id.
func (l *Ledger) Transaction(id string) (core.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return core.Transaction{}, false
}

// Category looks up a category by id.
func (l *Ledger) Category(id string) (core.Category, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range l.categories {
		if c.ID == id {
			return c, true
		}
	}
	return core.Category{}, false
}
