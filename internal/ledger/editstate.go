package ledger

// EditPhase tags the transient dialog state of the presentation layer.
// Modeling it as one tagged value instead of independent flags makes the
// combination "editing with no target" unrepresentable.
type EditPhase string

const (
	EditIdle    EditPhase = "idle"
	EditAdding  EditPhase = "adding"
	EditEditing EditPhase = "editing"
)

// EditState is the current dialog state. TransactionID is set only while
// Phase is EditEditing.
type EditState struct {
	Phase         EditPhase `json:"phase"`
	TransactionID string    `json:"transactionId,omitempty"`
}

// Edit returns the current edit state.
func (l *Ledger) Edit() EditState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.edit
}

// StartAdding moves the dialog into the adding phase.
func (l *Ledger) StartAdding() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.edit = EditState{Phase: EditAdding}
}

// StartEditing moves the dialog into the editing phase targeting the given
// transaction. It reports false, without transitioning, when the id is
// unknown.
func (l *Ledger) StartEditing(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, tx := range l.transactions {
		if tx.ID == id {
			l.edit = EditState{Phase: EditEditing, TransactionID: id}
			return true
		}
	}
	return false
}

// StopEditing returns the dialog to idle, clearing any edit target.
func (l *Ledger) StopEditing() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.edit = EditState{Phase: EditIdle}
}
