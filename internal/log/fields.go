package log

// Shared field names so log lines stay greppable across packages.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldError     = "error"
	FieldOperation = "operation"

	FieldUserID        = "user_id"
	FieldTransactionID = "transaction_id"
	FieldCategoryID    = "category_id"
	FieldAmountCents   = "amount_cents"
	FieldTxType        = "transaction_type"
	FieldAction        = "action"
	FieldSheetsRef     = "sheets_ref"
)

// Component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentAuth    = "auth"
	ComponentStorage = "storage"
	ComponentEvents  = "events"
	ComponentWorker  = "worker"
	ComponentExport  = "export"
	ComponentCache   = "cache"
)

// Operation names.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpReset  = "reset"
	OpLogin  = "login"
	OpLogout = "logout"
	OpSignup = "signup"
	OpExport = "export"
)

// LogFields builds key/value pairs for slog calls.
type LogFields map[string]any

func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithTransaction records the identifying attributes of a transaction.
func (f LogFields) WithTransaction(id string, amountCents int64, txType, categoryID string) LogFields {
	f[FieldTransactionID] = id
	f[FieldAmountCents] = amountCents
	f[FieldTxType] = txType
	f[FieldCategoryID] = categoryID
	return f
}

// ToSlice flattens the fields into slog argument order.
func (f LogFields) ToSlice() []any {
	out := make([]any, 0, len(f)*2)
	for k, v := range f {
		out = append(out, k, v)
	}
	return out
}
