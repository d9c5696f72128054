package export

import (
	"context"

	"budgetbook/internal/core"
)

// TransactionWriter is the outbound port the worker appends through.
type TransactionWriter interface {
	Append(ctx context.Context, action string, tx core.Transaction) (rowRef string, err error)
}
