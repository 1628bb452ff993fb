package actions

import (
	"context"

	"github.com/carson-networks/ledger-forms/internal/client"
)

// IAction is one unit of backend work. Actions that produce data store it on
// themselves for the caller to read after Process returns nil.
type IAction interface {
	Perform(ctx context.Context, api client.API) error
}
