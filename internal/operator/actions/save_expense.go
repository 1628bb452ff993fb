package actions

import (
	"context"

	"github.com/carson-networks/ledger-forms/internal/client"
)

type CreateExpense struct {
	Body client.ExpenseCreate
}

func (c *CreateExpense) Perform(ctx context.Context, api client.API) error {
	return api.CreateExpense(ctx, c.Body)
}

type UpdateExpense struct {
	ID   string
	Body client.ExpenseUpdate
}

func (u *UpdateExpense) Perform(ctx context.Context, api client.API) error {
	return api.UpdateExpense(ctx, u.ID, u.Body)
}
