package actions

import (
	"context"

	"github.com/carson-networks/ledger-forms/internal/client"
)

type CreateBorrowLend struct {
	Body client.BorrowLendCreate
}

func (c *CreateBorrowLend) Perform(ctx context.Context, api client.API) error {
	return api.CreateBorrowLend(ctx, c.Body)
}

type UpdateBorrowLend struct {
	ID   string
	Body client.BorrowLendUpdate
}

func (u *UpdateBorrowLend) Perform(ctx context.Context, api client.API) error {
	return api.UpdateBorrowLend(ctx, u.ID, u.Body)
}
