package actions

import (
	"context"

	"github.com/carson-networks/ledger-forms/internal/client"
)

type CreateCategory struct {
	Name  string
	Color string

	Created *client.Category
}

func (c *CreateCategory) Perform(ctx context.Context, api client.API) error {
	category, err := api.CreateCategory(ctx, client.CategoryCreate{
		Name:  c.Name,
		Color: c.Color,
	})
	if err != nil {
		return err
	}

	c.Created = category
	return nil
}
