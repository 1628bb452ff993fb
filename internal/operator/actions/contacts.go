package actions

import (
	"context"

	"github.com/carson-networks/ledger-forms/internal/client"
)

type ListContacts struct {
	Contacts []client.Contact
}

func (l *ListContacts) Perform(ctx context.Context, api client.API) error {
	contacts, err := api.ListContacts(ctx)
	if err != nil {
		return err
	}

	l.Contacts = contacts
	return nil
}
