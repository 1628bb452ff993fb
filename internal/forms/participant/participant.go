// Package participant keeps the working set of people attached to one
// submission. The set is unique by email, compared case-sensitively; adding an
// email that is already present is a no-op.
package participant

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-forms/internal/client"
	"github.com/carson-networks/ledger-forms/internal/forms"
	"github.com/carson-networks/ledger-forms/internal/operator/actions"
)

type Collector struct {
	logger       *logrus.Logger
	contacts     []client.Contact
	participants []client.Participant
	draft        client.Participant
	showContacts bool
}

func NewCollector(logger *logrus.Logger) *Collector {
	return &Collector{logger: logger}
}

// Load fetches the caller's contacts. A failure is logged and leaves the
// contact list empty; manual entry keeps working. The error is returned for
// hosts that need to tell a failed fetch from an empty list.
func (c *Collector) Load(ctx context.Context, proc forms.Processor) error {
	action := &actions.ListContacts{}
	if err := proc.Process(ctx, action); err != nil {
		c.logger.WithError(err).Error("Participant.Load.error fetching contacts")
		c.contacts = nil
		return err
	}

	c.contacts = action.Contacts
	c.logger.WithField("contactCount", len(c.contacts)).Debug("Participant.Load.complete")
	return nil
}

func (c *Collector) Contacts() []client.Contact {
	return append([]client.Contact(nil), c.contacts...)
}

// Add appends a participant unless email is empty or already present.
func (c *Collector) Add(email, nickname string) bool {
	if email == "" || c.Has(email) {
		return false
	}
	c.participants = append(c.participants, client.Participant{Email: email, Nickname: nickname})
	return true
}

// AddContact adds the contact's user, preferring the saved nickname over the
// user's name for display.
func (c *Collector) AddContact(contact client.Contact) bool {
	nickname := contact.Nickname
	if nickname == "" {
		nickname = contact.User.Name
	}
	return c.Add(contact.User.Email, nickname)
}

// AddContactByID adds a loaded contact by id. It reports false for unknown ids
// as well as duplicates.
func (c *Collector) AddContactByID(id string) bool {
	contact, ok := c.Contact(id)
	if !ok {
		return false
	}
	return c.AddContact(contact)
}

func (c *Collector) Contact(id string) (client.Contact, bool) {
	for _, contact := range c.contacts {
		if contact.ID == id {
			return contact, true
		}
	}
	return client.Contact{}, false
}

func (c *Collector) Remove(email string) {
	kept := c.participants[:0]
	for _, p := range c.participants {
		if p.Email != email {
			kept = append(kept, p)
		}
	}
	c.participants = kept
}

func (c *Collector) Has(email string) bool {
	for _, p := range c.participants {
		if p.Email == email {
			return true
		}
	}
	return false
}

// Participants returns a copy that is never nil.
func (c *Collector) Participants() []client.Participant {
	return append([]client.Participant{}, c.participants...)
}

func (c *Collector) Len() int {
	return len(c.participants)
}

// Clear drops every participant and the draft. Contacts stay loaded.
func (c *Collector) Clear() {
	c.participants = nil
	c.draft = client.Participant{}
}

// -- manual entry row --

func (c *Collector) SetDraftEmail(email string) {
	c.draft.Email = email
}

func (c *Collector) SetDraftNickname(nickname string) {
	c.draft.Nickname = nickname
}

func (c *Collector) Draft() client.Participant {
	return c.draft
}

// AddDraft adds the manual-entry row. The row is cleared only when the add
// succeeds.
func (c *Collector) AddDraft() bool {
	if !c.Add(c.draft.Email, c.draft.Nickname) {
		return false
	}
	c.draft = client.Participant{}
	return true
}

// -- presentation --

func (c *Collector) ToggleContacts() {
	c.showContacts = !c.showContacts
}

// ContactsVisible is true only when the list is toggled on and has entries.
func (c *Collector) ContactsVisible() bool {
	return c.showContacts && len(c.contacts) > 0
}

func (c *Collector) ToggleLabel() string {
	if c.showContacts {
		return "Hide Contacts"
	}
	return "Show My Contacts"
}

func DisplayName(p client.Participant) string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Email
}

func ContactLabel(contact client.Contact) string {
	if contact.Nickname != "" {
		return contact.Nickname
	}
	return contact.User.Name
}
