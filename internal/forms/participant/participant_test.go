package participant

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-forms/internal/client"
	"github.com/carson-networks/ledger-forms/internal/forms/formstest"
	"github.com/carson-networks/ledger-forms/internal/logging"
	"github.com/carson-networks/ledger-forms/internal/operator/actions"
)

var testContacts = []client.Contact{
	{ID: "k1", Nickname: "Sam", User: client.ContactUser{ID: "u1", Name: "Samuel", Email: "sam@example.com"}},
	{ID: "k2", User: client.ContactUser{ID: "u2", Name: "Priya", Email: "priya@example.com"}},
}

type failingProcessor struct{}

func (failingProcessor) Process(context.Context, actions.IAction) error {
	return errors.New("queue unavailable")
}

func newCollector() *Collector {
	return NewCollector(logging.NewLogger(&bytes.Buffer{}))
}

func loadedCollector(t *testing.T) *Collector {
	t.Helper()
	h := formstest.NewHarness(t)
	h.API.On("ListContacts", mock.Anything).Return(testContacts, nil).Once()

	c := NewCollector(h.Deps.Logger)
	require.NoError(t, c.Load(context.Background(), h.Deps.Processor))
	require.Len(t, c.Contacts(), 2)
	return c
}

// -- Load tests --

func TestLoad_Failure_LeavesContactsEmpty(t *testing.T) {
	h := formstest.NewHarness(t)
	h.API.On("ListContacts", mock.Anything).
		Return(nil, &client.Error{Op: "ListContacts", Kind: client.KindStatus, StatusCode: 500}).Once()

	c := NewCollector(h.Deps.Logger)
	err := c.Load(context.Background(), h.Deps.Processor)

	assert.True(t, client.IsKind(err, client.KindStatus))
	assert.Empty(t, c.Contacts())
	assert.Contains(t, h.Logs.String(), "Participant.Load.error")

	assert.True(t, c.Add("a@b.com", ""), "manual entry still works")
}

func TestLoad_ToggleShowsOnlyWhenContactsExist(t *testing.T) {
	c := newCollector()
	c.ToggleContacts()
	assert.False(t, c.ContactsVisible())
	assert.Equal(t, "Hide Contacts", c.ToggleLabel())

	loaded := loadedCollector(t)
	assert.False(t, loaded.ContactsVisible())
	assert.Equal(t, "Show My Contacts", loaded.ToggleLabel())
	loaded.ToggleContacts()
	assert.True(t, loaded.ContactsVisible())
}

// -- Add tests --

func TestAdd_DuplicateEmailIgnored(t *testing.T) {
	c := newCollector()

	assert.True(t, c.Add("a@b.com", "A"))
	assert.False(t, c.Add("a@b.com", "Another"))

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []client.Participant{{Email: "a@b.com", Nickname: "A"}}, c.Participants())
}

func TestAdd_EmailComparisonIsCaseSensitive(t *testing.T) {
	c := newCollector()

	assert.True(t, c.Add("a@b.com", ""))
	assert.True(t, c.Add("A@B.com", ""))
	assert.Equal(t, 2, c.Len())
}

func TestAdd_EmptyEmailIgnored(t *testing.T) {
	c := newCollector()

	assert.False(t, c.Add("", "Nobody"))
	assert.Equal(t, 0, c.Len())
}

func TestAddContact_NicknamePreferred(t *testing.T) {
	c := newCollector()

	assert.True(t, c.AddContact(testContacts[0]))
	assert.True(t, c.AddContact(testContacts[1]))

	assert.Equal(t, []client.Participant{
		{Email: "sam@example.com", Nickname: "Sam"},
		{Email: "priya@example.com", Nickname: "Priya"},
	}, c.Participants())
}

func TestAddContact_DedupByUserEmail(t *testing.T) {
	c := newCollector()
	require.True(t, c.Add("sam@example.com", ""))

	assert.False(t, c.AddContact(testContacts[0]))
	assert.Equal(t, []client.Participant{{Email: "sam@example.com"}}, c.Participants())
}

func TestAddContactByID(t *testing.T) {
	c := loadedCollector(t)

	assert.True(t, c.AddContactByID("k2"))
	assert.False(t, c.AddContactByID("k2"))
	assert.False(t, c.AddContactByID("missing"))
	assert.Equal(t, 1, c.Len())
}

// -- draft row tests --

func TestAddDraft_ClearsOnSuccessOnly(t *testing.T) {
	c := newCollector()

	c.SetDraftEmail("a@b.com")
	c.SetDraftNickname("A")
	assert.True(t, c.AddDraft())
	assert.Equal(t, client.Participant{}, c.Draft())

	c.SetDraftEmail("a@b.com")
	c.SetDraftNickname("Again")
	assert.False(t, c.AddDraft())
	assert.Equal(t, client.Participant{Email: "a@b.com", Nickname: "Again"}, c.Draft())
	assert.Equal(t, 1, c.Len())
}

func TestAddDraft_EmptyEmail(t *testing.T) {
	c := newCollector()
	c.SetDraftNickname("Only nickname")

	assert.False(t, c.AddDraft())
	assert.Equal(t, "Only nickname", c.Draft().Nickname)
}

// -- Remove / Clear tests --

func TestRemove(t *testing.T) {
	c := newCollector()
	c.Add("a@b.com", "")
	c.Add("c@d.com", "")
	c.Add("e@f.com", "")

	c.Remove("c@d.com")
	c.Remove("missing@x.com")

	assert.Equal(t, []client.Participant{{Email: "a@b.com"}, {Email: "e@f.com"}}, c.Participants())
	assert.False(t, c.Has("c@d.com"))
}

func TestParticipants_NeverNilAndCopied(t *testing.T) {
	c := newCollector()
	assert.NotNil(t, c.Participants())

	c.Add("a@b.com", "")
	snapshot := c.Participants()
	snapshot[0].Email = "changed@x.com"
	assert.True(t, c.Has("a@b.com"))
}

func TestClear_KeepsContacts(t *testing.T) {
	c := loadedCollector(t)
	c.Add("a@b.com", "")
	c.SetDraftEmail("draft@x.com")

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, client.Participant{}, c.Draft())
	assert.Len(t, c.Contacts(), 2)
}

// -- presentation helpers --

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "A", DisplayName(client.Participant{Email: "a@b.com", Nickname: "A"}))
	assert.Equal(t, "a@b.com", DisplayName(client.Participant{Email: "a@b.com"}))
}

func TestContactLabel(t *testing.T) {
	assert.Equal(t, "Sam", ContactLabel(testContacts[0]))
	assert.Equal(t, "Priya", ContactLabel(testContacts[1]))
}

func TestLoad_ProcessorError(t *testing.T) {
	c := newCollector()
	assert.Error(t, c.Load(context.Background(), failingProcessor{}))
	assert.Empty(t, c.Contacts())
}
