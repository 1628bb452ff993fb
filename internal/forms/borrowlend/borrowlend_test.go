package borrowlend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-forms/internal/client"
	"github.com/carson-networks/ledger-forms/internal/forms"
	"github.com/carson-networks/ledger-forms/internal/forms/formstest"
	"github.com/carson-networks/ledger-forms/internal/operator"
)

func fillLoan(f *Form) {
	f.SetTitle("Rent")
	f.SetAmount("100")
	f.SetCategoryID("c1")
}

// -- presentation --

func TestNew_DefaultsToBorrow(t *testing.T) {
	h := formstest.NewHarness(t)
	f := New(h.Deps, nil, nil, forms.Callbacks{})

	assert.Equal(t, Values{Type: client.Borrow}, f.Values())
	assert.Equal(t, "Add Borrow/Lend Record", f.Heading())
	assert.Equal(t, "Track money you borrowed or lent to others.", f.Subheading())
	assert.Equal(t, "Create Record", f.SubmitLabel())
	assert.True(t, f.ShowsParticipantPanel())
	assert.Equal(t, "Borrowed From", f.PanelTitle())
	assert.Equal(t, "Add the person you borrowed from", f.PanelDescription())

	f.SetType(client.Lend)
	assert.Equal(t, "Lent To", f.PanelTitle())
	assert.Equal(t, "Add the person you lent money to", f.PanelDescription())
}

func TestNew_EditMode(t *testing.T) {
	h := formstest.NewHarness(t)
	record := ExistingRecord{ID: "b1", Title: "Rent", Amount: decimal.RequireFromString("12.30"), CategoryID: "c1", Type: client.Lend}
	f := New(h.Deps, nil, record, forms.Callbacks{})

	assert.True(t, f.Editing())
	assert.Equal(t, Values{Title: "Rent", Amount: "12.3", CategoryID: "c1", Type: client.Lend}, f.Values())
	assert.Equal(t, "Edit Borrow/Lend", f.Heading())
	assert.Equal(t, "Update your borrow/lend record.", f.Subheading())
	assert.Equal(t, "Update Record", f.SubmitLabel())
	assert.False(t, f.ShowsParticipantPanel())
}

// -- submission --

func TestSubmit_InvalidType(t *testing.T) {
	h := formstest.NewHarness(t)
	f := New(h.Deps, nil, nil, forms.Callbacks{})
	fillLoan(f)
	f.SetType("GIFT")

	result := f.Submit(context.Background())

	assert.Equal(t, forms.OutcomeInvalid, result.Outcome)
	msg, ok := result.Errors.Field("type")
	assert.True(t, ok)
	assert.Equal(t, "Please select borrow or lend", msg)
	assert.Len(t, result.Errors.Errors(), 1)
	h.API.AssertNotCalled(t, "CreateBorrowLend", mock.Anything, mock.Anything)
}

func TestSubmit_EmptyTypeIsInvalid(t *testing.T) {
	h := formstest.NewHarness(t)
	f := New(h.Deps, nil, nil, forms.Callbacks{})
	fillLoan(f)
	f.SetType("")

	result := f.Submit(context.Background())
	msg, ok := result.Errors.Field("type")
	assert.True(t, ok)
	assert.Equal(t, "Please select borrow or lend", msg)
}

func TestSubmit_CreateSendsParticipants(t *testing.T) {
	h := formstest.NewHarness(t)
	h.API.On("CreateBorrowLend", mock.Anything, client.BorrowLendCreate{
		Title:        "Rent",
		Amount:       "100",
		CategoryID:   "c1",
		Type:         client.Lend,
		Participants: []client.Participant{{Email: "sam@example.com", Nickname: "Sam"}},
	}).Return(nil).Once()

	created := &formstest.Counter{}
	f := New(h.Deps, nil, nil, forms.Callbacks{OnCreated: created.Inc})
	fillLoan(f)
	f.SetType(client.Lend)
	f.Participants.Add("sam@example.com", "Sam")

	result := f.Submit(context.Background())

	assert.Equal(t, forms.OutcomeSaved, result.Outcome)
	assert.Equal(t, 1, created.N)
	assert.Equal(t, Values{Type: client.Borrow}, f.Values())
	assert.Equal(t, 0, f.Participants.Len())
}

func TestSubmit_CreateWithoutParticipantsSendsEmptyList(t *testing.T) {
	h := formstest.NewHarness(t)
	h.API.On("CreateBorrowLend", mock.Anything, mock.MatchedBy(func(c client.BorrowLendCreate) bool {
		return c.Participants != nil && len(c.Participants) == 0
	})).Return(nil).Once()

	f := New(h.Deps, nil, nil, forms.Callbacks{})
	fillLoan(f)

	assert.Equal(t, forms.OutcomeSaved, f.Submit(context.Background()).Outcome)
}

func TestSubmit_Update(t *testing.T) {
	h := formstest.NewHarness(t)
	h.API.On("UpdateBorrowLend", mock.Anything, "b1", client.BorrowLendUpdate{
		Title:      "Rent",
		Amount:     "80",
		CategoryID: "c1",
		Type:       client.Borrow,
	}).Return(nil).Once()

	updated := &formstest.Counter{}
	record := ExistingRecord{ID: "b1", Title: "Rent", Amount: decimal.NewFromInt(100), CategoryID: "c1", Type: client.Borrow}
	f := New(h.Deps, nil, record, forms.Callbacks{OnUpdated: updated.Inc})
	f.SetAmount("80")

	assert.Equal(t, forms.OutcomeSaved, f.Submit(context.Background()).Outcome)
	assert.Equal(t, 1, updated.N)
	assert.Equal(t, "100", f.Values().Amount)
}

func TestSubmit_FailureMessages(t *testing.T) {
	h := formstest.NewHarness(t)
	h.API.On("CreateBorrowLend", mock.Anything, mock.Anything).
		Return(&client.Error{Op: "CreateBorrowLend", Kind: client.KindStatus, StatusCode: 400}).Once()
	h.API.On("UpdateBorrowLend", mock.Anything, "b1", mock.Anything).
		Return(&client.Error{Op: "UpdateBorrowLend", Kind: client.KindStatus, StatusCode: 404}).Once()

	createForm := New(h.Deps, nil, nil, forms.Callbacks{})
	fillLoan(createForm)
	assert.Equal(t, forms.OutcomeFailed, createForm.Submit(context.Background()).Outcome)
	assert.Equal(t, "Rent", createForm.Values().Title)

	record := ExistingRecord{ID: "b1", Title: "Rent", Amount: decimal.NewFromInt(1), CategoryID: "c1", Type: client.Borrow}
	updateForm := New(h.Deps, nil, record, forms.Callbacks{})
	assert.Equal(t, forms.OutcomeFailed, updateForm.Submit(context.Background()).Outcome)

	assert.Equal(t, []string{"Failed to create borrow/lend record", "Failed to update borrow/lend record"},
		h.Notifier.Failures())
}

func TestSubmit_BusyRejectsSecondSubmit(t *testing.T) {
	h := formstest.NewHarness(t)
	started := make(chan struct{})
	release := make(chan struct{})
	h.API.On("UpdateBorrowLend", mock.Anything, "b1", mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(nil).Once()

	record := ExistingRecord{ID: "b1", Title: "Rent", Amount: decimal.NewFromInt(1), CategoryID: "c1", Type: client.Borrow}
	f := New(h.Deps, nil, record, forms.Callbacks{})

	done := make(chan forms.SubmitResult, 1)
	go func() {
		done <- f.Submit(context.Background())
	}()
	<-started

	assert.Equal(t, "Updating...", f.SubmitLabel())
	assert.Equal(t, forms.OutcomeBusy, f.Submit(context.Background()).Outcome)

	close(release)
	assert.Equal(t, forms.OutcomeSaved, (<-done).Outcome)
	h.API.AssertNumberOfCalls(t, "UpdateBorrowLend", 1)
}

// -- end to end --

func TestEndToEnd_UpdateOmitsParticipants(t *testing.T) {
	var body map[string]interface{}
	var path, method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	h := formstest.NewHarness(t)
	delegator := operator.NewOperatorDelegator(client.NewClient(srv.URL, 5*time.Second, h.Deps.Logger), 1)
	delegator.Start()
	defer delegator.Stop()
	deps := h.Deps
	deps.Processor = delegator

	record := ExistingRecord{ID: "b1", Title: "Rent", Amount: decimal.NewFromInt(100), CategoryID: "c1", Type: client.Lend}
	f := New(deps, nil, record, forms.Callbacks{})

	require.Equal(t, forms.OutcomeSaved, f.Submit(context.Background()).Outcome)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/api/borrow-lend/b1", path)
	assert.Equal(t, "LEND", body["type"])
	_, has := body["participants"]
	assert.False(t, has)
}
