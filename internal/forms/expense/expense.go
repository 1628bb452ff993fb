package expense

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-forms/internal/client"
	"github.com/carson-networks/ledger-forms/internal/forms"
	"github.com/carson-networks/ledger-forms/internal/forms/category"
	"github.com/carson-networks/ledger-forms/internal/forms/participant"
	"github.com/carson-networks/ledger-forms/internal/forms/validation"
	"github.com/carson-networks/ledger-forms/internal/operator/actions"
)

type Values struct {
	Title       string `json:"title" validate:"required" message:"Title is required"`
	Description string `json:"description"`
	Amount      string `json:"amount" validate:"required" message:"Amount is required"`
	CategoryID  string `json:"categoryId" validate:"required" message:"Category is required"`
	IsSplit     bool   `json:"isSplit"`
}

// Record selects between creating and editing. It is NewRecord or ExistingRecord.
type Record interface {
	isRecord()
}

type NewRecord struct{}

type ExistingRecord struct {
	ID          string
	Title       string
	Description string
	Amount      decimal.Decimal
	CategoryID  string
	IsSplit     bool
}

func (NewRecord) isRecord()      {}
func (ExistingRecord) isRecord() {}

// Form is the expense create/edit form. It is owned by one goroutine; only
// Loading may be read concurrently with Submit.
type Form struct {
	deps       forms.Deps
	callbacks  forms.Callbacks
	categories []client.Category
	record     Record
	initial    Values
	values     Values
	loading    atomic.Bool

	Participants *participant.Collector
	Category     *category.Dialog
}

// New builds the form. A nil record means NewRecord.
func New(deps forms.Deps, categories []client.Category, record Record, callbacks forms.Callbacks, opts ...forms.Option) *Form {
	settings := forms.ApplyOptions(opts...)
	if record == nil {
		record = NewRecord{}
	}
	initial := initialValues(record)
	return &Form{
		deps:         deps,
		callbacks:    callbacks,
		categories:   append([]client.Category(nil), categories...),
		record:       record,
		initial:      initial,
		values:       initial,
		Participants: participant.NewCollector(deps.Logger),
		Category:     category.NewDialog(deps, settings.CategoryColor, callbacks.OnCategoryCreated),
	}
}

func initialValues(record Record) Values {
	existing, ok := record.(ExistingRecord)
	if !ok {
		return Values{}
	}
	return Values{
		Title:       existing.Title,
		Description: existing.Description,
		Amount:      existing.Amount.String(),
		CategoryID:  existing.CategoryID,
		IsSplit:     existing.IsSplit,
	}
}

// Mount loads the contact list. It never fails; see participant.Collector.Load.
func (f *Form) Mount(ctx context.Context) {
	_ = f.Participants.Load(ctx, f.deps.Processor)
}

func (f *Form) Editing() bool {
	_, ok := f.record.(ExistingRecord)
	return ok
}

func (f *Form) Values() Values {
	return f.values
}

func (f *Form) SetTitle(title string) {
	f.values.Title = title
}

func (f *Form) SetDescription(description string) {
	f.values.Description = description
}

func (f *Form) SetAmount(amount string) {
	f.values.Amount = amount
}

func (f *Form) SetCategoryID(categoryID string) {
	f.values.CategoryID = categoryID
}

func (f *Form) SetSplit(isSplit bool) {
	f.values.IsSplit = isSplit
}

func (f *Form) Categories() []client.Category {
	return append([]client.Category(nil), f.categories...)
}

// SetCategories replaces the selectable categories, typically after
// OnCategoryCreated made the host refetch them.
func (f *Form) SetCategories(categories []client.Category) {
	f.categories = append([]client.Category(nil), categories...)
}

func (f *Form) Loading() bool {
	return f.loading.Load()
}

// Reset restores the initial values and clears participants.
func (f *Form) Reset() {
	f.values = f.initial
	f.Participants.Clear()
}

// -- presentation --

func (f *Form) Heading() string {
	if f.Editing() {
		return "Edit Expense"
	}
	return "Add New Expense"
}

func (f *Form) Subheading() string {
	if f.Editing() {
		return "Update your expense details."
	}
	return "Create a new expense and optionally split it with others."
}

func (f *Form) SubmitLabel() string {
	switch {
	case f.Loading() && f.Editing():
		return "Updating..."
	case f.Loading():
		return "Creating..."
	case f.Editing():
		return "Update Expense"
	default:
		return "Create Expense"
	}
}

// ShowsSplitToggle hides the split checkbox while editing.
func (f *Form) ShowsSplitToggle() bool {
	return !f.Editing()
}

func (f *Form) ShowsParticipantPanel() bool {
	return f.values.IsSplit && !f.Editing()
}

// -- submission --

// Submit validates and sends the expense. Invalid values never reach the
// network. On success the matching callback fires and the form resets; on
// failure the user is notified and the state is kept for a retry.
func (f *Form) Submit(ctx context.Context) forms.SubmitResult {
	if !f.loading.CompareAndSwap(false, true) {
		return forms.SubmitResult{Outcome: forms.OutcomeBusy}
	}
	defer f.loading.Store(false)

	values := f.values
	if result := validation.Struct(values); !result.OK() {
		return forms.SubmitResult{Outcome: forms.OutcomeInvalid, Errors: result}
	}

	editing := f.Editing()
	entry := f.deps.Logger.WithFields(logrus.Fields{
		"title":      values.Title,
		"categoryId": values.CategoryID,
		"isSplit":    values.IsSplit,
		"editing":    editing,
	})

	if err := f.deps.Processor.Process(ctx, f.action(values)); err != nil {
		entry.WithError(err).Errorf("ExpenseForm.Submit.error %s expense", forms.Verb(editing))
		f.deps.Notifier.Failure(fmt.Sprintf("Failed to %s expense", forms.Verb(editing)))
		return forms.SubmitResult{Outcome: forms.OutcomeFailed}
	}

	entry.Info("ExpenseForm.Submit.complete")
	if editing {
		forms.Call(f.callbacks.OnUpdated)
	} else {
		forms.Call(f.callbacks.OnCreated)
	}
	f.Reset()

	return forms.SubmitResult{Outcome: forms.OutcomeSaved}
}

func (f *Form) action(values Values) actions.IAction {
	if existing, ok := f.record.(ExistingRecord); ok {
		return &actions.UpdateExpense{
			ID: existing.ID,
			Body: client.ExpenseUpdate{
				Title:       values.Title,
				Description: values.Description,
				Amount:      values.Amount,
				CategoryID:  values.CategoryID,
				IsSplit:     values.IsSplit,
			},
		}
	}

	participants := []client.Participant{}
	if values.IsSplit {
		participants = f.Participants.Participants()
	}
	return &actions.CreateExpense{
		Body: client.ExpenseCreate{
			Title:        values.Title,
			Description:  values.Description,
			Amount:       values.Amount,
			CategoryID:   values.CategoryID,
			IsSplit:      values.IsSplit,
			Participants: participants,
		},
	}
}
