package borrowlend

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
	Title       string                `json:"title" validate:"required" message:"Title is required"`
	Description string                `json:"description"`
	Amount      string                `json:"amount" validate:"required" message:"Amount is required"`
	CategoryID  string                `json:"categoryId" validate:"required" message:"Category is required"`
	Type        client.BorrowLendType `json:"type" validate:"required,oneof=BORROW LEND" message:"Please select borrow or lend"`
}

// Record is NewRecord or ExistingRecord.
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
	Type        client.BorrowLendType
}

func (NewRecord) isRecord()      {}
func (ExistingRecord) isRecord() {}

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

// initialValues seeds a new record as a borrow.
func initialValues(record Record) Values {
	existing, ok := record.(ExistingRecord)
	if !ok {
		return Values{Type: client.Borrow}
	}
	return Values{
		Title:       existing.Title,
		Description: existing.Description,
		Amount:      existing.Amount.String(),
		CategoryID:  existing.CategoryID,
		Type:        existing.Type,
	}
}

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

func (f *Form) SetType(typ client.BorrowLendType) {
	f.values.Type = typ
}

func (f *Form) Categories() []client.Category {
	return append([]client.Category(nil), f.categories...)
}

func (f *Form) SetCategories(categories []client.Category) {
	f.categories = append([]client.Category(nil), categories...)
}

func (f *Form) Loading() bool {
	return f.loading.Load()
}

func (f *Form) Reset() {
	f.values = f.initial
	f.Participants.Clear()
}

// -- presentation --

func (f *Form) Heading() string {
	if f.Editing() {
		return "Edit Borrow/Lend"
	}
	return "Add Borrow/Lend Record"
}

func (f *Form) Subheading() string {
	if f.Editing() {
		return "Update your borrow/lend record."
	}
	return "Track money you borrowed or lent to others."
}

func (f *Form) SubmitLabel() string {
	switch {
	case f.Loading() && f.Editing():
		return "Updating..."
	case f.Loading():
		return "Creating..."
	case f.Editing():
		return "Update Record"
	default:
		return "Create Record"
	}
}

// ShowsParticipantPanel is false while editing; counterparties are fixed at creation.
func (f *Form) ShowsParticipantPanel() bool {
	return !f.Editing()
}

func (f *Form) PanelTitle() string {
	if f.values.Type == client.Lend {
		return "Lent To"
	}
	return "Borrowed From"
}

func (f *Form) PanelDescription() string {
	if f.values.Type == client.Lend {
		return "Add the person you lent money to"
	}
	return "Add the person you borrowed from"
}

// -- submission --

// Submit validates and sends the record. See expense.Form.Submit for the
// outcome rules; they are the same here.
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
		"title":            values.Title,
		"categoryId":       values.CategoryID,
		"type":             values.Type,
		"participantCount": f.Participants.Len(),
		"editing":          editing,
	})

	if err := f.deps.Processor.Process(ctx, f.action(values)); err != nil {
		entry.WithError(err).Errorf("BorrowLendForm.Submit.error %s record", forms.Verb(editing))
		f.deps.Notifier.Failure(fmt.Sprintf("Failed to %s borrow/lend record", forms.Verb(editing)))
		return forms.SubmitResult{Outcome: forms.OutcomeFailed}
	}

	entry.Info("BorrowLendForm.Submit.complete")
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
		return &actions.UpdateBorrowLend{
			ID: existing.ID,
			Body: client.BorrowLendUpdate{
				Title:       values.Title,
				Description: values.Description,
				Amount:      values.Amount,
				CategoryID:  values.CategoryID,
				Type:        values.Type,
			},
		}
	}

	return &actions.CreateBorrowLend{
		Body: client.BorrowLendCreate{
			Title:        values.Title,
			Description:  values.Description,
			Amount:       values.Amount,
			CategoryID:   values.CategoryID,
			Type:         values.Type,
			Participants: f.Participants.Participants(),
		},
	}
}
