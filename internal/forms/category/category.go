package category

import (
	"context"

	"github.com/carson-networks/ledger-forms/internal/client"
	"github.com/carson-networks/ledger-forms/internal/forms"
	"github.com/carson-networks/ledger-forms/internal/forms/validation"
	"github.com/carson-networks/ledger-forms/internal/operator/actions"
)

const DefaultColor = "#3B82F6"

type Values struct {
	Name  string `json:"name" validate:"required" message:"Category name is required"`
	Color string `json:"color" validate:"required" message:"Color is required"`
}

// Dialog is the quick-add category form nested in the record forms.
type Dialog struct {
	deps      forms.Deps
	onCreated func()
	defaults  Values
	values    Values
	open      bool
	created   *client.Category
}

// NewDialog starts closed with an empty name and color, or DefaultColor when
// color is empty.
func NewDialog(deps forms.Deps, color string, onCreated func()) *Dialog {
	if color == "" {
		color = DefaultColor
	}
	defaults := Values{Color: color}
	return &Dialog{
		deps:      deps,
		onCreated: onCreated,
		defaults:  defaults,
		values:    defaults,
	}
}

func (d *Dialog) Open() {
	d.open = true
}

func (d *Dialog) Close() {
	d.open = false
}

func (d *Dialog) IsOpen() bool {
	return d.open
}

func (d *Dialog) SetName(name string) {
	d.values.Name = name
}

func (d *Dialog) SetColor(color string) {
	d.values.Color = color
}

func (d *Dialog) Values() Values {
	return d.values
}

// Created returns the category from the last successful submit.
func (d *Dialog) Created() (client.Category, bool) {
	if d.created == nil {
		return client.Category{}, false
	}
	return *d.created, true
}

// Submit posts the category. On success the dialog resets, closes and tells
// the parent to refresh; on failure it stays open with the values intact.
func (d *Dialog) Submit(ctx context.Context) forms.SubmitResult {
	if result := validation.Struct(d.values); !result.OK() {
		return forms.SubmitResult{Outcome: forms.OutcomeInvalid, Errors: result}
	}

	action := &actions.CreateCategory{Name: d.values.Name, Color: d.values.Color}
	if err := d.deps.Processor.Process(ctx, action); err != nil {
		d.deps.Logger.WithError(err).WithField("categoryName", d.values.Name).Error("CategoryDialog.Submit.error creating category")
		d.deps.Notifier.Failure("Failed to create category")
		return forms.SubmitResult{Outcome: forms.OutcomeFailed}
	}

	d.created = action.Created
	d.values = d.defaults
	d.open = false
	forms.Call(d.onCreated)
	d.deps.Notifier.Success("Category created successfully!")

	return forms.SubmitResult{Outcome: forms.OutcomeSaved}
}
