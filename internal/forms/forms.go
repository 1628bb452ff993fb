// Package forms holds the contracts shared by the record forms, the category
// dialog and the participant collector.
package forms

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-forms/internal/forms/validation"
	"github.com/carson-networks/ledger-forms/internal/operator/actions"
)

// Notifier surfaces short user-facing messages, the way a toast would.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Processor performs backend actions. *operator.OperatorDelegator satisfies it.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Deps are the collaborators every form needs.
type Deps struct {
	Processor Processor
	Notifier  Notifier
	Logger    *logrus.Logger
}

// Callbacks tell the host to refresh its lists. Nil callbacks are skipped.
type Callbacks struct {
	OnCreated         func()
	OnUpdated         func()
	OnCategoryCreated func()
}

// Call invokes callback unless it is nil.
func Call(callback func()) {
	if callback != nil {
		callback()
	}
}

// Outcome is how a Submit ended.
type Outcome int

const (
	// OutcomeSaved means the backend accepted the submission.
	OutcomeSaved Outcome = iota + 1
	// OutcomeInvalid means validation failed and nothing was sent.
	OutcomeInvalid
	// OutcomeFailed means the request was sent and did not succeed.
	OutcomeFailed
	// OutcomeBusy means another submission was still in flight.
	OutcomeBusy
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeFailed:
		return "failed"
	case OutcomeBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// SubmitResult is returned by every Submit. Errors is set only for OutcomeInvalid.
type SubmitResult struct {
	Outcome Outcome
	Errors  validation.Result
}

// Verb names the submission for messages: "create" or "update".
func Verb(editing bool) string {
	if editing {
		return "update"
	}
	return "create"
}

// Settings are the optional knobs shared by the record forms.
type Settings struct {
	CategoryColor string
}

// Option adjusts Settings when a form is constructed.
type Option func(*Settings)

// WithCategoryColor sets the color the category quick-add dialog starts with.
func WithCategoryColor(color string) Option {
	return func(s *Settings) {
		s.CategoryColor = color
	}
}

// ApplyOptions folds opts over zero Settings.
func ApplyOptions(opts ...Option) Settings {
	var s Settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
