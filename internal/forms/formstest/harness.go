// Package formstest wires forms to a real operator backed by a mock API.
package formstest

import (
	"bytes"
	"testing"

	"github.com/carson-networks/ledger-forms/internal/client/clienttest"
	"github.com/carson-networks/ledger-forms/internal/forms"
	"github.com/carson-networks/ledger-forms/internal/logging"
	"github.com/carson-networks/ledger-forms/internal/notify"
	"github.com/carson-networks/ledger-forms/internal/operator"
)

type Harness struct {
	API      *clienttest.MockAPI
	Notifier *notify.Recorder
	Logs     *bytes.Buffer
	Deps     forms.Deps
}

func NewHarness(t *testing.T) *Harness {
	t.Helper()
	api := clienttest.NewMockAPI(t)
	delegator := operator.NewOperatorDelegator(api, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	logs := &bytes.Buffer{}
	recorder := &notify.Recorder{}

	return &Harness{
		API:      api,
		Notifier: recorder,
		Logs:     logs,
		Deps: forms.Deps{
			Processor: delegator,
			Notifier:  recorder,
			Logger:    logging.NewLogger(logs),
		},
	}
}

// Counter counts callback invocations.
type Counter struct {
	N int
}

func (c *Counter) Inc() {
	c.N++
}
