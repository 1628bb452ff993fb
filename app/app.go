// Package app is the ledger command line. It hosts the forms: it fills them
// from flags, renders notifications and field errors, and maps outcomes to
// exit codes.
package app

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/ledger-forms/internal/client"
	"github.com/carson-networks/ledger-forms/internal/config"
	"github.com/carson-networks/ledger-forms/internal/forms"
	"github.com/carson-networks/ledger-forms/internal/logging"
	"github.com/carson-networks/ledger-forms/internal/notify"
	"github.com/carson-networks/ledger-forms/internal/operator"
)

const (
	exitFailed  = 1
	exitInvalid = 2
)

type App struct {
	Logger *logrus.Logger
	Out    io.Writer

	config    *config.Config
	delegator *operator.OperatorDelegator
}

func New(logger *logrus.Logger, out io.Writer) *App {
	return &App{Logger: logger, Out: out}
}

func (a *App) Run(args []string) error {
	return a.CLI().Run(args)
}

func (a *App) CLI() *cli.App {
	return &cli.App{
		Name:   "ledger",
		Usage:  "record expenses and borrow/lend entries against the ledger API",
		Writer: a.Out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
			&cli.StringFlag{Name: "api-url", Usage: "ledger API base URL"},
			&cli.StringFlag{Name: "log-level", Usage: "logrus level (debug, info, warn, error)"},
		},
		Before: a.setup,
		After:  a.teardown,
		// main owns the process exit code.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			a.contactsCommand(),
			a.categoryCommand(),
			a.expenseCommand(),
			a.borrowLendCommand(),
		},
	}
}

func (a *App) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("api-url") {
		cfg.APIURL = c.String("api-url")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.SetLevel(a.Logger, cfg.LogLevel); err != nil {
		return err
	}

	api := client.NewClient(cfg.APIURL, cfg.RequestTimeout, a.Logger)
	a.config = cfg
	a.delegator = operator.NewOperatorDelegator(api, cfg.Workers)
	a.delegator.Start()

	a.Logger.WithFields(logrus.Fields{
		"apiUrl":  cfg.APIURL,
		"workers": cfg.Workers,
	}).Debug("App.setup.complete")
	return nil
}

func (a *App) teardown(*cli.Context) error {
	if a.delegator != nil {
		a.delegator.Stop()
	}
	return nil
}

func (a *App) deps() forms.Deps {
	return forms.Deps{
		Processor: a.delegator,
		Notifier:  notify.NewConsole(a.Out, a.Logger),
		Logger:    a.Logger,
	}
}

// callbacks print what a page would refresh.
func (a *App) callbacks(entity string) forms.Callbacks {
	return forms.Callbacks{
		OnCreated: func() {
			fmt.Fprintf(a.Out, "%s created\n", entity)
		},
		OnUpdated: func() {
			fmt.Fprintf(a.Out, "%s updated\n", entity)
		},
		OnCategoryCreated: func() {
			a.Logger.Info("App.callbacks.category list refresh")
		},
	}
}
