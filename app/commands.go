package app

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/carson-networks/ledger-forms/internal/client"
	"github.com/carson-networks/ledger-forms/internal/forms"
	"github.com/carson-networks/ledger-forms/internal/forms/borrowlend"
	"github.com/carson-networks/ledger-forms/internal/forms/category"
	"github.com/carson-networks/ledger-forms/internal/forms/expense"
	"github.com/carson-networks/ledger-forms/internal/forms/participant"
	"github.com/carson-networks/ledger-forms/internal/logging"
	"github.com/carson-networks/ledger-forms/internal/operator/actions"
)

// -- contacts --

func (a *App) contactsCommand() *cli.Command {
	return &cli.Command{
		Name:   "contacts",
		Usage:  "list saved contacts",
		Action: logging.LoggingWrapper("Contacts.List", a.Logger, a.listContacts),
	}
}

func (a *App) listContacts(c *cli.Context, logData *logging.LogData) error {
	action := &actions.ListContacts{}
	if err := a.delegator.Process(c.Context, action); err != nil {
		return cli.Exit(fmt.Sprintf("could not list contacts: %v", err), exitFailed)
	}

	logData.AddData("contactCount", len(action.Contacts))
	for _, contact := range action.Contacts {
		fmt.Fprintf(a.Out, "%s\t%s\t%s\n", contact.ID, participant.ContactLabel(contact), contact.User.Email)
	}
	return nil
}

// -- category --

func (a *App) categoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "category",
		Usage: "manage categories",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "create a category",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "color", Usage: "hex color, defaults to the configured category color"},
				},
				Action: logging.LoggingWrapper("Category.Create", a.Logger, a.createCategory),
			},
		},
	}
}

func (a *App) createCategory(c *cli.Context, logData *logging.LogData) error {
	dialog := category.NewDialog(a.deps(), a.config.DefaultCategoryColor, a.callbacks("category").OnCategoryCreated)
	dialog.Open()
	dialog.SetName(c.String("name"))
	if c.IsSet("color") {
		dialog.SetColor(c.String("color"))
	}

	result := dialog.Submit(c.Context)
	if created, ok := dialog.Created(); ok {
		logData.AddData("categoryId", created.ID)
		fmt.Fprintf(a.Out, "%s\t%s\t%s\n", created.ID, created.Name, created.Color)
	}
	return a.report(result, "category")
}

// -- expense --

func (a *App) expenseCommand() *cli.Command {
	return &cli.Command{
		Name:  "expense",
		Usage: "create or update expenses",
		Subcommands: []*cli.Command{
			{
				Name:   "create",
				Usage:  "create an expense, optionally split with participants",
				Flags:  append(append(recordFlags(), &cli.BoolFlag{Name: "split"}), participantFlags()...),
				Action: logging.LoggingWrapper("Expense.Create", a.Logger, a.saveExpense),
			},
			{
				Name:   "update",
				Usage:  "update an expense; participants cannot be changed",
				Flags:  append(recordFlags(), &cli.BoolFlag{Name: "split", Usage: "current split state, required"}, idFlag()),
				Action: logging.LoggingWrapper("Expense.Update", a.Logger, a.saveExpense),
			},
		},
	}
}

func (a *App) saveExpense(c *cli.Context, logData *logging.LogData) error {
	var record expense.Record = expense.NewRecord{}
	if c.IsSet("id") {
		// Edit mode never toggles the split state; the update restates it.
		if !c.IsSet("split") {
			return cli.Exit("expense update needs --split=true or --split=false", exitInvalid)
		}
		record = expense.ExistingRecord{ID: c.String("id"), IsSplit: c.Bool("split")}
		logData.AddData("expenseId", c.String("id"))
	}

	deps := a.deps()
	form := expense.New(deps, nil, record, a.callbacks("expense"), forms.WithCategoryColor(a.config.DefaultCategoryColor))
	form.SetTitle(c.String("title"))
	form.SetDescription(c.String("description"))
	form.SetAmount(normalizeAmount(c.String("amount")))
	form.SetCategoryID(c.String("category"))
	if form.ShowsSplitToggle() {
		form.SetSplit(c.Bool("split"))
	}

	if !form.Editing() {
		if err := addParticipants(c, deps.Processor, form.Participants); err != nil {
			return err
		}
		logData.AddData("participantCount", form.Participants.Len())
	}

	return a.report(form.Submit(c.Context), "expense")
}

// -- borrow/lend --

func (a *App) borrowLendCommand() *cli.Command {
	typeFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "type", Usage: "BORROW or LEND"}
	}
	return &cli.Command{
		Name:  "borrow-lend",
		Usage: "create or update borrow/lend records",
		Subcommands: []*cli.Command{
			{
				Name:   "create",
				Usage:  "record money borrowed from or lent to someone",
				Flags:  append(append(recordFlags(), typeFlag()), participantFlags()...),
				Action: logging.LoggingWrapper("BorrowLend.Create", a.Logger, a.saveBorrowLend),
			},
			{
				Name:   "update",
				Usage:  "update a borrow/lend record; counterparties cannot be changed",
				Flags:  append(recordFlags(), typeFlag(), idFlag()),
				Action: logging.LoggingWrapper("BorrowLend.Update", a.Logger, a.saveBorrowLend),
			},
		},
	}
}

func (a *App) saveBorrowLend(c *cli.Context, logData *logging.LogData) error {
	var record borrowlend.Record = borrowlend.NewRecord{}
	if c.IsSet("id") {
		record = borrowlend.ExistingRecord{ID: c.String("id")}
		logData.AddData("borrowLendId", c.String("id"))
	}

	deps := a.deps()
	form := borrowlend.New(deps, nil, record, a.callbacks("borrow/lend record"), forms.WithCategoryColor(a.config.DefaultCategoryColor))
	form.SetTitle(c.String("title"))
	form.SetDescription(c.String("description"))
	form.SetAmount(normalizeAmount(c.String("amount")))
	form.SetCategoryID(c.String("category"))
	if c.IsSet("type") {
		form.SetType(client.BorrowLendType(strings.ToUpper(strings.TrimSpace(c.String("type")))))
	}

	if form.ShowsParticipantPanel() {
		if err := addParticipants(c, deps.Processor, form.Participants); err != nil {
			return err
		}
		logData.AddData("participantCount", form.Participants.Len())
	}

	return a.report(form.Submit(c.Context), "borrow/lend record")
}
