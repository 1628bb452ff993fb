package app

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/ledger-forms/internal/forms"
	"github.com/carson-networks/ledger-forms/internal/forms/participant"
)

const (
	participantFlag = "participant"
	contactFlag     = "contact"
)

func participantFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{Name: participantFlag, Usage: "participant as email[:nickname], repeatable"},
		&cli.StringSliceFlag{Name: contactFlag, Usage: "contact id to add as a participant, repeatable"},
	}
}

func recordFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title"},
		&cli.StringFlag{Name: "amount"},
		&cli.StringFlag{Name: "category", Usage: "category id"},
		&cli.StringFlag{Name: "description"},
	}
}

func idFlag() cli.Flag {
	return &cli.StringFlag{Name: "id", Usage: "record id", Required: true}
}

// normalizeAmount keeps only amounts that parse as numbers, the way a numeric
// input would; anything else becomes empty and fails as a missing amount.
func normalizeAmount(raw string) string {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return amount.String()
}

// parseParticipant splits "email[:nickname]".
func parseParticipant(raw string) (email, nickname string) {
	email, nickname, _ = strings.Cut(raw, ":")
	return strings.TrimSpace(email), strings.TrimSpace(nickname)
}

// addParticipants loads contacts when any --contact is given, then adds every
// contact and --participant entry. Duplicates are ignored by the collector.
func addParticipants(c *cli.Context, proc forms.Processor, collector *participant.Collector) error {
	contactIDs := c.StringSlice(contactFlag)
	if len(contactIDs) > 0 {
		if err := collector.Load(c.Context, proc); err != nil {
			return cli.Exit(fmt.Sprintf("could not load contacts: %v", err), exitFailed)
		}
	}
	for _, id := range contactIDs {
		if _, ok := collector.Contact(id); !ok {
			return cli.Exit(fmt.Sprintf("unknown contact %q", id), exitInvalid)
		}
		collector.AddContactByID(id)
	}

	for _, raw := range c.StringSlice(participantFlag) {
		email, nickname := parseParticipant(raw)
		if email == "" {
			return cli.Exit(fmt.Sprintf("participant %q has no email", raw), exitInvalid)
		}
		collector.Add(email, nickname)
	}
	return nil
}

// report turns a submission result into the command's error.
func (a *App) report(result forms.SubmitResult, entity string) error {
	switch result.Outcome {
	case forms.OutcomeSaved:
		return nil
	case forms.OutcomeInvalid:
		for _, fe := range result.Errors.Errors() {
			fmt.Fprintf(a.Out, "%s: %s\n", fe.Field, fe.Message)
		}
		return cli.Exit(fmt.Sprintf("%s is invalid", entity), exitInvalid)
	default:
		return cli.Exit(fmt.Sprintf("%s was not saved: %s", entity, result.Outcome), exitFailed)
	}
}
