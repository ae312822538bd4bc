package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bernavale/planner"
	"github.com/bernavale/planner/renderer"
	"github.com/google/subcommands"
)

type addGuestCmd struct {
	name       string
	companions int
	confirmed  bool
	amount     string
	paid       string
}

func (*addGuestCmd) Name() string     { return "add-guest" }
func (*addGuestCmd) Synopsis() string { return "add a guest to the list" }
func (*addGuestCmd) Usage() string {
	return `wpc add-guest -n <name> [-c <companions>] [-confirmed] [-a <amount>] [-p <paid>]

  Adds a guest with an assigned share of the cost. Amounts default to 0.
`
}

func (c *addGuestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Guest name.")
	f.IntVar(&c.companions, "c", 0, "Number of companions.")
	f.BoolVar(&c.confirmed, "confirmed", false, "Mark the guest as confirmed.")
	f.StringVar(&c.amount, "a", "", "Assigned share of the cost.")
	f.StringVar(&c.paid, "p", "", "Amount already received.")
}

func (c *addGuestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	paid, err := parseAmount(c.paid)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return mutate(func(doc *planner.Document) error {
		g, err := doc.AddGuest(planner.GuestInput{
			Name:       c.name,
			Companions: c.companions,
			Confirmed:  c.confirmed,
			Amount:     amount,
			PaidAmount: paid,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added guest %q (%s)\n", g.Name, g.ID)
		return nil
	})
}

type editGuestCmd struct {
	id         string
	name       string
	companions int
	amount     string
	paid       string
}

func (*editGuestCmd) Name() string     { return "edit-guest" }
func (*editGuestCmd) Synopsis() string { return "edit a guest's fields" }
func (*editGuestCmd) Usage() string {
	return `wpc edit-guest -id <guest> [-n <name>] [-c <companions>] [-a <amount>] [-p <paid>]

  Patches a guest. Only the supplied fields are changed. Paid status is
  always derived from the amounts, never set directly.
`
}

func (c *editGuestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Guest id (full or shortened).")
	f.StringVar(&c.name, "n", "", "New guest name.")
	f.IntVar(&c.companions, "c", -1, "New number of companions.")
	f.StringVar(&c.amount, "a", "", "New assigned share.")
	f.StringVar(&c.paid, "p", "", "New received amount.")
}

func (c *editGuestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(doc *planner.Document) error {
		var patch planner.GuestPatch
		if c.name != "" {
			patch.Name = &c.name
		}
		if c.companions >= 0 {
			patch.Companions = &c.companions
		}
		if c.amount != "" {
			amount, err := parseAmount(c.amount)
			if err != nil {
				return err
			}
			patch.Amount = &amount
		}
		if c.paid != "" {
			paid, err := parseAmount(c.paid)
			if err != nil {
				return err
			}
			patch.PaidAmount = &paid
		}
		return doc.UpdateGuest(resolveID(c.id, guestIDs(doc)), patch)
	})
}

type confirmCmd struct {
	id     string
	cancel bool
}

func (*confirmCmd) Name() string     { return "confirm" }
func (*confirmCmd) Synopsis() string { return "confirm a guest's attendance" }
func (*confirmCmd) Usage() string {
	return `wpc confirm -id <guest> [-cancel]

  Marks a guest as confirmed, or cancels the confirmation.
`
}

func (c *confirmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Guest id (full or shortened).")
	f.BoolVar(&c.cancel, "cancel", false, "Cancel the confirmation instead.")
}

func (c *confirmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(doc *planner.Document) error {
		confirmed := !c.cancel
		return doc.UpdateGuest(resolveID(c.id, guestIDs(doc)), planner.GuestPatch{Confirmed: &confirmed})
	})
}

type payGuestCmd struct {
	id     string
	amount string
}

func (*payGuestCmd) Name() string     { return "pay-guest" }
func (*payGuestCmd) Synopsis() string { return "record a payment received from a guest" }
func (*payGuestCmd) Usage() string {
	return `wpc pay-guest -id <guest> -a <amount>

  Records a payment and raises the guest's received amount.
`
}

func (c *payGuestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Guest id (full or shortened).")
	f.StringVar(&c.amount, "a", "", "Payment amount.")
}

func (c *payGuestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return mutate(func(doc *planner.Document) error {
		id := resolveID(c.id, guestIDs(doc))
		if _, err := doc.RegisterGuestPayment(id, amount); err != nil {
			return err
		}
		g := doc.Guest(id)
		fmt.Printf("Recorded %s from %s, received so far: %s\n",
			planner.M(amount, doc.Currency()), g.Name, planner.M(g.PaidAmount, doc.Currency()))
		return nil
	})
}

type rmGuestCmd struct {
	id string
}

func (*rmGuestCmd) Name() string     { return "rm-guest" }
func (*rmGuestCmd) Synopsis() string { return "remove a guest from the list" }
func (*rmGuestCmd) Usage() string {
	return `wpc rm-guest -id <guest>

  Removes a guest. Unknown ids are ignored.
`
}

func (c *rmGuestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Guest id (full or shortened).")
}

func (c *rmGuestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(doc *planner.Document) error {
		doc.RemoveGuest(resolveID(c.id, guestIDs(doc)))
		return nil
	})
}

type guestsCmd struct{}

func (*guestsCmd) Name() string     { return "guests" }
func (*guestsCmd) Synopsis() string { return "list guests with their payment state" }
func (*guestsCmd) Usage() string {
	return `wpc guests

  Lists the guest list with the derived payment state per guest.
`
}

func (*guestsCmd) SetFlags(*flag.FlagSet) {}

func (c *guestsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(func(doc *planner.Document) error {
		printMarkdown(doc, renderer.Guests(doc.Guests, doc.Currency()))
		return nil
	})
}
