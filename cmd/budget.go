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

type addItemCmd struct {
	provider string
	total    string
	deposit  string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add a provider line to the budget" }
func (*addItemCmd) Usage() string {
	return `wpc add-item -n <provider> -t <total> [-d <deposit>]

  Adds a budget item. The total must be positive; the deposit defaults
  to 0, which reads as status "pending".
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.provider, "n", "", "Provider name.")
	f.StringVar(&c.total, "t", "", "Total cost.")
	f.StringVar(&c.deposit, "d", "", "Deposit already paid.")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	total, err := parseAmount(c.total)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	deposit, err := parseAmount(c.deposit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return mutate(func(doc *planner.Document) error {
		it, err := doc.AddBudgetItem(planner.BudgetItemInput{
			Provider: c.provider,
			Total:    total,
			Deposit:  deposit,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Added %q: %s total, status %s (%s)\n",
			it.Provider, planner.M(it.Total, doc.Currency()), it.Status(), it.ID)
		return nil
	})
}

type editItemCmd struct {
	id       string
	provider string
	total    string
	deposit  string
}

func (*editItemCmd) Name() string     { return "edit-item" }
func (*editItemCmd) Synopsis() string { return "edit a budget item" }
func (*editItemCmd) Usage() string {
	return `wpc edit-item -id <item> [-n <provider>] [-t <total>] [-d <deposit>]

  Patches a budget item. Balance and status always follow from the
  resulting total and deposit.
`
}

func (c *editItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id (full or shortened).")
	f.StringVar(&c.provider, "n", "", "New provider name.")
	f.StringVar(&c.total, "t", "", "New total cost.")
	f.StringVar(&c.deposit, "d", "", "New deposit.")
}

func (c *editItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(doc *planner.Document) error {
		var patch planner.BudgetItemPatch
		if c.provider != "" {
			patch.Provider = &c.provider
		}
		if c.total != "" {
			total, err := parseAmount(c.total)
			if err != nil {
				return err
			}
			patch.Total = &total
		}
		if c.deposit != "" {
			deposit, err := parseAmount(c.deposit)
			if err != nil {
				return err
			}
			patch.Deposit = &deposit
		}
		return doc.UpdateBudgetItem(resolveID(c.id, itemIDs(doc)), patch)
	})
}

type payItemCmd struct {
	id     string
	amount string
}

func (*payItemCmd) Name() string     { return "pay-item" }
func (*payItemCmd) Synopsis() string { return "record a payment to a provider" }
func (*payItemCmd) Usage() string {
	return `wpc pay-item -id <item> -a <amount>

  Records a payment against a budget item and raises its deposit.
`
}

func (c *payItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id (full or shortened).")
	f.StringVar(&c.amount, "a", "", "Payment amount.")
}

func (c *payItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return mutate(func(doc *planner.Document) error {
		id := resolveID(c.id, itemIDs(doc))
		if _, err := doc.RegisterItemPayment(id, amount); err != nil {
			return err
		}
		it := doc.BudgetItem(id)
		fmt.Printf("Paid %s to %s, balance %s (%s)\n",
			planner.M(amount, doc.Currency()), it.Provider,
			planner.M(it.Balance(), doc.Currency()), it.Status())
		return nil
	})
}

type rmItemCmd struct {
	id string
}

func (*rmItemCmd) Name() string     { return "rm-item" }
func (*rmItemCmd) Synopsis() string { return "remove a budget item" }
func (*rmItemCmd) Usage() string {
	return `wpc rm-item -id <item>

  Removes a budget item. Unknown ids are ignored.
`
}

func (c *rmItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id (full or shortened).")
}

func (c *rmItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(doc *planner.Document) error {
		doc.RemoveBudgetItem(resolveID(c.id, itemIDs(doc)))
		return nil
	})
}

type budgetCmd struct{}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show the provider ledger and combined totals" }
func (*budgetCmd) Usage() string {
	return `wpc budget

  Renders the budget items with derived balance and status, plus the
  ledger line combining providers and guest shares.
`
}

func (*budgetCmd) SetFlags(*flag.FlagSet) {}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(func(doc *planner.Document) error {
		gs := planner.NewGuestStats(doc.Guests)
		sum := planner.NewBudgetSummary(doc.BudgetItems, gs, doc.Currency())
		printMarkdown(doc, renderer.Budget(doc.BudgetItems, sum, doc.Currency()))
		return nil
	})
}
