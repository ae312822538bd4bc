// Package cmd implements the CLI application to manage the wedding
// planner document.
// A main package calls Register() to install the subcommands, and
// Execute() on the user-selected one.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/bernavale/planner"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var documentFile = flag.String("file", "wedding.json", "Path to the planner document (JSON)")

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&addSectionCmd{}, "checklist")
	c.Register(&rmSectionCmd{}, "checklist")
	c.Register(&addTaskCmd{}, "checklist")
	c.Register(&toggleCmd{}, "checklist")
	c.Register(&editTaskCmd{}, "checklist")
	c.Register(&rmTaskCmd{}, "checklist")
	c.Register(&progressCmd{}, "checklist")

	c.Register(&addGuestCmd{}, "guests")
	c.Register(&editGuestCmd{}, "guests")
	c.Register(&confirmCmd{}, "guests")
	c.Register(&payGuestCmd{}, "guests")
	c.Register(&rmGuestCmd{}, "guests")
	c.Register(&guestsCmd{}, "guests")

	c.Register(&addItemCmd{}, "budget")
	c.Register(&editItemCmd{}, "budget")
	c.Register(&payItemCmd{}, "budget")
	c.Register(&rmItemCmd{}, "budget")
	c.Register(&budgetCmd{}, "budget")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&getCmd{}, "reports")

	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")

	c.Register(&settingsCmd{}, "settings")
	c.Register(&topicCmd{}, "settings")
}

// CommandNames lists every registered subcommand, used to install shell
// completion in main.
func CommandNames() []string {
	return []string{
		"add-section", "rm-section", "add-task", "toggle", "edit-task", "rm-task", "progress",
		"add-guest", "edit-guest", "confirm", "pay-guest", "rm-guest", "guests",
		"add-item", "edit-item", "pay-item", "rm-item", "budget",
		"summary", "get", "export", "import", "settings", "topic",
	}
}

// openStore returns the store backed by the app document file.
func openStore() *planner.Store {
	return planner.NewStore(*documentFile)
}

// mutate loads the document, applies fn, and persists the result. Every
// mutating command funnels through here so the store is saved after each
// successful mutation.
func mutate(fn func(doc *planner.Document) error) subcommands.ExitStatus {
	s := openStore()
	doc, err := s.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := fn(doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := s.Save(doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// view loads the document and hands it to fn for read-only rendering.
func view(fn func(doc *planner.Document) error) subcommands.ExitStatus {
	doc, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := fn(doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, honoring the document's
// dark-mode setting. On any rendering trouble the raw markdown is printed
// instead.
func printMarkdown(doc *planner.Document, md string) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(0)}
	if doc.Settings[planner.SettingDarkMode] == "true" {
		opts = append(opts, glamour.WithStandardStyle("dark"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseAmount parses a user-supplied monetary amount.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// resolveSection finds a section by id, falling back to a name lookup so
// users can type `-s Proveedores` instead of pasting UUIDs.
func resolveSection(doc *planner.Document, ref string) *planner.Section {
	if sec := doc.Section(ref); sec != nil {
		return sec
	}
	return doc.SectionByName(ref)
}

// resolveID matches a full or shortened id against the ids yielded by
// list. Listings print only the first UUID group; this accepts both.
// A prefix shared by several ids is not resolved: the ref is returned
// unchanged so the mutation lands nowhere rather than on the wrong
// record.
func resolveID(ref string, ids []string) string {
	for _, id := range ids {
		if id == ref {
			return id
		}
	}
	if len(ref) < 4 {
		return ref
	}
	var match string
	for _, id := range ids {
		if len(ref) < len(id) && id[:len(ref)] == ref {
			if match != "" {
				return ref
			}
			match = id
		}
	}
	if match != "" {
		return match
	}
	return ref
}

func guestIDs(doc *planner.Document) []string {
	ids := make([]string, 0, len(doc.Guests))
	for _, g := range doc.Guests {
		ids = append(ids, g.ID)
	}
	return ids
}

func itemIDs(doc *planner.Document) []string {
	ids := make([]string, 0, len(doc.BudgetItems))
	for _, it := range doc.BudgetItems {
		ids = append(ids, it.ID)
	}
	return ids
}

func taskIDs(sec *planner.Section) []string {
	ids := make([]string, 0, len(sec.Tasks))
	for _, t := range sec.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
