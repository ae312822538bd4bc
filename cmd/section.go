package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bernavale/planner"
	"github.com/google/subcommands"
)

type addSectionCmd struct {
	name string
}

func (*addSectionCmd) Name() string     { return "add-section" }
func (*addSectionCmd) Synopsis() string { return "add a custom checklist section" }
func (*addSectionCmd) Usage() string {
	return `wpc add-section -n <name>

  Adds a new custom section with an empty task list. Custom sections can
  be removed again with rm-section; the seeded built-in ones cannot.
`
}

func (c *addSectionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the new section.")
}

func (c *addSectionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(doc *planner.Document) error {
		sec, err := doc.AddSection(c.name)
		if err != nil {
			return err
		}
		fmt.Printf("Added section %q (%s)\n", sec.Name, sec.ID)
		return nil
	})
}

type rmSectionCmd struct {
	section string
}

func (*rmSectionCmd) Name() string     { return "rm-section" }
func (*rmSectionCmd) Synopsis() string { return "remove a custom section and all its tasks" }
func (*rmSectionCmd) Usage() string {
	return `wpc rm-section -s <section>

  Removes a custom section by id or name. Every task in the section is
  removed with it. Built-in sections are refused.
`
}

func (c *rmSectionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.section, "s", "", "Section id or name.")
}

func (c *rmSectionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.section == "" {
		fmt.Fprintln(os.Stderr, "Error: -s is required.")
		return subcommands.ExitUsageError
	}
	return mutate(func(doc *planner.Document) error {
		sec := resolveSection(doc, c.section)
		if sec == nil {
			// a missing target is not an error, mirroring the core
			fmt.Fprintf(os.Stderr, "Section %q not found, nothing removed.\n", c.section)
			return nil
		}
		return doc.RemoveSection(sec.ID)
	})
}
