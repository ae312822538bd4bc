package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bernavale/planner"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the full document as a JSON backup" }
func (*exportCmd) Usage() string {
	return `wpc export [-o <file>]

  Writes the document pretty-printed to stdout, or to a file with -o.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the backup to this file instead of stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(func(doc *planner.Document) error {
		if c.output == "" {
			return planner.Export(os.Stdout, doc)
		}
		out, err := os.Create(c.output)
		if err != nil {
			return fmt.Errorf("cannot create backup file %q: %w", c.output, err)
		}
		defer out.Close()
		if err := planner.Export(out, doc); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported document to %s\n", c.output)
		return nil
	})
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the document with a JSON backup" }
func (*importCmd) Usage() string {
	return `wpc import <file>

  Parses and validates the backup, then atomically replaces the stored
  document. On any failure the current document is left untouched.
  Backups written by the original web app are migrated on the fly.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one backup file argument.")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	doc, err := planner.Import(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import rejected: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := openStore().Replace(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Import rejected: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported document from %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
