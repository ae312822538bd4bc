package cmd

import (
	"context"
	"flag"

	"github.com/bernavale/planner"
	"github.com/bernavale/planner/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the wedding dashboard" }
func (*summaryCmd) Usage() string {
	return `wpc summary

  Displays checklist progress, guest statistics and the combined budget
  figures, all derived from the current document.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(func(doc *planner.Document) error {
		printMarkdown(doc, renderer.Summary(planner.NewSummary(doc)))
		return nil
	})
}
