package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/bernavale/planner"
	"github.com/google/subcommands"
)

type getCmd struct{}

func (*getCmd) Name() string     { return "get" }
func (*getCmd) Synopsis() string { return "query the document with a JSONPath expression" }
func (*getCmd) Usage() string {
	return `wpc get <jsonpath>

  Evaluates a JSONPath expression against the document and prints the
  result as JSON. Useful for scripting.

Usage Examples:
$ wpc get '$.guests[0].name'
$ wpc get '$.budgetItems[*].provider'
`
}

func (*getCmd) SetFlags(*flag.FlagSet) {}

func (c *getCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSONPath argument.")
		return subcommands.ExitUsageError
	}
	return view(func(doc *planner.Document) error {
		// round-trip through JSON so jsonpath sees plain maps and slices
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		var jobj any
		if err := json.Unmarshal(data, &jobj); err != nil {
			return err
		}
		jval, err := jsonpath.Get(f.Arg(0), jobj)
		if err != nil {
			return fmt.Errorf("cannot evaluate %q: %w", f.Arg(0), err)
		}
		out, err := json.MarshalIndent(jval, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	})
}
