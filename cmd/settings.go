package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bernavale/planner"
	"github.com/bernavale/planner/docs"
	"github.com/google/subcommands"
)

type settingsCmd struct {
	set   string
	title string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change document settings" }
func (*settingsCmd) Usage() string {
	return `wpc settings [-set <key>=<value>] [-title <title>]

  Without flags, lists the current settings. -set changes one option
  (e.g. -set darkMode=true, -set currency=USD); -title renames the
  document.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Set an option, as key=value.")
	f.StringVar(&c.title, "title", "", "Rename the document.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.set == "" && c.title == "" {
		return view(func(doc *planner.Document) error {
			fmt.Printf("title: %s\n", doc.Meta.Title)
			keys := make([]string, 0, len(doc.Settings))
			for k := range doc.Settings {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("%s: %s\n", k, doc.Settings[k])
			}
			return nil
		})
	}
	return mutate(func(doc *planner.Document) error {
		if c.title != "" {
			doc.Meta.Title = strings.TrimSpace(c.title)
		}
		if c.set != "" {
			key, value, ok := strings.Cut(c.set, "=")
			if !ok || strings.TrimSpace(key) == "" {
				return fmt.Errorf("invalid -set %q, expected key=value", c.set)
			}
			doc.Settings[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
		return nil
	})
}

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a documentation topic" }
func (*topicCmd) Usage() string {
	return `wpc topic [<name>]

  Shows a documentation topic ('*' for all). Without arguments, lists
  the available topics.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		topics, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		for _, t := range topics {
			fmt.Println(t)
		}
		return subcommands.ExitSuccess
	}
	content, err := docs.GetTopic(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return view(func(doc *planner.Document) error {
		printMarkdown(doc, content)
		return nil
	})
}
