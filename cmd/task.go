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

type addTaskCmd struct {
	section string
	text    string
}

func (*addTaskCmd) Name() string     { return "add-task" }
func (*addTaskCmd) Synopsis() string { return "add a task to a section" }
func (*addTaskCmd) Usage() string {
	return `wpc add-task -s <section> -t <text>

  Adds an open task to the given section (by id or name).
`
}

func (c *addTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.section, "s", "", "Section id or name.")
	f.StringVar(&c.text, "t", "", "Task text.")
}

func (c *addTaskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(doc *planner.Document) error {
		sectionID := c.section
		if sec := resolveSection(doc, c.section); sec != nil {
			sectionID = sec.ID
		}
		task, err := doc.AddTask(sectionID, c.text)
		if err != nil {
			return err
		}
		fmt.Printf("Added task %q (%s)\n", task.Text, task.ID)
		return nil
	})
}

type toggleCmd struct {
	section string
	id      string
}

func (*toggleCmd) Name() string     { return "toggle" }
func (*toggleCmd) Synopsis() string { return "flip a task between open and completed" }
func (*toggleCmd) Usage() string {
	return `wpc toggle -s <section> -id <task>

  Flips the completion flag of a task. Unknown ids are ignored.
`
}

func (c *toggleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.section, "s", "", "Section id or name.")
	f.StringVar(&c.id, "id", "", "Task id (full or shortened).")
}

func (c *toggleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(doc *planner.Document) error {
		sec := resolveSection(doc, c.section)
		if sec == nil {
			fmt.Fprintf(os.Stderr, "Section %q not found, nothing toggled.\n", c.section)
			return nil
		}
		doc.ToggleTask(sec.ID, resolveID(c.id, taskIDs(sec)))
		return nil
	})
}

type editTaskCmd struct {
	section string
	id      string
	text    string
	done    bool
	undone  bool
}

func (*editTaskCmd) Name() string     { return "edit-task" }
func (*editTaskCmd) Synopsis() string { return "edit a task's text or completion" }
func (*editTaskCmd) Usage() string {
	return `wpc edit-task -s <section> -id <task> [-t <text>] [-done|-undone]

  Patches a task. Only the supplied fields are changed.
`
}

func (c *editTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.section, "s", "", "Section id or name.")
	f.StringVar(&c.id, "id", "", "Task id (full or shortened).")
	f.StringVar(&c.text, "t", "", "New task text.")
	f.BoolVar(&c.done, "done", false, "Mark the task completed.")
	f.BoolVar(&c.undone, "undone", false, "Reopen the task.")
}

func (c *editTaskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.done && c.undone {
		fmt.Fprintln(os.Stderr, "Error: -done and -undone cannot be used together.")
		return subcommands.ExitUsageError
	}
	return mutate(func(doc *planner.Document) error {
		sec := resolveSection(doc, c.section)
		if sec == nil {
			fmt.Fprintf(os.Stderr, "Section %q not found, nothing changed.\n", c.section)
			return nil
		}
		var patch planner.TaskPatch
		if c.text != "" {
			patch.Text = &c.text
		}
		if c.done || c.undone {
			completed := c.done
			patch.Completed = &completed
		}
		return doc.UpdateTask(sec.ID, resolveID(c.id, taskIDs(sec)), patch)
	})
}

type rmTaskCmd struct {
	section string
	id      string
}

func (*rmTaskCmd) Name() string     { return "rm-task" }
func (*rmTaskCmd) Synopsis() string { return "remove a task from its section" }
func (*rmTaskCmd) Usage() string {
	return `wpc rm-task -s <section> -id <task>

  Removes a task. Unknown ids are ignored.
`
}

func (c *rmTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.section, "s", "", "Section id or name.")
	f.StringVar(&c.id, "id", "", "Task id (full or shortened).")
}

func (c *rmTaskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(doc *planner.Document) error {
		sec := resolveSection(doc, c.section)
		if sec == nil {
			fmt.Fprintf(os.Stderr, "Section %q not found, nothing removed.\n", c.section)
			return nil
		}
		doc.DeleteTask(sec.ID, resolveID(c.id, taskIDs(sec)))
		return nil
	})
}

type progressCmd struct{}

func (*progressCmd) Name() string     { return "progress" }
func (*progressCmd) Synopsis() string { return "show the checklist with per-section progress" }
func (*progressCmd) Usage() string {
	return `wpc progress

  Renders every section with its tasks and completion figures.
`
}

func (*progressCmd) SetFlags(*flag.FlagSet) {}

func (c *progressCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(func(doc *planner.Document) error {
		printMarkdown(doc, renderer.Checklist(doc.Sections))
		return nil
	})
}
