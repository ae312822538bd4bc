// Package renderer turns planner reports into markdown suitable for
// terminal rendering. It produces plain markdown strings; styling is the
// caller's concern.
package renderer

import (
	"fmt"
	"strings"

	"github.com/bernavale/planner"
)

// Summary renders the dashboard overview: checklist progress, guest
// statistics and the combined budget figures.
func Summary(s planner.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", s.Title)

	fmt.Fprintf(&b, "## Checklist\n\n")
	fmt.Fprintf(&b, "%s %d%% (%d/%d tasks)\n\n",
		progressBar(s.Progress.Percentage), s.Progress.Percentage,
		s.Progress.Completed, s.Progress.Total)

	fmt.Fprintf(&b, "## Guests\n\n")
	table(&b,
		[]string{"Invited", "Confirmed", "Headcount", "Paid up"},
		[][]string{{
			fmt.Sprint(s.Guests.Total),
			fmt.Sprint(s.Guests.Confirmed),
			fmt.Sprint(s.Guests.Headcount),
			fmt.Sprint(s.Guests.PaidCount),
		}})

	fmt.Fprintf(&b, "## Budget\n\n")
	table(&b,
		[]string{"Total", "Paid", "Remaining"},
		[][]string{{
			s.Budget.Total.String(),
			s.Budget.Paid.String(),
			s.Budget.Remaining.String(),
		}})

	return b.String()
}

// Checklist renders all sections and their tasks, with a per-section
// completion figure.
func Checklist(sections []planner.Section) string {
	var b strings.Builder
	b.WriteString("# Checklist\n\n")
	for _, sec := range sections {
		p := planner.SectionProgress(sec)
		fmt.Fprintf(&b, "## %s (%d/%d)\n\n", sec.Name, p.Completed, p.Total)
		if len(sec.Tasks) == 0 {
			b.WriteString("_no tasks yet_\n\n")
			continue
		}
		for _, t := range sec.Tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s `%s`\n", mark, t.Text, shortID(t.ID))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Guests renders the guest list with derived payment state per guest.
func Guests(guests []planner.Guest, currency string) string {
	var b strings.Builder
	b.WriteString("# Guests\n\n")
	if len(guests) == 0 {
		b.WriteString("_no guests yet_\n")
		return b.String()
	}

	rows := make([][]string, 0, len(guests))
	for _, g := range guests {
		rows = append(rows, []string{
			g.Name,
			yesNo(g.Confirmed),
			fmt.Sprint(g.Companions),
			planner.M(g.Amount, currency).String(),
			planner.M(g.PaidAmount, currency).String(),
			guestState(g),
			shortID(g.ID),
		})
	}
	table(&b, []string{"Name", "Confirmed", "Companions", "Assigned", "Paid", "State", "ID"}, rows)
	return b.String()
}

// Budget renders the provider ledger and its combined summary line.
func Budget(items []planner.BudgetItem, sum planner.BudgetSummary, currency string) string {
	var b strings.Builder
	b.WriteString("# Budget\n\n")
	if len(items) == 0 {
		b.WriteString("_no budget items yet_\n\n")
	} else {
		rows := make([][]string, 0, len(items))
		for _, it := range items {
			rows = append(rows, []string{
				it.Provider,
				planner.M(it.Total, currency).String(),
				planner.M(it.Deposit, currency).String(),
				planner.M(it.Balance(), currency).String(),
				string(it.Status()),
				shortID(it.ID),
			})
		}
		table(&b, []string{"Provider", "Total", "Deposit", "Balance", "Status", "ID"}, rows)
	}

	fmt.Fprintf(&b, "**Ledger**: %s total, %s paid, %s remaining\n",
		sum.Total, sum.Paid, sum.Remaining)
	return b.String()
}

// guestState is the human word for the derived payment/attendance state:
// a confirmed guest still owing money must never read as paid.
func guestState(g planner.Guest) string {
	switch {
	case g.Paid():
		return "paid"
	case g.Confirmed:
		return "owes"
	default:
		return "not confirmed"
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// shortID keeps listings readable; every id is a UUID and the first
// group is enough to disambiguate interactively.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func progressBar(pct int) string {
	const width = 20
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	return "`[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]`"
}

func table(b *strings.Builder, header []string, rows [][]string) {
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	seps := make([]string, len(header))
	for i := range seps {
		seps[i] = "---"
	}
	b.WriteString("| " + strings.Join(seps, " | ") + " |\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	b.WriteString("\n")
}
