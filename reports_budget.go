package planner

// BudgetSummary is the combined wedding ledger: provider lines and guest
// shares are both financial line items feeding one total.
type BudgetSummary struct {
	Total     Money // provider totals plus assigned guest shares
	Paid      Money // deposits plus guest payments received
	Remaining Money
}

// NewBudgetSummary combines the provider ledger with the guest statistics
// into the figures shown on the dashboard.
func NewBudgetSummary(items []BudgetItem, gs GuestStats, currency string) BudgetSummary {
	total := gs.TotalAssigned
	paid := gs.TotalPaid
	for _, it := range items {
		total = total.Add(it.Total)
		paid = paid.Add(it.Deposit)
	}
	return BudgetSummary{
		Total:     M(total, currency),
		Paid:      M(paid, currency),
		Remaining: M(total.Sub(paid), currency),
	}
}

// Summary is the at-a-glance overview every view refreshes from after a
// mutation.
type Summary struct {
	Title    string
	Currency string
	Progress Progress
	Guests   GuestStats
	Budget   BudgetSummary
}

// NewSummary derives the full dashboard summary from the document.
func NewSummary(doc *Document) Summary {
	gs := NewGuestStats(doc.Guests)
	return Summary{
		Title:    doc.Meta.Title,
		Currency: doc.Currency(),
		Progress: TaskProgress(doc.Sections),
		Guests:   gs,
		Budget:   NewBudgetSummary(doc.BudgetItems, gs, doc.Currency()),
	}
}
