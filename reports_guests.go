package planner

import "github.com/shopspring/decimal"

// GuestStats summarizes the guest list on a given document state.
type GuestStats struct {
	Total         int // invitations, not people
	Confirmed     int
	PaidCount     int // guests whose paidAmount covers their amount
	Headcount     int // confirmed guests plus their companions
	TotalAssigned decimal.Decimal
	TotalPaid     decimal.Decimal
}

// NewGuestStats computes guest statistics. Every guest counts toward the
// money totals regardless of confirmation: the assigned share is a
// billing fact, confirmation only tracks attendance.
func NewGuestStats(guests []Guest) GuestStats {
	gs := GuestStats{
		TotalAssigned: decimal.Zero,
		TotalPaid:     decimal.Zero,
	}
	for _, g := range guests {
		gs.Total++
		if g.Confirmed {
			gs.Confirmed++
			gs.Headcount += 1 + g.Companions
		}
		if g.Paid() {
			gs.PaidCount++
		}
		gs.TotalAssigned = gs.TotalAssigned.Add(g.Amount)
		gs.TotalPaid = gs.TotalPaid.Add(g.PaidAmount)
	}
	return gs
}
