package planner

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Guest is an invitee with an assigned share of the wedding cost and the
// payments received against it.
//
// Whether a guest has paid is never stored: it is always derived from the
// comparison of PaidAmount against Amount at read time, so the two fields
// can never disagree with a stale flag.
type Guest struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Companions int             `json:"companions"`
	Confirmed  bool            `json:"confirmed"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	Payments   []Payment       `json:"payments,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Paid reports whether the guest has covered their assigned share.
func (g Guest) Paid() bool { return g.PaidAmount.GreaterThanOrEqual(g.Amount) }

// Outstanding returns the share still owed. Overpayment reads as zero.
func (g Guest) Outstanding() decimal.Decimal {
	due := g.Amount.Sub(g.PaidAmount)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// GuestInput collects the fields accepted when creating a guest.
type GuestInput struct {
	Name       string
	Companions int
	Confirmed  bool
	Amount     decimal.Decimal
	PaidAmount decimal.Decimal
}

// GuestPatch is a partial update for a guest; nil fields are left
// untouched.
type GuestPatch struct {
	Name       *string
	Companions *int
	Confirmed  *bool
	Amount     *decimal.Decimal
	PaidAmount *decimal.Decimal
}

// Guest returns the guest with the given id, or nil.
func (d *Document) Guest(id string) *Guest {
	for i := range d.Guests {
		if d.Guests[i].ID == id {
			return &d.Guests[i]
		}
	}
	return nil
}

// AddGuest appends a new guest. Numeric fields default to zero and the
// confirmation flag to false when left unset in the input.
func (d *Document) AddGuest(in GuestInput) (*Guest, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationf("guest name cannot be empty")
	}
	if in.Companions < 0 {
		return nil, validationf("companions cannot be negative")
	}
	if in.Amount.IsNegative() || in.PaidAmount.IsNegative() {
		return nil, validationf("guest amounts cannot be negative")
	}
	d.Guests = append(d.Guests, Guest{
		ID:         newID(),
		Name:       name,
		Companions: in.Companions,
		Confirmed:  in.Confirmed,
		Amount:     in.Amount,
		PaidAmount: in.PaidAmount,
		CreatedAt:  time.Now(),
	})
	return &d.Guests[len(d.Guests)-1], nil
}

// UpdateGuest patch-merges into an existing guest. No derived value is
// recomputed or stored here; paid status is read off the amounts. A
// missing id is a silent no-op.
func (d *Document) UpdateGuest(id string, patch GuestPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return validationf("guest name cannot be empty")
	}
	if patch.Companions != nil && *patch.Companions < 0 {
		return validationf("companions cannot be negative")
	}
	if (patch.Amount != nil && patch.Amount.IsNegative()) ||
		(patch.PaidAmount != nil && patch.PaidAmount.IsNegative()) {
		return validationf("guest amounts cannot be negative")
	}
	g := d.Guest(id)
	if g == nil {
		return nil
	}
	if patch.Name != nil {
		g.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Companions != nil {
		g.Companions = *patch.Companions
	}
	if patch.Confirmed != nil {
		g.Confirmed = *patch.Confirmed
	}
	if patch.Amount != nil {
		g.Amount = *patch.Amount
	}
	if patch.PaidAmount != nil {
		g.PaidAmount = *patch.PaidAmount
	}
	return nil
}

// RemoveGuest drops the guest with the given id. Missing ids are a
// silent no-op.
func (d *Document) RemoveGuest(id string) {
	for i := range d.Guests {
		if d.Guests[i].ID == id {
			d.Guests = append(d.Guests[:i], d.Guests[i+1:]...)
			return
		}
	}
}

// RegisterGuestPayment records a payment and raises the guest's paid
// amount accordingly.
func (d *Document) RegisterGuestPayment(id string, amount decimal.Decimal) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, validationf("payment amount must be positive")
	}
	g := d.Guest(id)
	if g == nil {
		return nil, &NotFoundError{Kind: "guest", ID: id}
	}
	g.Payments = append(g.Payments, newPayment(amount))
	g.PaidAmount = g.PaidAmount.Add(amount)
	return &g.Payments[len(g.Payments)-1], nil
}
