package planner

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus is the payment state of a budget item, computed from its
// total and deposit at read time.
type ItemStatus string

const (
	StatusPending ItemStatus = "pending"
	StatusPartial ItemStatus = "partial"
	StatusPaid    ItemStatus = "paid"
)

// BudgetItem is one provider/vendor line of the wedding ledger. Balance
// and status are pure functions of Total and Deposit and are therefore
// never persisted.
type BudgetItem struct {
	ID        string          `json:"id"`
	Provider  string          `json:"provider"`
	Total     decimal.Decimal `json:"total"`
	Deposit   decimal.Decimal `json:"deposit"`
	Payments  []Payment       `json:"payments,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Balance returns what is still owed to the provider.
func (it BudgetItem) Balance() decimal.Decimal { return it.Total.Sub(it.Deposit) }

// Status derives the payment state: no deposit is pending, a deposit
// covering the total is paid, anything in between is partial.
func (it BudgetItem) Status() ItemStatus {
	switch {
	case it.Deposit.IsZero():
		return StatusPending
	case it.Deposit.GreaterThanOrEqual(it.Total):
		return StatusPaid
	default:
		return StatusPartial
	}
}

// BudgetItemInput collects the fields accepted when creating a budget item.
type BudgetItemInput struct {
	Provider string
	Total    decimal.Decimal
	Deposit  decimal.Decimal
}

// BudgetItemPatch is a partial update for a budget item; nil fields are
// left untouched.
type BudgetItemPatch struct {
	Provider *string
	Total    *decimal.Decimal
	Deposit  *decimal.Decimal
}

// BudgetItem returns the item with the given id, or nil.
func (d *Document) BudgetItem(id string) *BudgetItem {
	for i := range d.BudgetItems {
		if d.BudgetItems[i].ID == id {
			return &d.BudgetItems[i]
		}
	}
	return nil
}

// AddBudgetItem appends a new provider line. The total must be positive;
// the deposit defaults to zero.
func (d *Document) AddBudgetItem(in BudgetItemInput) (*BudgetItem, error) {
	provider := strings.TrimSpace(in.Provider)
	if provider == "" {
		return nil, validationf("provider cannot be empty")
	}
	if !in.Total.IsPositive() {
		return nil, validationf("item total must be positive")
	}
	if in.Deposit.IsNegative() {
		return nil, validationf("deposit cannot be negative")
	}
	d.BudgetItems = append(d.BudgetItems, BudgetItem{
		ID:        newID(),
		Provider:  provider,
		Total:     in.Total,
		Deposit:   in.Deposit,
		CreatedAt: time.Now(),
	})
	return &d.BudgetItems[len(d.BudgetItems)-1], nil
}

// UpdateBudgetItem patch-merges into an existing item. Balance and status
// always follow from the resulting total and deposit, so a patch carrying
// only a deposit is implicitly recomputed against the stored total. A
// missing id is a silent no-op.
func (d *Document) UpdateBudgetItem(id string, patch BudgetItemPatch) error {
	if patch.Provider != nil && strings.TrimSpace(*patch.Provider) == "" {
		return validationf("provider cannot be empty")
	}
	if patch.Total != nil && !patch.Total.IsPositive() {
		return validationf("item total must be positive")
	}
	if patch.Deposit != nil && patch.Deposit.IsNegative() {
		return validationf("deposit cannot be negative")
	}
	it := d.BudgetItem(id)
	if it == nil {
		return nil
	}
	if patch.Provider != nil {
		it.Provider = strings.TrimSpace(*patch.Provider)
	}
	if patch.Total != nil {
		it.Total = *patch.Total
	}
	if patch.Deposit != nil {
		it.Deposit = *patch.Deposit
	}
	return nil
}

// RemoveBudgetItem drops the item with the given id. Missing ids are a
// silent no-op.
func (d *Document) RemoveBudgetItem(id string) {
	for i := range d.BudgetItems {
		if d.BudgetItems[i].ID == id {
			d.BudgetItems = append(d.BudgetItems[:i], d.BudgetItems[i+1:]...)
			return
		}
	}
}

// RegisterItemPayment records a payment against a provider and raises the
// item's deposit accordingly, which in turn moves its derived status.
func (d *Document) RegisterItemPayment(id string, amount decimal.Decimal) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, validationf("payment amount must be positive")
	}
	it := d.BudgetItem(id)
	if it == nil {
		return nil, &NotFoundError{Kind: "budget item", ID: id}
	}
	it.Payments = append(it.Payments, newPayment(amount))
	it.Deposit = it.Deposit.Add(amount)
	return &it.Payments[len(it.Payments)-1], nil
}
