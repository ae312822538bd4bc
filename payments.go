package planner

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one recorded payment against a guest's share or a budget
// item. Payments are an append-only audit trail: removing one is not
// supported, and totals are adjusted at registration time.
type Payment struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

func newPayment(amount decimal.Decimal) Payment {
	return Payment{ID: newID(), Amount: amount, Date: time.Now()}
}
