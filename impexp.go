package planner

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// this file handles the backup format. The canonical export is the
// persisted document itself, pretty-printed; import additionally accepts
// the shape written by the original web app and migrates it one-way.

// Export writes the full document as a pretty-printed JSON backup.
func Export(w io.Writer, doc *Document) error {
	return EncodeDocument(w, doc)
}

// Import parses a backup file and returns the document it contains.
//
// Invalid JSON yields a *ParseError, a canonical document missing one of
// the required collections a *FormatError. A document in the legacy shape
// of the original web app (sections carrying cost items, guests with
// amount_assigned/amount_paid) is migrated to the canonical schema.
// Import never touches the store; callers pass the result to
// [Store.Replace].
func Import(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read import file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Err: err}
	}

	if isLegacyShape(raw) {
		log.Printf("import: legacy document detected, migrating to the current schema")
		return importLegacy(data)
	}

	var missing []string
	for _, key := range []string{"sections", "guests", "budgetItems"} {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &FormatError{Missing: missing}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	doc.normalize()
	return &doc, nil
}

// isLegacyShape recognizes the original web app's export. The absence of
// budgetItems alone is not enough: a truncated canonical document looks
// the same, and must fail the collection check instead of being silently
// rewritten. So a legacy marker field has to be present as well, either
// a section carrying cost "items" or a guest with "amount_assigned".
func isLegacyShape(raw map[string]json.RawMessage) bool {
	if _, hasBudget := raw["budgetItems"]; hasBudget {
		return false
	}
	var sections []map[string]json.RawMessage
	if json.Unmarshal(raw["sections"], &sections) == nil {
		for _, s := range sections {
			if _, ok := s["items"]; ok {
				return true
			}
		}
	}
	var guests []map[string]json.RawMessage
	if json.Unmarshal(raw["guests"], &guests) == nil {
		for _, g := range guests {
			if _, ok := g["amount_assigned"]; ok {
				return true
			}
		}
	}
	return false
}

// Legacy types mirror the original app's records. Timestamps were
// millisecond epochs, payments were recorded per item and per guest, and
// a section item doubled as checklist entry and provider cost line.
type (
	legacyDocument struct {
		Meta     legacyMeta      `json:"meta"`
		Sections []legacySection `json:"sections"`
		Guests   []legacyGuest   `json:"guests"`
	}
	legacyMeta struct {
		Title   string `json:"title"`
		Created int64  `json:"created"`
	}
	legacySection struct {
		Name  string       `json:"name"`
		Items []legacyItem `json:"items"`
	}
	legacyItem struct {
		Name      string          `json:"name"`
		Cost      decimal.Decimal `json:"cost"`
		Deposit   decimal.Decimal `json:"deposit"`
		Completed bool            `json:"completed"`
		Payments  []legacyPayment `json:"payments"`
	}
	legacyGuest struct {
		Name           string          `json:"name"`
		Confirmed      bool            `json:"confirmed"`
		AmountAssigned decimal.Decimal `json:"amount_assigned"`
		AmountPaid     decimal.Decimal `json:"amount_paid"`
		Payments       []legacyPayment `json:"payments"`
	}
	legacyPayment struct {
		Amount decimal.Decimal `json:"amount"`
		Date   int64           `json:"date"`
	}
)

func importLegacy(data []byte) (*Document, error) {
	var legacy legacyDocument
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, &ParseError{Err: err}
	}

	doc := DefaultDocument()
	if legacy.Meta.Title != "" {
		doc.Meta.Title = legacy.Meta.Title
	}
	if legacy.Meta.Created > 0 {
		doc.Meta.Created = time.UnixMilli(legacy.Meta.Created)
	}

	for _, ls := range legacy.Sections {
		sec := doc.SectionByName(ls.Name)
		if sec == nil {
			added, err := doc.AddSection(ls.Name)
			if err != nil {
				continue // nameless legacy section, nothing to carry
			}
			sec = added
		}
		for _, li := range ls.Items {
			// Every item was a checklist entry; items with a cost were
			// also provider lines, so they become budget items too.
			sec.Tasks = append(sec.Tasks, Task{
				ID:        newID(),
				Text:      li.Name,
				Completed: li.Completed,
				CreatedAt: doc.Meta.Created,
			})
			if li.Cost.IsPositive() {
				item := BudgetItem{
					ID:        newID(),
					Provider:  li.Name,
					Total:     li.Cost,
					Deposit:   li.Deposit,
					CreatedAt: doc.Meta.Created,
				}
				for _, lp := range li.Payments {
					item.Payments = append(item.Payments, Payment{
						ID:     newID(),
						Amount: lp.Amount,
						Date:   time.UnixMilli(lp.Date),
					})
					item.Deposit = item.Deposit.Add(lp.Amount)
				}
				doc.BudgetItems = append(doc.BudgetItems, item)
			}
		}
	}

	for _, lg := range legacy.Guests {
		g := Guest{
			ID:         newID(),
			Name:       lg.Name,
			Confirmed:  lg.Confirmed,
			Amount:     lg.AmountAssigned,
			PaidAmount: lg.AmountPaid,
			CreatedAt:  doc.Meta.Created,
		}
		for _, lp := range lg.Payments {
			g.Payments = append(g.Payments, Payment{
				ID:     newID(),
				Amount: lp.Amount,
				Date:   time.UnixMilli(lp.Date),
			})
		}
		doc.Guests = append(doc.Guests, g)
	}

	return doc, nil
}
