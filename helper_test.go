package planner

import (
	"github.com/shopspring/decimal"
)

// dec is a helper for tests to build decimal amounts from consts.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ARS is a helper for tests to create pesos money from consts.
func ARS(v float64) Money { return M(v, "ARS") }

// testDocument returns a document with one custom section, ready for
// task-level tests. The section is returned by id because mutations may
// reallocate the backing slice.
func testDocument() (*Document, string) {
	doc := DefaultDocument()
	sec, err := doc.AddSection("Música")
	if err != nil {
		panic(err)
	}
	return doc, sec.ID
}
