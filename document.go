package planner

import (
	"time"

	"github.com/google/uuid"
)

// Document is the single root aggregate of the planner. Everything the app
// knows lives here, and the whole value is persisted as one JSON blob.
//
// Collections keep insertion order; insertion order is display order.
type Document struct {
	Meta        Meta              `json:"meta"`
	Sections    []Section         `json:"sections"`
	Guests      []Guest           `json:"guests"`
	BudgetItems []BudgetItem      `json:"budgetItems"`
	Settings    map[string]string `json:"settings"`
}

// Meta carries document-level information.
type Meta struct {
	Title   string    `json:"title"`
	Created time.Time `json:"created"`
}

// Settings keys understood by the application. The map is open: unknown
// keys round-trip untouched.
const (
	SettingCurrency = "currency"
	SettingDarkMode = "darkMode"
)

// DefaultCurrency is the currency used when the document settings carry none.
const DefaultCurrency = "ARS"

// BuiltinSections are seeded into every fresh document. They are not
// deletable through the custom-section path.
var BuiltinSections = []string{
	"Salón / Recepción",
	"Invitados",
	"Vestimenta",
	"Proveedores",
}

// DefaultDocument builds the skeleton used on first run or when the
// persisted blob cannot be read.
func DefaultDocument() *Document {
	doc := &Document{
		Meta: Meta{
			Title:   "Nuestra Boda",
			Created: time.Now(),
		},
		Guests:      []Guest{},
		BudgetItems: []BudgetItem{},
		Settings: map[string]string{
			SettingCurrency: DefaultCurrency,
			SettingDarkMode: "false",
		},
	}
	for _, name := range BuiltinSections {
		doc.Sections = append(doc.Sections, Section{
			ID:    newID(),
			Name:  name,
			Tasks: []Task{},
		})
	}
	return doc
}

// Currency returns the document's display currency.
func (d *Document) Currency() string {
	if c := d.Settings[SettingCurrency]; c != "" {
		return c
	}
	return DefaultCurrency
}

// normalize enforces the document shape on read: collections and the
// settings map are never nil, so every caller can range over them.
func (d *Document) normalize() {
	if d.Sections == nil {
		d.Sections = []Section{}
	}
	for i := range d.Sections {
		if d.Sections[i].Tasks == nil {
			d.Sections[i].Tasks = []Task{}
		}
	}
	if d.Guests == nil {
		d.Guests = []Guest{}
	}
	if d.BudgetItems == nil {
		d.BudgetItems = []BudgetItem{}
	}
	if d.Settings == nil {
		d.Settings = map[string]string{
			SettingCurrency: DefaultCurrency,
		}
	}
}

// checkCollections verifies the three required top-level collections are
// present. A candidate failing this check must never replace the stored
// document.
func (d *Document) checkCollections() error {
	var missing []string
	if d.Sections == nil {
		missing = append(missing, "sections")
	}
	if d.Guests == nil {
		missing = append(missing, "guests")
	}
	if d.BudgetItems == nil {
		missing = append(missing, "budgetItems")
	}
	if len(missing) > 0 {
		return &FormatError{Missing: missing}
	}
	return nil
}

// newID returns a fresh unique identifier. The source app concatenated
// time and random digits; a UUID gives a hard uniqueness guarantee.
func newID() string { return uuid.NewString() }
