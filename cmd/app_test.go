package cmd

import (
	"path/filepath"
	"testing"

	"github.com/bernavale/planner"
	"github.com/google/subcommands"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "0", false},
		{"1500", "1500", false},
		{"1500.50", "1500.5", false},
		{"abc", "", true},
		{"1,500", "", true},
	}
	for _, tc := range tests {
		got, err := parseAmount(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseAmount(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got.String() != tc.want {
			t.Errorf("parseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestResolveID(t *testing.T) {
	ids := []string{
		"a1b2c3d4-0000-0000-0000-000000000001",
		"a1b2ffff-0000-0000-0000-000000000002",
		"deadbeef-0000-0000-0000-000000000003",
	}
	tests := []struct {
		ref  string
		want string
	}{
		// exact match always wins
		{"deadbeef-0000-0000-0000-000000000003", "deadbeef-0000-0000-0000-000000000003"},
		// unambiguous prefix
		{"dead", "deadbeef-0000-0000-0000-000000000003"},
		{"a1b2c3", "a1b2c3d4-0000-0000-0000-000000000001"},
		// too short to be a prefix, returned as-is
		{"a1b", "a1b"},
		// ambiguous prefix stays unresolved so no mutation lands on the
		// wrong record
		{"a1b2", "a1b2"},
		// unknown ref passes through so callers report not-found
		{"ffff", "ffff"},
	}
	for _, tc := range tests {
		if got := resolveID(tc.ref, ids); got != tc.want {
			t.Errorf("resolveID(%q) = %q, want %q", tc.ref, got, tc.want)
		}
	}
}

func TestResolveSection(t *testing.T) {
	doc := planner.DefaultDocument()
	sec := doc.SectionByName("Invitados")
	if sec == nil {
		t.Fatal("builtin section Invitados missing")
	}

	if got := resolveSection(doc, sec.ID); got == nil || got.ID != sec.ID {
		t.Errorf("resolveSection by id failed")
	}
	if got := resolveSection(doc, "invitados"); got == nil || got.ID != sec.ID {
		t.Errorf("resolveSection by name should be case-insensitive")
	}
	if got := resolveSection(doc, "no-such"); got != nil {
		t.Errorf("resolveSection(no-such) = %v, want nil", got)
	}
}

func TestMutatePersists(t *testing.T) {
	file := filepath.Join(t.TempDir(), "wedding.json")
	old := *documentFile
	*documentFile = file
	defer func() { *documentFile = old }()

	status := mutate(func(doc *planner.Document) error {
		_, err := doc.AddGuest(planner.GuestInput{Name: "Lola"})
		return err
	})
	if status != subcommands.ExitSuccess {
		t.Fatalf("mutate returned %v", status)
	}

	doc, err := planner.NewStore(file).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Guests) != 1 || doc.Guests[0].Name != "Lola" {
		t.Errorf("mutation was not persisted: %+v", doc.Guests)
	}
}
