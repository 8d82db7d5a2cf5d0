package symtab_test

import (
	"testing"

	"github.com/Andres-QG/transpyler/pkg/symtab"
	"github.com/Andres-QG/transpyler/pkg/token"
)

func TestAddIsIdempotent(t *testing.T) {
	st := symtab.New()
	if !st.Add("x", 1, 1, token.ID) {
		t.Fatalf("first Add should report insertion")
	}
	if st.Add("x", 5, 9, token.ID) {
		t.Fatalf("second Add of the same name should report no insertion")
	}
	entry, ok := st.Get("x")
	if !ok {
		t.Fatalf("expected entry for x")
	}
	if entry.Line != 1 || entry.Column != 1 {
		t.Errorf("Add did not keep first-seen position, got line=%d col=%d", entry.Line, entry.Column)
	}
	if entry.Kind != token.ID {
		t.Errorf("expected recorded Kind to be ID, got %v", entry.Kind)
	}
}

func TestExistsAndRemove(t *testing.T) {
	st := symtab.New()
	st.Add("y", 2, 3, token.ID)
	if !st.Exists("y") {
		t.Fatalf("expected y to exist")
	}
	st.Remove("y")
	if st.Exists("y") {
		t.Fatalf("expected y to be removed")
	}
}

func TestEntriesFirstSeenOrder(t *testing.T) {
	st := symtab.New()
	st.Add("b", 1, 1, token.ID)
	st.Add("a", 2, 1, token.ID)
	st.Add("b", 3, 1, token.ID)

	entries := st.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "b" || entries[1].Name != "a" {
		t.Errorf("expected first-seen order [b a], got %v", entries)
	}
}
