package curriculum

import (
	"testing"

	"github.com/example/hootacademy/pkg/models"
)

func TestNewCatalogBuiltin(t *testing.T) {
	c := NewCatalog()

	if c.Len() != 9 {
		t.Fatalf("expected 9 builtin standards, got %d", c.Len())
	}

	s, ok := c.ByID("5.2A")
	if !ok {
		t.Fatal("expected 5.2A in the builtin catalog")
	}
	if s.Code != "5.2(A)" {
		t.Errorf("expected code 5.2(A), got %q", s.Code)
	}
	if s.Category != "Number & Operations" {
		t.Errorf("unexpected category %q", s.Category)
	}
}

func TestNewCatalogExtras(t *testing.T) {
	extra := models.Standard{ID: "6.1A", Code: "6.1(A)", Category: "Process", Description: "Apply mathematics."}
	c := NewCatalog(extra)

	if c.Len() != 10 {
		t.Fatalf("expected 10 standards, got %d", c.Len())
	}
	if _, ok := c.ByID("6.1A"); !ok {
		t.Error("expected imported standard to be present")
	}

	// Order is builtin first, extras after
	all := c.All()
	if all[len(all)-1].ID != "6.1A" {
		t.Errorf("expected extras appended last, got %q", all[len(all)-1].ID)
	}
}

func TestNewCatalogIgnoresDuplicatesAndBlanks(t *testing.T) {
	c := NewCatalog(
		models.Standard{ID: "5.2A", Code: "dup", Category: "x", Description: "shadow attempt"},
		models.Standard{ID: "", Code: "blank"},
	)

	if c.Len() != 9 {
		t.Fatalf("expected duplicates and blanks ignored, got %d standards", c.Len())
	}
	s, _ := c.ByID("5.2A")
	if s.Code != "5.2(A)" {
		t.Errorf("builtin entry was shadowed by an import: %q", s.Code)
	}
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	c := NewCatalog()
	all := c.All()
	all[0].Description = "mutated"

	fresh, _ := c.ByID(all[0].ID)
	if fresh.Description == "mutated" {
		t.Error("All must return a copy, not the backing slice")
	}
}

func TestCatalogCategories(t *testing.T) {
	c := NewCatalog()
	cats := c.Categories()

	want := []string{"Number & Operations", "Algebraic Reasoning", "Geometry & Measurement", "Data Analysis"}
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(cats))
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("category %d: expected %q, got %q", i, want[i], cats[i])
		}
	}
}
