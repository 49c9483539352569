package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/hootacademy/internal/database"
)

func TestImportStandardsFromCSV(t *testing.T) {
	if err := database.ConnectTest(); err != nil {
		t.Fatalf("failed to set up test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	csv := "id,code,category,description\n" +
		"6.1A,6.1(A),Process,Apply mathematics to everyday problems.\n" +
		",,,\n" +
		"6.1B,,Process,Missing code row\n" +
		"6.1C,6.1(C),Process,Select tools and techniques.\n"

	path := filepath.Join(t.TempDir(), "standards.csv")
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	result, err := ImportStandards(DefaultImportConfig(path))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if result.TotalProcessed != 4 {
		t.Errorf("expected 4 processed rows, got %d", result.TotalProcessed)
	}
	if result.Imported != 2 {
		t.Errorf("expected 2 imported standards, got %d", result.Imported)
	}
	if result.Skipped != 2 {
		t.Errorf("expected 2 skipped rows, got %d", result.Skipped)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 row error (missing code), got %v", result.Errors)
	}

	imported, err := database.NewStandardRepository().GetAll()
	if err != nil {
		t.Fatalf("failed to read back standards: %v", err)
	}
	if len(imported) != 2 {
		t.Fatalf("expected 2 rows stored, got %d", len(imported))
	}
	if imported[0].ID != "6.1A" || imported[1].ID != "6.1C" {
		t.Errorf("unexpected stored standards: %+v", imported)
	}
}
