package cli

import (
	"os"
	"path/filepath"
	"testing"

	"groceryapp/store"
)

// capture error return of Execute for commands expecting failure
func TestPersistentPreRun_FileStoreMissingPath(t *testing.T) {
	inventoryStore = nil
	// attempt to use file store but pass empty path
	rootCmd.PersistentFlags().Set("store", "file")
	rootCmd.PersistentFlags().Set("store-file", "")
	rootCmd.SetArgs([]string{"--store", "file", "--store-file", "", "add", "--brand", "X", "--category", "Y", "--quantity", "1"})
	if err := Execute(); err == nil {
		t.Fatalf("expected error when file store path is empty, got nil")
	}
}

func TestImport_UnsupportedFormat(t *testing.T) {
	inventoryStore = store.NewInMemoryStore()
	rootCmd.PersistentFlags().Set("store", "memory")
	rootCmd.PersistentFlags().Set("store-file", "")
	// create a temp file with invalid JSON
	tmp := filepath.Join(t.TempDir(), "bad_import.json")
	if err := os.WriteFile(tmp, []byte("this is not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"import", "--file", tmp})
	if err := Execute(); err == nil {
		t.Fatalf("expected error for unsupported import format, got nil")
	}
}

func TestImport_NDJSON(t *testing.T) {
	inventoryStore = store.NewInMemoryStore()
	rootCmd.PersistentFlags().Set("store", "memory")
	rootCmd.PersistentFlags().Set("store-file", "")
	// create NDJSON file of add requests
	tmp := filepath.Join(t.TempDir(), "import.ndjson")
	content := "{\"brand\":\"Amul\",\"category\":\"Milk\",\"price\":100,\"quantity\":10}\n" +
		"{\"brand\":\"Nestle\",\"category\":\"Curd\",\"price\":90,\"quantity\":5}\n"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"import", "--file", tmp})
	if err := Execute(); err != nil {
		t.Fatalf("expected successful NDJSON import, got error: %v", err)
	}

	// list to verify
	rootCmd.SetArgs([]string{"list", "--output", "json"})
	if err := Execute(); err != nil {
		t.Fatalf("list failed after NDJSON import: %v", err)
	}
}

func TestImport_InvalidRequestCollected(t *testing.T) {
	inventoryStore = store.NewInMemoryStore()
	rootCmd.PersistentFlags().Set("store", "memory")
	rootCmd.PersistentFlags().Set("store-file", "")
	tmp := filepath.Join(t.TempDir(), "import_bad.json")
	content := `[{"brand":"Amul","category":"Milk","quantity":1},{"brand":"","category":"Milk","quantity":1}]`
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"import", "--file", tmp})
	if err := Execute(); err == nil {
		t.Fatalf("expected error for invalid request in batch, got nil")
	}
}

func TestUnknownStoreKind(t *testing.T) {
	inventoryStore = nil
	// leave store flag set to unknown to validate error path
	rootCmd.PersistentFlags().Set("store", "unknown")
	rootCmd.PersistentFlags().Set("store-file", "")
	rootCmd.SetArgs([]string{"--store", "unknown", "add", "--brand", "X", "--category", "Y", "--quantity", "1"})
	if err := Execute(); err == nil {
		t.Fatalf("expected error for unknown store kind, got nil")
	}
}

func TestExport_NoFileFlag(t *testing.T) {
	inventoryStore = store.NewInMemoryStore()
	rootCmd.PersistentFlags().Set("store", "memory")
	rootCmd.PersistentFlags().Set("store-file", "")
	// ensure export subcommand flag is empty (clear any previous test state)
	for _, c := range rootCmd.Commands() {
		if c.Name() == "export" {
			c.Flags().Set("file", "")
			break
		}
	}
	rootCmd.SetArgs([]string{"export"})
	if err := Execute(); err == nil {
		t.Fatalf("expected error when export --file missing, got nil")
	}
}
