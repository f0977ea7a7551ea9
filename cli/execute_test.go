package cli

import (
	"testing"
)

func TestExecuteWrapper(t *testing.T) {
	// force PersistentPreRunE to build a fresh in-memory store
	inventoryStore = nil
	// ensure persistent flags are sane for the test
	rootCmd.PersistentFlags().Set("store", "memory")
	rootCmd.PersistentFlags().Set("store-file", "")
	rootCmd.SetArgs([]string{"add", "--brand", "Amul", "--category", "Milk", "--quantity", "1"})
	if err := Execute(); err != nil {
		t.Fatalf("Execute wrapper failed: %v", err)
	}
}
