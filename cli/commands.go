// Package cli provides the Cobra-based CLI for grocery-cli.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"groceryapp/domain"
	"groceryapp/inventory"
	"groceryapp/search"
	"groceryapp/store"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:   "grocery-cli",
		Short: "A grocery stock tracking and search system",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject store
			if inventoryStore == nil {
				if cfg := viper.GetString("config"); cfg != "" {
					viper.SetConfigFile(cfg)
					if err := viper.ReadInConfig(); err != nil {
						return err
					}
				}

				lvlStr := strings.ToLower(viper.GetString("log-level"))
				lvl := slog.LevelInfo
				switch lvlStr {
				case "debug":
					lvl = slog.LevelDebug
				case "warn", "warning":
					lvl = slog.LevelWarn
				case "error":
					lvl = slog.LevelError
				}
				slog.SetDefault(slog.New(
					slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
				))

				var err error
				inventoryStore, err = store.NewStore(
					viper.GetString("store"),
					viper.GetString("store-file"),
				)
				if err != nil {
					return err
				}
			}

			svc = inventory.NewService(inventoryStore)
			engine = search.NewEngine(inventoryStore)
			return nil
		},
	}

	inventoryStore domain.InventoryStore
	svc            *inventory.Service
	engine         *search.Engine
)

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("grocery> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
				resetSubcommandFlags(rootCmd)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("store", "memory", "store backend: memory|file")
	rootCmd.PersistentFlags().String("store-file", "data/grocery.json", "file store path")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("store-file", rootCmd.PersistentFlags().Lookup("store-file"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("GROCERY")
	viper.AutomaticEnv()

	// add
	var brand, category string
	var price float64
	var quantity int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add stock for a brand/category item",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := inventory.AddRequest{
				Brand:    brand,
				Category: category,
				Quantity: quantity,
			}
			if cmd.Flags().Changed("price") {
				req.Price = &price
			}
			view, err := svc.AddInventory(context.Background(), req)
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(view, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	addCmd.Flags().StringVar(&brand, "brand", "", "brand name")
	addCmd.Flags().StringVar(&category, "category", "", "category name")
	addCmd.Flags().Float64Var(&price, "price", 0, "unit price")
	addCmd.Flags().IntVar(&quantity, "quantity", 0, "quantity to add")
	rootCmd.AddCommand(addCmd)

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List current inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := svc.ListInventory(context.Background())
			if err != nil {
				return err
			}
			if lOutput == "json" {
				b, _ := json.MarshalIndent(views, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, v := range views {
				fmt.Printf("%s | %s | %d | %s\n", v.Brand, v.Category, v.Quantity, v.Status)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	rootCmd.AddCommand(listCmd)

	// search
	var sBrands, sCategories []string
	var sMin, sMax float64
	var sSortBy, sSortDir, sOutput string
	var sPage, sSize int
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search inventory with filters, sorting and pagination",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := domain.SearchQuery{
				Brands:        sBrands,
				Categories:    sCategories,
				SortBy:        sSortBy,
				SortDirection: sSortDir,
				Page:          sPage,
				PageSize:      sSize,
			}
			if cmd.Flags().Changed("min-price") {
				q.MinPrice = &sMin
			}
			if cmd.Flags().Changed("max-price") {
				q.MaxPrice = &sMax
			}
			page, err := engine.SearchItems(context.Background(), q)
			if err != nil {
				return err
			}
			if sOutput == "json" {
				b, _ := json.MarshalIndent(page, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, r := range page.Results {
				priceStr := "-"
				if r.Price != nil {
					priceStr = fmt.Sprintf("%.2f", *r.Price)
				}
				fmt.Printf("%s | %s | %s | %d\n", r.Brand, r.Category, priceStr, r.Quantity)
			}
			fmt.Printf("page %d/%d (%d results)\n", page.CurrentPage, page.TotalPages, page.TotalResults)
			return nil
		},
	}
	searchCmd.Flags().StringSliceVar(&sBrands, "brands", nil, "brand names")
	searchCmd.Flags().StringSliceVar(&sCategories, "categories", nil, "category names")
	searchCmd.Flags().Float64Var(&sMin, "min-price", 0, "minimum price")
	searchCmd.Flags().Float64Var(&sMax, "max-price", 0, "maximum price")
	searchCmd.Flags().StringVar(&sSortBy, "sort-by", "price", "sort field")
	searchCmd.Flags().StringVar(&sSortDir, "sort-direction", "asc", "sort direction")
	searchCmd.Flags().IntVar(&sPage, "page", 0, "zero-based page index")
	searchCmd.Flags().IntVar(&sSize, "size", 10, "page size")
	searchCmd.Flags().StringVar(&sOutput, "output", "", "output format")
	rootCmd.AddCommand(searchCmd)

	// import (supports NDJSON and JSON arrays)
	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Import add requests from JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}

			b, err := os.ReadFile(importFile)
			if err != nil {
				return err
			}

			btrim := bytes.TrimSpace(b)
			if len(btrim) == 0 {
				return errors.New("empty file")
			}

			var reqs []inventory.AddRequest

			// JSON array
			if btrim[0] == '[' {
				if err := json.Unmarshal(btrim, &reqs); err != nil {
					return err
				}
			} else {
				// NDJSON or single JSON object
				scanner := bufio.NewScanner(bytes.NewReader(btrim))
				for scanner.Scan() {
					line := bytes.TrimSpace(scanner.Bytes())
					if len(line) == 0 {
						continue
					}
					var req inventory.AddRequest
					if err := json.Unmarshal(line, &req); err != nil {
						return err
					}
					reqs = append(reqs, req)
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			return svc.BulkAdd(context.Background(), reqs)
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	rootCmd.AddCommand(importCmd)

	// export
	var exportFile string
	exportCmd := &cobra.Command{
		Use:   "export --file <file>",
		Short: "Export inventory views to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFile == "" {
				return errors.New("--file required")
			}
			views, err := svc.ListInventory(context.Background())
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(views, "", "  ")
			return os.WriteFile(exportFile, b, 0o644)
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file")
	rootCmd.AddCommand(exportCmd)
}

// resetSubcommandFlags restores subcommand flags to their declared
// defaults. Cobra keeps flag values and Changed state across Execute
// calls, so each shell line would otherwise inherit flags from the
// previous one.
func resetSubcommandFlags(root *cobra.Command) {
	for _, sub := range root.Commands() {
		sub.Flags().Visit(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
}

func Execute() error {
	return rootCmd.Execute()
}
