package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"invmerge/internal/config"
	"invmerge/internal/excel"
	"invmerge/internal/inventory"
	"invmerge/internal/logger"
	"invmerge/internal/paths"
)

// previewRows is how many merged rows are echoed before saving.
const previewRows = 5

// Generator runs one consolidation: collect the per-warehouse files for a
// category, merge them, write the date-stamped report, format it.
type Generator struct {
	cfg      *config.Config
	resolver *paths.Resolver
}

// New builds a generator for the machine the tool is running on.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg, resolver: paths.NewResolver(cfg)}
}

// NewWithResolver builds a generator with an explicit path resolver.
func NewWithResolver(cfg *config.Config, resolver *paths.Resolver) *Generator {
	return &Generator{cfg: cfg, resolver: resolver}
}

// Run processes one inventory category end to end and returns the written
// report path. Every way the run can come up empty is reported as a message
// and a normal return; nothing here is fatal.
func (g *Generator) Run(category inventory.Category) (string, bool) {
	fmt.Printf("\n--- Processing %s Inventory ---\n", category)
	results := g.Collect(category)

	fmt.Println("\nInventory processing complete.")
	if len(results) == 0 {
		fmt.Println("No inventories were processed.")
		return "", false
	}

	fmt.Printf("\nProcessed %s inventory from:\n", category)
	for _, warehouse := range inventory.Warehouses {
		if _, ok := results[warehouse]; ok {
			fmt.Printf("  - %s\n", warehouse)
		}
	}

	fmt.Println("\n--- Merging Inventories ---")
	merged := inventory.Merge(results)
	if merged == nil {
		fmt.Println("No merged inventory produced.")
		return "", false
	}

	fmt.Println("Merged inventory preview:")
	printPreview(merged)

	outputDir, ok := g.resolver.OutputDir()
	if !ok {
		fmt.Println("Output path not defined; merged inventory not saved to disk.")
		logger.Warn("No output directory for this machine")
		return "", false
	}

	fileName := fmt.Sprintf("merged_inventory_%s_%s.xlsx", category, time.Now().Format("20060102"))
	outputPath := filepath.Join(outputDir, fileName)

	if err := excel.WriteTable(merged, outputPath); err != nil {
		fmt.Printf("Error saving merged inventory: %v\n", err)
		logger.Error("Failed to save merged inventory", "path", outputPath, "error", err)
		return "", false
	}
	fmt.Printf("Merged inventory saved to: %s\n", outputPath)
	logger.Info("Merged inventory saved", "path", outputPath, "rows", len(merged.Rows))

	if err := excel.FormatReport(outputPath); err != nil {
		fmt.Printf("Error formatting %s: %v\n", outputPath, err)
		logger.Error("Failed to format report", "path", outputPath, "error", err)
		return outputPath, true
	}
	fmt.Println("Excel formatting applied.")
	logger.Info("Report formatted", "path", outputPath)

	return outputPath, true
}

// printPreview echoes the header and the first few merged rows.
func printPreview(t *inventory.Table) {
	fmt.Println(strings.Join(t.Columns, " | "))
	for i, row := range t.Rows {
		if i >= previewRows {
			fmt.Printf("... (%d rows total)\n", len(t.Rows))
			break
		}
		fmt.Println(strings.Join(row, " | "))
	}
}
