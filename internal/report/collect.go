package report

import (
	"fmt"
	"os"
	"path/filepath"

	"invmerge/internal/excel"
	"invmerge/internal/inventory"
	"invmerge/internal/logger"
)

// Collect loads the category's inventory file from every warehouse whose
// share is reachable and whose file parses. Missing or broken files only
// shrink the result; the run keeps going with whatever loaded.
func (g *Generator) Collect(category inventory.Category) map[inventory.Warehouse]*inventory.Table {
	results := make(map[inventory.Warehouse]*inventory.Table)

	if !category.Known() {
		fmt.Printf("Unknown inventory type: %s\n", category)
		logger.Warn("Unknown inventory type", "category", string(category))
		return results
	}

	for _, warehouse := range inventory.Warehouses {
		basePath, ok := g.resolver.BasePath(warehouse)
		if !ok {
			fmt.Printf("Could not determine base path for warehouse: %s\n", warehouse)
			logger.Warn("No base path for warehouse", "warehouse", string(warehouse))
			continue
		}

		listDirectoryContents(warehouse, basePath)

		fileName, ok := category.FileName(warehouse)
		if !ok {
			fmt.Printf("No filename defined for %s in warehouse %s.\n", category, warehouse)
			continue
		}

		filePath := filepath.Join(basePath, fileName)
		fmt.Printf("\nLooking for file: %s\n", filePath)

		table, ok := excel.LoadTable(filePath)
		if !ok {
			fmt.Printf("Skipping %s for %s as file could not be loaded.\n", warehouse, category)
			continue
		}
		results[warehouse] = table
	}

	return results
}

// listDirectoryContents prints the warehouse folder contents so a missing
// file can be checked against what is actually on the share. Best effort.
func listDirectoryContents(warehouse inventory.Warehouse, basePath string) {
	fmt.Printf("\n--- Listing contents for warehouse %s ---\n", warehouse)
	entries, err := os.ReadDir(basePath)
	if err != nil {
		fmt.Printf("Error listing directory %s: %v\n", basePath, err)
		logger.Warn("Failed to list warehouse directory", "path", basePath, "error", err)
		return
	}
	for _, entry := range entries {
		fmt.Println(entry.Name())
	}
}
