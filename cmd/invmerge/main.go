package main

import (
	"fmt"
	"os"

	"invmerge/internal/config"
	"invmerge/internal/inventory"
	"invmerge/internal/logger"
	"invmerge/internal/report"
	"invmerge/internal/tui"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env so INVMERGE_CONFIG can point at an alternate config
	godotenv.Load()

	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	category, ok := chooseCategory(os.Args[1:])
	if !ok {
		fmt.Println("Opción inválida. Saliendo.")
		return
	}

	generator := report.New(cfg)
	if path, ok := generator.Run(category); ok {
		fmt.Printf("\n✓ Done. Report at: %s\n", path)
	}
}

// chooseCategory takes the category from the command line when given,
// otherwise from the interactive menu.
func chooseCategory(args []string) (inventory.Category, bool) {
	if len(args) > 0 {
		return inventory.ParseChoice(args[0])
	}

	category, ok, err := tui.SelectCategory()
	if err != nil {
		logger.Error("Selection menu failed", "error", err)
		fmt.Printf("Error running selection menu: %v\n", err)
		return "", false
	}
	return category, ok
}

func configPath() string {
	if path := os.Getenv("INVMERGE_CONFIG"); path != "" {
		return path
	}
	return "configs/config.toml"
}
