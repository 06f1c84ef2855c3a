package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/rl1809/storefront/internal/adapter/console"
	"github.com/rl1809/storefront/internal/catalog"
	"github.com/rl1809/storefront/internal/config"
	"github.com/rl1809/storefront/internal/core/service"
)

func main() {
	cfg := config.Load()

	products, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	shell := console.NewShell(service.NewStore(products...), os.Stdin, color.Output)
	if err := shell.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
}
