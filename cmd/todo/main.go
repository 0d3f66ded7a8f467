package main

import (
	"errors"
	"fmt"
	"os"

	"todo/internal/config"
	"todo/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	firstLaunch := false
	if _, err := os.Stat(configPath); err != nil {
		firstLaunch = errors.Is(err, os.ErrNotExist)
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	status := "Press 'e' to add, space to toggle, backspace to delete."
	if firstLaunch {
		status = fmt.Sprintf("Wrote default config to %s", configPath)
	}
	if err := ui.Run(cfg, status); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
