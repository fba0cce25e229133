package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mergington/activities-tui/internal/app"
	"github.com/mergington/activities-tui/internal/client"
	"github.com/mergington/activities-tui/internal/config"
	"github.com/mergington/activities-tui/internal/dispatch"
	"github.com/mergington/activities-tui/internal/session"
)

func main() {
	baseURL := flag.String("url", "", "Backend base URL (overrides config)")
	cfgPath := flag.String("config", "", "Config file path")
	tokenFile := flag.String("token-file", "", "Session token file (overrides config)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(configPath(*cfgPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *tokenFile != "" {
		cfg.TokenFile = *tokenFile
	}

	// Diagnostics can't go to the terminal while the TUI owns it.
	if os.Getenv("ACTIVITIES_DEBUG") != "" {
		f, err := tea.LogToFile("activities-debug.log", "debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	sessions := session.NewStore(tokenPath(cfg.TokenFile))
	sessions.Restore()

	api := client.New(cfg.BaseURL, cfg.RequestTimeout)
	actions := dispatch.New(api, sessions)

	m := app.New(api, actions, sessions, cfg.RefreshInterval)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configPath resolves the config file location: explicit flag, else the
// user config directory.
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "mergington-activities", "config.yaml")
}

// tokenPath resolves the session token location: config override, else
// the standard path next to the config file.
func tokenPath(override string) string {
	if override != "" {
		return override
	}
	path, err := session.DefaultPath()
	if err != nil {
		return "auth_token"
	}
	return path
}
