// Package main starts the A Loving Lunch terminal editor.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/catalog"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/config"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/gateway"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/session"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/client/tui"
)

func main() {
	options := config.Parse()

	cat, err := catalog.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load ingredient catalog: %v\n", err)
		os.Exit(1)
	}

	store := session.NewFileTokenStore(options.TokenFile)
	api := gateway.New(options.ServerURL, store)
	sess := session.NewManager(api, store)

	p := tea.NewProgram(
		tui.New(cat, api, sess),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "editor error: %v\n", err)
		os.Exit(1)
	}
}
