package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentally/buyerdesk/internal/advisor"
	"github.com/agentally/buyerdesk/internal/config"
	"github.com/agentally/buyerdesk/internal/database"
	"github.com/agentally/buyerdesk/internal/database/repository"
	"github.com/agentally/buyerdesk/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	repos := tui.Repos{
		Properties: repository.NewPropertyRepo(db),
		Offers:     repository.NewOfferRepo(db),
		Messages:   repository.NewMessageRepo(db),
		Timeline:   repository.NewTimelineRepo(db),
		Market:     repository.NewMarketRepo(db),
		Dashboard:  repository.NewDashboardRepo(db),
	}

	provider := assistantProvider(cfg.Assistant.Provider)

	p := tea.NewProgram(tui.New(ctx, cfg, repos, provider), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// assistantProvider maps the configured provider name onto a backend. Only
// the offline canned provider ships today; unrecognized names fall back to it
// rather than failing startup.
func assistantProvider(name string) advisor.Provider {
	if n := strings.ToLower(strings.TrimSpace(name)); n != "" && n != "canned" {
		log.Printf("warn: unknown assistant provider %q, using canned", name)
	}
	return advisor.NewCannedProvider()
}
