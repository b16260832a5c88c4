package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/config"
	"github.com/lancaster-music-hall/boxoffice/internal/db"
	"github.com/lancaster-music-hall/boxoffice/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo    booking.Repository
	ownRepo bool // Opened by ensureRepo, closed by Close
	config  *config.Config
	root    *cobra.Command
	debug   bool // Enable debug logging
	noColor bool
}

// NewApp creates a new CLI application. A nil repo is opened lazily from
// the configured database path.
func NewApp(repo booking.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "boxoffice",
		Short: "Bookings for Lancaster's Music Hall",
		Long: `boxoffice is the booking desk for Lancaster's Music Hall.

Run it without arguments to open the terminal app: browse venues, pick a
date on the calendar, book it or send an inquiry. Staff can log in to
approve or deny bookings. The subcommands cover the same data for scripts.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.bookingsCmd())
	a.root.AddCommand(a.inquiriesCmd())
	a.root.AddCommand(a.messagesCmd())
	a.root.AddCommand(a.subscribersCmd())
	a.root.AddCommand(a.venuesCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.staffCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "boxoffice %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	a.ownRepo = true
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database if the app opened it.
func (a *App) Close() error {
	if a.ownRepo && a.repo != nil {
		err := a.repo.Close()
		a.repo = nil
		return err
	}
	return nil
}
