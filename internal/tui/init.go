package tui

import (
	"fmt"
	"os"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/config"
	"github.com/lancaster-music-hall/boxoffice/internal/db"
)

// InitState tracks whether first-run setup is required.
type InitState struct {
	NeedsInit     bool
	ConfigMissing bool
	DBMissing     bool
	ConfigPath    string
	DBPath        string
}

// DetectInitState checks for missing config or database files.
func DetectInitState(cfg *config.Config) (InitState, error) {
	state := InitState{
		ConfigPath: config.DefaultConfigPath(),
		DBPath:     cfg.Storage.DBPath,
	}

	configMissing, err := pathMissing(state.ConfigPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	dbMissing, err := pathMissing(state.DBPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking db path: %w", err)
	}

	state.ConfigMissing = configMissing
	state.DBMissing = dbMissing
	state.NeedsInit = configMissing || dbMissing
	return state, nil
}

// Describe lists what first-run setup will create.
func (s InitState) Describe() string {
	msg := "boxoffice will create:\n"
	if s.ConfigMissing {
		msg += "\n  config    " + s.ConfigPath
	}
	if s.DBMissing {
		msg += "\n  database  " + s.DBPath
	}
	return msg
}

func pathMissing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, err
}

func openRepo(dbPath string) (booking.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	repo, err := db.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

func (m Model) initializeStorage() (Model, error) {
	if m.initState.ConfigMissing {
		if err := m.config.SaveTo(m.initState.ConfigPath); err != nil {
			return m, fmt.Errorf("saving config: %w", err)
		}
	}

	if m.repo == nil {
		repo, err := openRepo(m.initState.DBPath)
		if err != nil {
			return m, err
		}
		m.repo = repo
	}

	m.initState = InitState{}
	return m, nil
}
