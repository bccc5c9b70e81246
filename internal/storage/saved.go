package storage

import (
	"database/sql"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/solitaire/internal/game"
)

// SaveGame stores a game in progress, replacing the saved game of its layout.
func (s *Store) SaveGame(snap game.Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("storage: cannot encode snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saved_games (layout_id, game_id, snapshot)
		 VALUES (?, ?, ?)
		 ON CONFLICT(layout_id) DO UPDATE SET
		   game_id = excluded.game_id,
		   snapshot = excluded.snapshot,
		   updated_at = CURRENT_TIMESTAMP`,
		snap.LayoutID, snap.GameID, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame returns the saved game of a layout, or nil if there is none.
func (s *Store) LoadGame(layoutID string) (*game.Snapshot, error) {
	var data string
	err := s.db.QueryRow(
		"SELECT snapshot FROM saved_games WHERE layout_id = ?",
		layoutID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game: %w", err)
	}

	var snap game.Snapshot
	if err := yaml.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("storage: cannot decode snapshot for %s: %w", layoutID, err)
	}
	return &snap, nil
}

// ClearSavedGame removes the saved game of a layout.
func (s *Store) ClearSavedGame(layoutID string) error {
	if _, err := s.db.Exec("DELETE FROM saved_games WHERE layout_id = ?", layoutID); err != nil {
		return fmt.Errorf("storage: cannot clear saved game: %w", err)
	}
	return nil
}
