package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	LayoutID  string
	Score     int
	Won       bool
	Elapsed   time.Duration
	CreatedAt time.Time
}

// SaveScore records a finished game's score for the given layout.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(layoutID string, score int, won bool, elapsed time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (layout_id, score, won, elapsed_secs) VALUES (?, ?, ?, ?)",
		layoutID, score, boolInt(won), int(elapsed/time.Second),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given layout.
// Results are ordered by score descending; ties go to the faster game.
func (s *Store) TopScores(layoutID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, layout_id, score, won, elapsed_secs, created_at
		 FROM scores
		 WHERE layout_id = ?
		 ORDER BY score DESC, elapsed_secs ASC, id ASC
		 LIMIT ?`,
		layoutID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var won, secs int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LayoutID, &e.Score, &won, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Won = won != 0
		e.Elapsed = time.Duration(secs) * time.Second
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given layout.
// Returns 0 if no scores exist.
func (s *Store) HighScore(layoutID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE layout_id = ?",
		layoutID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores and results for the given layout.
func (s *Store) ClearScores(layoutID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE layout_id = ?", layoutID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM game_results WHERE layout_id = ?", layoutID); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
