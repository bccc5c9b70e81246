package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vovakirdan/solitaire/internal/game"
)

// GameResult is a finished game as stored.
type GameResult struct {
	ID        int64
	Stats     game.Stats
	CreatedAt time.Time
}

// SaveResult records the statistics of a finished game. Saving the same game
// twice is a no-op.
func (s *Store) SaveResult(st game.Stats) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO game_results
		 (game_id, layout_id, won, score, elapsed_secs, moves, tiles_remaining,
		  hints_used, undo_count, wrong_matches, max_combo, auto_shuffles, shuffles)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		st.GameID,
		st.LayoutID,
		boolInt(st.Won),
		st.Score,
		int(st.Elapsed/time.Second),
		st.Moves,
		st.TilesRemaining,
		st.HintsUsed,
		st.UndoCount,
		st.WrongMatches,
		st.MaxCombo,
		st.AutoShuffles,
		st.Shuffles,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save result %s: %w", st.GameID, err)
	}
	return nil
}

// RecentResults retrieves the most recent results for a layout, newest first.
// An empty layoutID returns results of every layout.
func (s *Store) RecentResults(layoutID string, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, layout_id, won, score, elapsed_secs, moves, tiles_remaining,
		        hints_used, undo_count, wrong_matches, max_combo, auto_shuffles, shuffles, created_at
		 FROM game_results
		 WHERE ? = '' OR layout_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		layoutID, layoutID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		var won, secs int
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Stats.GameID,
			&r.Stats.LayoutID,
			&won,
			&r.Stats.Score,
			&secs,
			&r.Stats.Moves,
			&r.Stats.TilesRemaining,
			&r.Stats.HintsUsed,
			&r.Stats.UndoCount,
			&r.Stats.WrongMatches,
			&r.Stats.MaxCombo,
			&r.Stats.AutoShuffles,
			&r.Stats.Shuffles,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Stats.Won = won != 0
		r.Stats.Elapsed = time.Duration(secs) * time.Second
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// LayoutStats contains aggregated statistics for a layout.
type LayoutStats struct {
	LayoutID   string
	Played     int
	Won        int
	HighScore  int
	AvgScore   float64
	BestTime   time.Duration // fastest win, zero if never won
	LastPlayed time.Time
}

// WinRate returns the share of games won, between 0 and 1.
func (ls LayoutStats) WinRate() float64 {
	if ls.Played == 0 {
		return 0
	}
	return float64(ls.Won) / float64(ls.Played)
}

// GetLayoutStats retrieves aggregated statistics for a layout.
func (s *Store) GetLayoutStats(layoutID string) (*LayoutStats, error) {
	stats := &LayoutStats{LayoutID: layoutID}

	var bestSecs sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        MIN(CASE WHEN won = 1 THEN elapsed_secs END)
		 FROM game_results WHERE layout_id = ?`,
		layoutID,
	).Scan(&stats.Played, &stats.Won, &stats.HighScore, &stats.AvgScore, &bestSecs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get layout stats: %w", err)
	}
	if bestSecs.Valid {
		stats.BestTime = time.Duration(bestSecs.Int64) * time.Second
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM game_results WHERE layout_id = ? ORDER BY id DESC LIMIT 1`,
		layoutID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
