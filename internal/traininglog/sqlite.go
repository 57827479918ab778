// Package traininglog persists declaration decisions and their outcomes so
// the pattern provider can be retrained from real play.
package traininglog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"baosam/internal/domain"
)

// Record is one logged declaration with its eventual result.
type Record struct {
	GameID    string        `json:"game_id"`
	PlayerID  string        `json:"player_id"`
	Hand      []domain.Card `json:"hand"`
	Sequence  []domain.Combo `json:"sequence"`
	Declared  bool          `json:"declared"`
	Won       bool          `json:"won"`
	NumCombos int           `json:"num_combos"`
	NumCards  int           `json:"num_cards"`
	CreatedAt time.Time     `json:"created_at"`
}

// Stats aggregates the logged declarations.
type Stats struct {
	TotalRecords   int     `json:"total_records"`
	Declarations   int     `json:"declarations"`
	Wins           int     `json:"wins"`
	SuccessRate    float64 `json:"success_rate"`
	AvgCombos      float64 `json:"avg_combos"`
	AvgCardsPlayed float64 `json:"avg_cards_played"`
}

// Store is a SQLite-backed declaration log.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the log database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS declarations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		player_id TEXT NOT NULL,
		hand TEXT NOT NULL,
		sequence TEXT NOT NULL,
		declared INTEGER NOT NULL,
		won INTEGER NOT NULL,
		num_combos INTEGER NOT NULL,
		num_cards INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_declarations_game ON declarations(game_id);
	CREATE INDEX IF NOT EXISTS idx_declarations_player ON declarations(player_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Append writes one record. CreatedAt defaults to now when unset.
func (s *Store) Append(r Record) error {
	hand, err := json.Marshal(r.Hand)
	if err != nil {
		return fmt.Errorf("marshal hand: %w", err)
	}
	seq, err := json.Marshal(r.Sequence)
	if err != nil {
		return fmt.Errorf("marshal sequence: %w", err)
	}
	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err = s.db.Exec(`
		INSERT INTO declarations
			(game_id, player_id, hand, sequence, declared, won, num_combos, num_cards, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.PlayerID, string(hand), string(seq),
		boolToInt(r.Declared), boolToInt(r.Won),
		r.NumCombos, r.NumCards, created.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert declaration: %w", err)
	}
	return nil
}

// ByGame returns every record logged for a game, oldest first.
func (s *Store) ByGame(gameID string) ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT game_id, player_id, hand, sequence, declared, won, num_combos, num_cards, created_at
		FROM declarations WHERE game_id = ? ORDER BY id`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r              Record
			hand, seq      string
			declared, won  int
			createdAtUnix  int64
		)
		if err := rows.Scan(&r.GameID, &r.PlayerID, &hand, &seq, &declared, &won, &r.NumCombos, &r.NumCards, &createdAtUnix); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(hand), &r.Hand); err != nil {
			return nil, fmt.Errorf("unmarshal hand: %w", err)
		}
		if err := json.Unmarshal([]byte(seq), &r.Sequence); err != nil {
			return nil, fmt.Errorf("unmarshal sequence: %w", err)
		}
		r.Declared = declared != 0
		r.Won = won != 0
		r.CreatedAt = time.Unix(createdAtUnix, 0)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Aggregate computes summary stats across the whole log.
func (s *Store) Aggregate() (Stats, error) {
	var stats Stats
	err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(declared), 0),
			COALESCE(SUM(CASE WHEN declared = 1 AND won = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(num_combos), 0),
			COALESCE(AVG(num_cards), 0)
		FROM declarations`).Scan(
		&stats.TotalRecords, &stats.Declarations, &stats.Wins,
		&stats.AvgCombos, &stats.AvgCardsPlayed,
	)
	if err != nil {
		return Stats{}, err
	}
	if stats.Declarations > 0 {
		stats.SuccessRate = float64(stats.Wins) / float64(stats.Declarations)
	}
	return stats, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
