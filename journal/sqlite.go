package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordDecision(r DecisionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO decisions
		(decision_id, time, player, strategy, pmin, pmax, price, opponent_price, own_profit, opponent_profit, err)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Time.UTC(), r.Player, r.Strategy, r.PMin, r.PMax, r.Price,
		r.OpponentPrice, r.OwnProfit, r.OpponentProfit, r.Err,
	)
	if err != nil {
		return fmt.Errorf("insert decision %s: %w", r.ID, err)
	}
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
