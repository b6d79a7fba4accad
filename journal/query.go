package journal

import (
	"database/sql"
	"errors"
	"fmt"
)

const selectDecision = `
	SELECT decision_id, time, player, strategy, pmin, pmax, price, opponent_price, own_profit, opponent_profit, err
	FROM decisions`

type scanner interface {
	Scan(dest ...any) error
}

func scanDecision(s scanner) (DecisionRecord, error) {
	var rec DecisionRecord
	err := s.Scan(
		&rec.ID,
		&rec.Time,
		&rec.Player,
		&rec.Strategy,
		&rec.PMin,
		&rec.PMax,
		&rec.Price,
		&rec.OpponentPrice,
		&rec.OwnProfit,
		&rec.OpponentProfit,
		&rec.Err,
	)
	return rec, err
}

// GetDecision returns a single decision by ID.
func (j *SQLite) GetDecision(id string) (DecisionRecord, error) {
	rec, err := scanDecision(j.db.QueryRow(selectDecision+` WHERE decision_id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DecisionRecord{}, fmt.Errorf("decision %q not found", id)
		}
		return DecisionRecord{}, err
	}
	return rec, nil
}

// ListDecisions returns the most recent decisions, newest first. A limit of
// zero or less returns all of them.
func (j *SQLite) ListDecisions(limit int) ([]DecisionRecord, error) {
	q := selectDecision + ` ORDER BY time DESC, decision_id DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DecisionRecord
	for rows.Next() {
		rec, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
