package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"decision_id", "time", "player", "strategy", "pmin", "pmax", "price",
	"opponent_price", "own_profit", "opponent_profit", "err",
}

type CSV struct {
	w *csv.Writer
	f *os.File
}

// NewCSV creates (or truncates) path and writes the header row.
func NewCSV(path string) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &CSV{w: w, f: f}, nil
}

func (j *CSV) RecordDecision(r DecisionRecord) error {
	err := j.w.Write([]string{
		r.ID,
		r.Time.UTC().Format(time.RFC3339),
		r.Player,
		r.Strategy,
		ff(r.PMin),
		ff(r.PMax),
		ff(r.Price),
		ff(r.OpponentPrice),
		ff(r.OwnProfit),
		ff(r.OpponentProfit),
		r.Err,
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		_ = j.f.Close()
		return err
	}
	return j.f.Close()
}

func ff(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
