package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/pricer/pkg/id"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		want    any
		wantErr string
	}{
		{"none", Config{Type: "none"}, Nop{}, ""},
		{"empty", Config{}, Nop{}, ""},
		{"csv", Config{Type: "csv", CSV: filepath.Join(dir, "d.csv")}, &CSV{}, ""},
		{"sqlite", Config{Type: "sqlite", DBPath: filepath.Join(dir, "d.db")}, &SQLite{}, ""},
		{"csv missing path", Config{Type: "csv"}, nil, "csv path required"},
		{"sqlite missing path", Config{Type: "sqlite"}, nil, "db_path required"},
		{"unknown", Config{Type: "parquet"}, nil, `unknown type "parquet"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := Open(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, j)
			assert.NoError(t, j.Close())
		})
	}
}

// memJournal keeps records in memory.
type memJournal struct {
	recs   []DecisionRecord
	closed bool
}

func (m *memJournal) RecordDecision(r DecisionRecord) error {
	m.recs = append(m.recs, r)
	return nil
}

func (m *memJournal) Close() error {
	m.closed = true
	return nil
}

func TestRecorder_StampsTimeAndID(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	mClock := quartz.NewMock(t)
	mClock.Set(time.Date(2030, 6, 1, 9, 30, 0, 0, time.UTC)).MustWait(ctx)
	mem := &memJournal{}
	r := NewRecorder(mem, mClock)

	rec, err := r.Record(DecisionRecord{Player: "xxx", Price: 1})
	require.NoError(t, err)
	require.Len(t, mem.recs, 1)

	assert.True(t, rec.Time.Equal(mClock.Now().UTC()))
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, rec, mem.recs[0])

	idTime, err := id.Time(rec.ID)
	require.NoError(t, err)
	assert.True(t, idTime.Equal(rec.Time.Truncate(time.Millisecond)))

	require.NoError(t, r.Close())
	assert.True(t, mem.closed)
}

func TestRecorder_KeepsGivenFields(t *testing.T) {
	mem := &memJournal{}
	r := NewRecorder(mem, quartz.NewMock(t))

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec, err := r.Record(DecisionRecord{ID: "fixed", Time: ts})
	require.NoError(t, err)
	assert.Equal(t, "fixed", rec.ID)
	assert.True(t, rec.Time.Equal(ts))
}

func TestRecorder_NilJournal(t *testing.T) {
	r := NewRecorder(nil, nil)
	_, err := r.Record(DecisionRecord{})
	assert.NoError(t, err)
}
