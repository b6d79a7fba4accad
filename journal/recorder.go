package journal

import (
	"github.com/coder/quartz"

	"github.com/rustyeddy/pricer/pkg/id"
)

// Recorder stamps records with a time and an ID before handing them to a
// Journal.
type Recorder struct {
	j     Journal
	clock quartz.Clock
}

func NewRecorder(j Journal, clock quartz.Clock) *Recorder {
	if j == nil {
		j = Nop{}
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Recorder{j: j, clock: clock}
}

// Record fills in Time and ID when unset and writes the record. The stamped
// record is returned either way.
func (r *Recorder) Record(rec DecisionRecord) (DecisionRecord, error) {
	if rec.Time.IsZero() {
		rec.Time = r.clock.Now().UTC()
	}
	if rec.ID == "" {
		rec.ID = id.NewAt(rec.Time)
	}
	return rec, r.j.RecordDecision(rec)
}

func (r *Recorder) Close() error {
	return r.j.Close()
}
