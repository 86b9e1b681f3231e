package overlay

import (
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/c9s/chartdraw/pkg/drawing"
	"github.com/c9s/chartdraw/pkg/metrics"
	"github.com/c9s/chartdraw/pkg/types"
)

// Serialize writes the owned drawings as a JSON array of records in
// insertion order. A drawing still mid-creation is transient and is
// skipped; selection state is demoted inside each record.
func (m *Manager) Serialize() ([]byte, error) {
	records := m.Records()

	data, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, "can not encode drawings")
	}
	return data, nil
}

// Records returns the persistable records without encoding them.
func (m *Manager) Records() []types.DrawingRecord {
	records := make([]types.DrawingRecord, 0, len(m.drawings))
	for _, d := range m.drawings {
		if d.State() == types.DrawingStateCreating {
			continue
		}
		records = append(records, d.Record())
	}
	return records
}

// Deserialize clears the current state and restores drawings from a
// JSON array of records. A record with an unrecognized type tag is
// logged and skipped; it never fails the rest of the batch. Saved ids
// are preserved verbatim.
func (m *Manager) Deserialize(data []byte) error {
	var records []types.DrawingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return errors.Wrap(err, "can not decode drawings")
	}

	m.ClearAll()
	m.LoadRecords(records)
	return nil
}

// LoadRecords attaches drawings restored from records, skipping
// unrecognized types.
func (m *Manager) LoadRecords(records []types.DrawingRecord) {
	for _, r := range records {
		d, err := drawing.NewFromRecord(r)
		if err != nil {
			log.WithError(err).WithField("drawing", r.ID).
				Warnf("skipping drawing record with unrecognized type %q", r.Type)
			metrics.DeserializeSkippedMetrics.Inc()
			continue
		}
		m.attach(d)
	}
}
