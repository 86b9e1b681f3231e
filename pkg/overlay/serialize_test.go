package overlay

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/chartdraw/pkg/types"
)

func TestSerializeSkipsCreatingDrawing(t *testing.T) {
	m := newTestManager()

	m.LoadRecords([]types.DrawingRecord{
		{ID: "done", Type: types.DrawingTrendLine, State: types.DrawingStateComplete, Visible: true,
			Points: []types.DrawingPoint{{Time: 1000, Price: 100}, {Time: 2000, Price: 110}}},
	})

	// leave a second drawing mid-creation
	m.SetMode(types.DrawingPolyline)
	require.True(t, m.StartDrawing(0, 100, nil))
	require.Len(t, m.Drawings(), 2)

	data, err := m.Serialize()
	require.NoError(t, err)

	var records []types.DrawingRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "done", records[0].ID)
}

func TestSerializeDemotesSelection(t *testing.T) {
	m := newTestManager()

	m.LoadRecords([]types.DrawingRecord{
		{ID: "d1", Type: types.DrawingTrendLine, State: types.DrawingStateComplete, Visible: true,
			Points: []types.DrawingPoint{{Time: 1000, Price: 100}, {Time: 2000, Price: 110}}},
	})
	d := m.Drawings()[0]
	d.SetPixelPoints([]types.PixelPoint{{X: 0, Y: 100}, {X: 10, Y: 110}})
	m.SelectDrawingAt(5, 105)
	require.Equal(t, types.DrawingStateSelected, d.State())

	records := m.Records()
	require.Len(t, records, 1)
	assert.Equal(t, types.DrawingStateComplete, records[0].State)
}

func TestDeserializeRoundTrip(t *testing.T) {
	m := newTestManager()

	m.LoadRecords([]types.DrawingRecord{
		{ID: "a", Type: types.DrawingTrendLine, State: types.DrawingStateComplete, Visible: true, Locked: true,
			Points: []types.DrawingPoint{{Time: 1000, Price: 100}, {Time: 2000, Price: 110}}},
		{ID: "b", Type: types.DrawingFibRetracement, State: types.DrawingStateComplete, Visible: true,
			Points: []types.DrawingPoint{{Time: 3000, Price: 50}, {Time: 5000, Price: 150}}},
	})

	data, err := m.Serialize()
	require.NoError(t, err)

	restored := newTestManager()
	require.NoError(t, restored.Deserialize(data))
	require.Len(t, restored.Drawings(), 2)

	a := restored.Drawings()[0]
	assert.Equal(t, "a", a.ID())
	assert.True(t, a.Locked())
	assert.Equal(t, []types.DrawingPoint{{Time: 1000, Price: 100}, {Time: 2000, Price: 110}}, a.Points())

	b := restored.Drawings()[1]
	assert.Equal(t, "b", b.ID())
	assert.Equal(t, types.DrawingFibRetracement, b.Type())
}

func TestDeserializeSkipsUnknownType(t *testing.T) {
	m := newTestManager()

	data, err := json.Marshal([]types.DrawingRecord{
		{ID: "known", Type: types.DrawingTrendLine, State: types.DrawingStateComplete, Visible: true,
			Points: []types.DrawingPoint{{Time: 1000, Price: 100}, {Time: 2000, Price: 110}}},
		{ID: "mystery", Type: "holographicGann", State: types.DrawingStateComplete, Visible: true},
	})
	require.NoError(t, err)

	// one bad record never fails the batch
	require.NoError(t, m.Deserialize(data))
	require.Len(t, m.Drawings(), 1)
	assert.Equal(t, "known", m.Drawings()[0].ID())
}

func TestDeserializeMalformedPayload(t *testing.T) {
	m := newTestManager()
	assert.Error(t, m.Deserialize([]byte("{not json")))
}

func TestDeserializeIgnoresUnknownFields(t *testing.T) {
	m := newTestManager()

	payload := `[{"id":"x","type":"trendLine","state":"complete","visible":true,
		"points":[{"time":1000,"price":1},{"time":2000,"price":2}],
		"style":{},"futureField":{"nested":true}}]`

	require.NoError(t, m.Deserialize([]byte(payload)))
	require.Len(t, m.Drawings(), 1)
	assert.Equal(t, "x", m.Drawings()[0].ID())
}
