package scale

import (
	"math"
	"sort"
)

// Mapper is the bidirectional coordinate mapper. Every method returns an
// absent result (ok == false) instead of erroring when the timestamp
// table is empty or a scale collaborator is missing: these run on every
// pointer move and callers just skip the frame.
//
// Outside the table the bar index is extrapolated with a constant step
// taken from the first or last interval. That assumes uniform bar
// spacing, which is an accepted approximation for irregular sessions.
type Mapper struct {
	timestamps []int64

	timeScale  TimeScale
	priceScale PriceScale
}

func NewMapper(timeScale TimeScale, priceScale PriceScale) *Mapper {
	return &Mapper{
		timeScale:  timeScale,
		priceScale: priceScale,
	}
}

// SetTimestamps replaces the timestamp table. The table must be
// ascending; it is supplied by the chart's data feed on every bar update.
func (m *Mapper) SetTimestamps(timestamps []int64) {
	m.timestamps = timestamps
}

func (m *Mapper) Timestamps() []int64 {
	return m.timestamps
}

// TimeToIndex converts a timestamp to a fractional bar index. With a
// single-entry table the edge interval degenerates; a step of one bar is
// assumed.
func (m *Mapper) TimeToIndex(t int64) (float64, bool) {
	n := len(m.timestamps)
	if n == 0 {
		return 0, false
	}

	first := m.timestamps[0]
	last := m.timestamps[n-1]

	if t < first {
		step := m.edgeStep(0)
		return float64(t-first) / step, true
	}
	if t > last {
		step := m.edgeStep(n - 1)
		return float64(n-1) + float64(t-last)/step, true
	}

	i := sort.Search(n, func(i int) bool { return m.timestamps[i] >= t })
	if m.timestamps[i] == t {
		return float64(i), true
	}

	// t falls strictly between i-1 and i
	t0 := m.timestamps[i-1]
	t1 := m.timestamps[i]
	return float64(i-1) + float64(t-t0)/float64(t1-t0), true
}

// IndexToTime converts a fractional bar index back to a timestamp.
// In-range fractional indices interpolate between the two adjacent table
// entries; out-of-range indices extrapolate with the edge interval.
func (m *Mapper) IndexToTime(index float64) (int64, bool) {
	n := len(m.timestamps)
	if n == 0 {
		return 0, false
	}

	if index < 0 {
		step := m.edgeStep(0)
		return m.timestamps[0] + int64(index*step), true
	}
	if index > float64(n-1) {
		// Past the end, steps are counted from the first out-of-range
		// index (n), not from the last entry. Historical behavior,
		// preserved for compatibility: over [1000, 2000, 3000], index 4
		// maps to 4000, and anything within the first overflow bar
		// collapses onto the last timestamp.
		step := m.edgeStep(n - 1)
		steps := index - float64(n)
		if steps < 0 {
			steps = 0
		}
		return m.timestamps[n-1] + int64(steps*step), true
	}

	i := int(math.Floor(index))
	frac := index - float64(i)
	if frac == 0 || i == n-1 {
		return m.timestamps[i], true
	}

	return m.timestamps[i] + int64(frac*float64(m.timestamps[i+1]-m.timestamps[i])), true
}

// TimeToPixel maps a timestamp to a pixel x coordinate through the time
// scale collaborator.
func (m *Mapper) TimeToPixel(t int64) (float64, bool) {
	if m.timeScale == nil {
		return 0, false
	}

	index, ok := m.TimeToIndex(t)
	if !ok {
		return 0, false
	}

	return m.timeScale.IndexToCoordinate(index)
}

// PixelToTime maps a pixel x coordinate to a timestamp through the time
// scale collaborator.
func (m *Mapper) PixelToTime(x float64) (int64, bool) {
	if m.timeScale == nil {
		return 0, false
	}

	index, ok := m.timeScale.CoordinateToIndex(x)
	if !ok {
		return 0, false
	}

	return m.IndexToTime(index)
}

func (m *Mapper) PriceToPixel(price float64) (float64, bool) {
	if m.priceScale == nil {
		return 0, false
	}
	return m.priceScale.PriceToCoordinate(price)
}

func (m *Mapper) PixelToPrice(y float64) (float64, bool) {
	if m.priceScale == nil {
		return 0, false
	}
	return m.priceScale.CoordinateToPrice(y)
}

// NearestIndex returns the in-range bar index closest to the pixel x
// coordinate, for magnet lookups.
func (m *Mapper) NearestIndex(x float64) (int, bool) {
	n := len(m.timestamps)
	if n == 0 || m.timeScale == nil {
		return 0, false
	}

	index, ok := m.timeScale.CoordinateToIndex(x)
	if !ok {
		return 0, false
	}

	i := int(math.Round(index))
	if i < 0 {
		i = 0
	} else if i >= n {
		i = n - 1
	}
	return i, true
}

// edgeStep returns the interval, in milliseconds, adjacent to the table
// edge at i (0 or n-1). Falls back to one millisecond-bar when the table
// has a single entry, so extrapolation never divides by zero.
func (m *Mapper) edgeStep(i int) float64 {
	n := len(m.timestamps)
	if n < 2 {
		return 1
	}

	if i <= 0 {
		return float64(m.timestamps[1] - m.timestamps[0])
	}
	return float64(m.timestamps[n-1] - m.timestamps[n-2])
}
