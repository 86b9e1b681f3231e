package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// identityScale maps index == pixel and price == pixel, which keeps the
// interpolation math visible in the expectations.
type identityScale struct{}

func (identityScale) CoordinateToIndex(x float64) (float64, bool)     { return x, true }
func (identityScale) IndexToCoordinate(index float64) (float64, bool) { return index, true }
func (identityScale) CoordinateToPrice(y float64) (float64, bool)     { return y, true }
func (identityScale) PriceToCoordinate(price float64) (float64, bool) { return price, true }

func newTestMapper(timestamps []int64) *Mapper {
	m := NewMapper(identityScale{}, identityScale{})
	m.SetTimestamps(timestamps)
	return m
}

func TestTimeToIndex(t *testing.T) {
	m := newTestMapper([]int64{1000, 2000, 3000})

	cases := []struct {
		name string
		time int64
		want float64
	}{
		{"exact first", 1000, 0},
		{"exact mid", 2000, 1},
		{"exact last", 3000, 2},
		{"interpolated", 1500, 0.5},
		{"interpolated high", 2250, 1.25},
		{"extrapolated before", 0, -1},
		{"extrapolated after", 4000, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			index, ok := m.TimeToIndex(c.time)
			assert.True(t, ok)
			assert.InDelta(t, c.want, index, 1e-9)
		})
	}
}

func TestPixelToTime(t *testing.T) {
	m := newTestMapper([]int64{1000, 2000, 3000})

	// fractional index between the first two entries interpolates
	ts, ok := m.PixelToTime(0.5)
	assert.True(t, ok)
	assert.Equal(t, int64(1500), ts)

	// out of range on the high side extrapolates with the last interval
	ts, ok = m.PixelToTime(4)
	assert.True(t, ok)
	assert.Equal(t, int64(4000), ts)

	// out of range on the low side extrapolates with the first interval
	ts, ok = m.PixelToTime(-1)
	assert.True(t, ok)
	assert.Equal(t, int64(0), ts)
}

func TestTimeToPixel(t *testing.T) {
	m := newTestMapper([]int64{1000, 2000, 3000})

	px, ok := m.TimeToPixel(1500)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, px, 1e-9)

	px, ok = m.TimeToPixel(4000)
	assert.True(t, ok)
	assert.InDelta(t, 3.0, px, 1e-9)
}

func TestMapperAbsentResults(t *testing.T) {
	// empty timestamp table
	m := newTestMapper(nil)
	_, ok := m.TimeToPixel(1000)
	assert.False(t, ok)
	_, ok = m.PixelToTime(10)
	assert.False(t, ok)

	// no scales attached
	bare := NewMapper(nil, nil)
	bare.SetTimestamps([]int64{1000, 2000})
	_, ok = bare.TimeToPixel(1000)
	assert.False(t, ok)
	_, ok = bare.PixelToTime(0)
	assert.False(t, ok)
	_, ok = bare.PriceToPixel(42)
	assert.False(t, ok)
	_, ok = bare.PixelToPrice(42)
	assert.False(t, ok)
}

func TestPriceMappingPassThrough(t *testing.T) {
	m := newTestMapper([]int64{1000})

	px, ok := m.PriceToPixel(123.45)
	assert.True(t, ok)
	assert.InDelta(t, 123.45, px, 1e-9)

	price, ok := m.PixelToPrice(67.8)
	assert.True(t, ok)
	assert.InDelta(t, 67.8, price, 1e-9)
}

func TestNearestIndexClamps(t *testing.T) {
	m := newTestMapper([]int64{1000, 2000, 3000})

	i, ok := m.NearestIndex(-5)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = m.NearestIndex(7)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = m.NearestIndex(1.2)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}
