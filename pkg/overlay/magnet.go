package overlay

import (
	"math"
	"sort"

	"github.com/c9s/chartdraw/pkg/types"
)

// SnapResult is the outcome of a magnet lookup. When Snapped is true,
// Price is the OHLC value to use instead of the cursor price and X is
// the bar's center pixel so downstream calls align exactly on the bar.
type SnapResult struct {
	Price   float64
	X       float64
	Snapped bool
}

// ApplyMagnet snaps the cursor to the nearest OHLC value of the bar
// nearest to the cursor's time. Weak mode only snaps within the
// configured pixel threshold; strong mode always snaps. Bars must be
// time-ascending; they are handed in already resolved, the manager
// never fetches.
func (m *Manager) ApplyMagnet(x, y float64, bars []types.Bar) SnapResult {
	if !m.config.Magnet.Enabled() || len(bars) == 0 {
		return SnapResult{}
	}

	t, ok := m.mapper.PixelToTime(x)
	if !ok {
		return SnapResult{}
	}

	bar := nearestBar(bars, t)

	barX, ok := m.mapper.TimeToPixel(bar.Time)
	if !ok {
		return SnapResult{}
	}

	bestDist := math.Inf(1)
	bestPrice := 0.0
	for _, price := range bar.OHLC() {
		py, ok := m.mapper.PriceToPixel(price)
		if !ok {
			continue
		}
		if d := math.Abs(py - y); d < bestDist {
			bestDist = d
			bestPrice = price
		}
	}

	if math.IsInf(bestDist, 1) {
		return SnapResult{}
	}

	if m.config.Magnet == types.MagnetModeWeak && bestDist > m.config.MagnetThreshold {
		return SnapResult{}
	}

	return SnapResult{Price: bestPrice, X: barX, Snapped: true}
}

func nearestBar(bars []types.Bar, t int64) types.Bar {
	i := sort.Search(len(bars), func(i int) bool { return bars[i].Time >= t })
	if i == 0 {
		return bars[0]
	}
	if i == len(bars) {
		return bars[len(bars)-1]
	}

	if bars[i].Time-t < t-bars[i-1].Time {
		return bars[i]
	}
	return bars[i-1]
}
