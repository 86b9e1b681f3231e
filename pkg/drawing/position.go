package drawing

import (
	"github.com/c9s/chartdraw/pkg/types"
)

const (
	defaultProfitPercent = 10.0
	defaultStopPercent   = 5.0
	defaultQuantity      = 1.0
)

// Position is the long/short projection tool. Two committed points span
// the entry line over a time range; the profit and stop levels are not
// stored points but percentages of the entry price. Control point
// indices 2 and 3 are virtual: dragging them recomputes the percentages
// instead of moving literal points.
type Position struct {
	FixedArity

	// direction is +1 for long, -1 for short
	direction float64

	quantity      float64
	profitPercent float64
	stopPercent   float64
}

func NewPosition(id string, dtype types.DrawingType, direction float64) *Position {
	return &Position{
		FixedArity:    *NewFixedArity(id, dtype, 2, HitBounds),
		direction:     direction,
		quantity:      defaultQuantity,
		profitPercent: defaultProfitPercent,
		stopPercent:   defaultStopPercent,
	}
}

func (d *Position) Direction() float64     { return d.direction }
func (d *Position) Quantity() float64      { return d.quantity }
func (d *Position) SetQuantity(q float64)  { d.quantity = q }
func (d *Position) ProfitPercent() float64 { return d.profitPercent }
func (d *Position) StopPercent() float64   { return d.stopPercent }

func (d *Position) EntryPrice() float64 {
	if len(d.points) == 0 {
		return 0
	}
	return d.points[0].Price
}

// ProfitPrice is the projected take-profit level, above entry for a
// long, below for a short.
func (d *Position) ProfitPrice() float64 {
	entry := d.EntryPrice()
	return entry * (1 + d.direction*d.profitPercent/100)
}

// StopPrice is the projected stop level on the adverse side of entry.
func (d *Position) StopPrice() float64 {
	entry := d.EntryPrice()
	return entry * (1 - d.direction*d.stopPercent/100)
}

// RiskReward returns profit distance over stop distance.
func (d *Position) RiskReward() float64 {
	if d.stopPercent == 0 {
		return 0
	}
	return d.profitPercent / d.stopPercent
}

// MovePoint handles the virtual control points: index 2 drags the
// profit level and index 3 drags the stop level, both expressed as a
// percentage of the entry price. Indices 0 and 1 move the literal
// entry-span points.
func (d *Position) MovePoint(index int, t int64, price float64) {
	switch index {
	case 2:
		entry := d.EntryPrice()
		if entry != 0 {
			d.profitPercent = d.direction * (price - entry) / entry * 100
		}
	case 3:
		entry := d.EntryPrice()
		if entry != 0 {
			d.stopPercent = d.direction * (entry - price) / entry * 100
		}
	default:
		d.baseDrawing.MovePoint(index, t, price)
	}
}

func (d *Position) Record() types.DrawingRecord {
	r := d.baseDrawing.Record()
	r.Quantity = d.quantity
	r.ProfitPercent = d.profitPercent
	r.StopPercent = d.stopPercent
	return r
}

func (d *Position) applyRecord(r types.DrawingRecord) {
	d.baseDrawing.applyRecord(r)
	if r.Quantity != 0 {
		d.quantity = r.Quantity
	}
	if r.ProfitPercent != 0 {
		d.profitPercent = r.ProfitPercent
	}
	if r.StopPercent != 0 {
		d.stopPercent = r.StopPercent
	}
}
