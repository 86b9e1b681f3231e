package drawing

import (
	"github.com/c9s/chartdraw/pkg/types"
)

// FixedArity is the protocol for tools that need an exact number of
// points, from single-point markers up to seven-point wave tools.
// AddPoint commits until the arity is reached; UpdateLastPoint maintains
// the provisional preview point in between clicks.
type FixedArity struct {
	baseDrawing

	arity int
}

func NewFixedArity(id string, dtype types.DrawingType, arity int, hitStyle HitStyle) *FixedArity {
	return &FixedArity{
		baseDrawing: newBase(id, dtype, hitStyle),
		arity:       arity,
	}
}

func (d *FixedArity) Arity() int {
	return d.arity
}

func (d *FixedArity) AddPoint(t int64, price float64) {
	if d.state != types.DrawingStateCreating {
		return
	}

	d.commitPoint(t, price)
	if d.CommittedCount() >= d.arity {
		d.state = types.DrawingStateComplete
	}
}

func (d *FixedArity) UpdateLastPoint(t int64, price float64) {
	if d.state != types.DrawingStateCreating {
		return
	}
	d.previewPoint(t, price)
}

// Line is a fixed-arity segment tool with ray-style extension flags.
type Line struct {
	FixedArity

	extendLeft  bool
	extendRight bool
}

func NewLine(id string, dtype types.DrawingType, arity int, extendLeft, extendRight bool) *Line {
	return &Line{
		FixedArity:  *NewFixedArity(id, dtype, arity, HitStroke),
		extendLeft:  extendLeft,
		extendRight: extendRight,
	}
}

func (d *Line) ExtendLeft() bool      { return d.extendLeft }
func (d *Line) ExtendRight() bool     { return d.extendRight }
func (d *Line) SetExtendLeft(v bool)  { d.extendLeft = v }
func (d *Line) SetExtendRight(v bool) { d.extendRight = v }

func (d *Line) Record() types.DrawingRecord {
	r := d.baseDrawing.Record()
	r.ExtendLeft = d.extendLeft
	r.ExtendRight = d.extendRight
	return r
}

func (d *Line) applyRecord(r types.DrawingRecord) {
	d.baseDrawing.applyRecord(r)
	d.extendLeft = r.ExtendLeft
	d.extendRight = r.ExtendRight
}

// Fib is a fixed-arity tool carrying a level table (retracement,
// extension). Levels are value data; the renderer projects them between
// the anchor points.
type Fib struct {
	FixedArity

	levels []types.FibLevel
}

func NewFib(id string, dtype types.DrawingType, arity int) *Fib {
	return &Fib{
		FixedArity: *NewFixedArity(id, dtype, arity, HitStroke),
		levels:     types.DefaultFibLevels(),
	}
}

func (d *Fib) Levels() []types.FibLevel {
	return d.levels
}

func (d *Fib) SetLevels(levels []types.FibLevel) {
	d.levels = levels
}

func (d *Fib) Record() types.DrawingRecord {
	r := d.baseDrawing.Record()
	r.Levels = append([]types.FibLevel(nil), d.levels...)
	return r
}

func (d *Fib) applyRecord(r types.DrawingRecord) {
	d.baseDrawing.applyRecord(r)
	if len(r.Levels) > 0 {
		d.levels = append([]types.FibLevel(nil), r.Levels...)
	}
}
