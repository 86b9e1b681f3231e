// Package overlay orchestrates the drawings on one chart: it owns the
// drawing collection, the current tool mode, the active and selected
// drawings, and the magnet configuration, and it routes pointer and
// keyboard events to the right point-entry protocol.
//
// Everything here runs on the single UI event loop; there is exactly one
// logical actor and no internal locking.
package overlay

import (
	log "github.com/sirupsen/logrus"

	"github.com/c9s/chartdraw/pkg/drawing"
	"github.com/c9s/chartdraw/pkg/geometry"
	"github.com/c9s/chartdraw/pkg/metrics"
	"github.com/c9s/chartdraw/pkg/scale"
	"github.com/c9s/chartdraw/pkg/types"
)

// ModeNone means no drawing tool is armed; pointer events select and
// move instead of creating.
const ModeNone types.DrawingType = ""

type Manager struct {
	config *Config
	mapper *scale.Mapper

	// drawings in insertion order. Creation order is z-order: the most
	// recently drawn annotation renders on top but is hit-tested last,
	// so an older overlapping drawing wins selection.
	drawings []drawing.Drawing
	byID     map[string]drawing.Drawing

	// active is the drawing currently mid-creation, exclusively owned
	// here; it is discarded if creation is abandoned.
	active drawing.Drawing

	// selected is a non-owning reference into drawings.
	selected drawing.Drawing

	mode types.DrawingType

	modeChangedCallbacks      []func(mode types.DrawingType)
	drawingAddedCallbacks     []func(d drawing.Drawing)
	drawingChangedCallbacks   []func(d drawing.Drawing)
	drawingRemovedCallbacks   []func(d drawing.Drawing)
	selectionChangedCallbacks []func(d drawing.Drawing)
}

func NewManager(config *Config, mapper *scale.Mapper) *Manager {
	if config == nil {
		config = DefaultConfig()
	}
	return &Manager{
		config: config,
		mapper: mapper,
		byID:   make(map[string]drawing.Drawing),
		mode:   ModeNone,
	}
}

func (m *Manager) Config() *Config         { return m.config }
func (m *Manager) Mapper() *scale.Mapper   { return m.mapper }
func (m *Manager) Mode() types.DrawingType { return m.mode }

func (m *Manager) Drawings() []drawing.Drawing {
	return m.drawings
}

func (m *Manager) Drawing(id string) (drawing.Drawing, bool) {
	d, ok := m.byID[id]
	return d, ok
}

func (m *Manager) ActiveDrawing() drawing.Drawing   { return m.active }
func (m *Manager) SelectedDrawing() drawing.Drawing { return m.selected }

// SetTimestamps forwards the ascending timestamp table to the mapper on
// every bar update.
func (m *Manager) SetTimestamps(timestamps []int64) {
	m.mapper.SetTimestamps(timestamps)
}

// SetMode arms a drawing tool, or disarms with ModeNone. A drawing
// still mid-creation is discarded: an uncommitted drawing does not
// survive a tool switch.
func (m *Manager) SetMode(mode types.DrawingType) {
	if m.active != nil && m.active.State() == types.DrawingStateCreating {
		m.removeDrawing(m.active)
		m.active = nil
	}

	if mode != m.mode {
		m.mode = mode
		m.EmitModeChanged(mode)
	}
}

// StartDrawing handles pointer-down with a tool armed: it constructs the
// variant for the current mode and commits the first point. Single-point
// tools complete immediately, leave draw mode and become selected.
// Returns false when the event was skipped (no mode, or no usable
// coordinate mapping this frame).
func (m *Manager) StartDrawing(x, y float64, snap *SnapResult) bool {
	if m.mode == ModeNone {
		return false
	}

	t, price, ok := m.resolve(x, y, snap)
	if !ok {
		return false
	}

	if m.active == nil {
		d, err := drawing.New(m.mode)
		if err != nil {
			log.WithError(err).Warnf("can not start drawing for mode %q", m.mode)
			return false
		}
		if d.Type() == types.DrawingSticker {
			style := d.Style()
			style.Text = m.config.Sticker
			d.SetStyle(style)
		}
		m.attach(d)
		m.active = d
	}

	m.active.AddPoint(t, price)
	m.EmitDrawingChanged(m.active)

	if m.active.State() == types.DrawingStateComplete {
		m.finalizeActive(true)
	}
	return true
}

// UpdateDrawing handles pointer-move while creating: always a pure
// preview, never a commit.
func (m *Manager) UpdateDrawing(x, y float64, snap *SnapResult) {
	if m.active == nil {
		return
	}

	t, price, ok := m.resolve(x, y, snap)
	if !ok {
		return
	}

	m.active.UpdateLastPoint(t, price)
	m.EmitDrawingChanged(m.active)
}

// FinishDrawing handles the committing click (or pointer-up for
// strokes), dispatching on the active drawing's protocol. Completed
// drawings become selected and leave draw mode, except strokes: the
// stroke tool stays armed so consecutive strokes can follow.
func (m *Manager) FinishDrawing(x, y float64, snap *SnapResult) {
	if m.active == nil {
		return
	}

	t, price, ok := m.resolve(x, y, snap)
	if !ok {
		return
	}

	spec, ok := drawing.Get(m.active.Type())
	if !ok {
		return
	}

	switch spec.Protocol {
	case drawing.ProtocolPreviewConfirm:
		m.active.UpdateLastPoint(t, price)
		m.active.(drawing.PreviewConfirmer).ConfirmPreviewPoint()

	case drawing.ProtocolCloseablePolygon:
		if !m.active.(drawing.Closer).TryClose(x, y, m.config.CloseRadius) {
			m.active.AddPoint(t, price)
		}

	case drawing.ProtocolStroke:
		m.active.AddPoint(t, price)
		m.active.(drawing.StrokeFinisher).FinishStroke()

	default:
		// fixed arity, derived curve, open path
		m.active.AddPoint(t, price)
	}

	m.EmitDrawingChanged(m.active)

	if m.active.State() == types.DrawingStateComplete {
		m.finalizeActive(spec.Protocol != drawing.ProtocolStroke)
	}
}

// FinishPath is the keyboard finish action for the open-path and
// closeable-polygon protocols. A path with fewer than two committed
// points is discarded entirely.
func (m *Manager) FinishPath() {
	if m.active == nil {
		return
	}

	finisher, ok := m.active.(drawing.PathFinisher)
	if !ok {
		return
	}

	if finisher.Finish() {
		m.finalizeActive(true)
	} else {
		m.removeDrawing(m.active)
		m.active = nil
		m.SetMode(ModeNone)
	}
}

// CancelDrawing abandons whatever is mid-creation and leaves draw mode.
func (m *Manager) CancelDrawing() {
	if m.active != nil {
		m.removeDrawing(m.active)
		m.active = nil
	}
	m.SetMode(ModeNone)
}

// SelectDrawingAt scans the owned drawings in insertion order and
// selects the first hit. The previously selected drawing is demoted to
// complete first; no hit clears the selection.
//
// Insertion order means the oldest overlapping drawing shadows newer
// ones for selection. That matches the historical behavior and is kept
// deliberately; see DESIGN.md.
func (m *Manager) SelectDrawingAt(x, y float64) drawing.Drawing {
	var hit drawing.Drawing
	for _, d := range m.drawings {
		if d.State() == types.DrawingStateCreating {
			continue
		}
		if d.HitTest(x, y, m.config.HitThreshold) {
			hit = d
			break
		}
	}

	m.setSelected(hit)
	return hit
}

// MoveDrawing translates the selected drawing by a pixel delta. The
// delta is converted to a logical delta anchored at the first point's
// current pixel position, then applied uniformly to every point.
func (m *Manager) MoveDrawing(dx, dy float64) bool {
	d := m.selected
	if d == nil || d.Locked() || m.config.Locked {
		return false
	}

	points := d.Points()
	if len(points) == 0 {
		return false
	}

	anchor := points[0]
	ax, okX := m.mapper.TimeToPixel(anchor.Time)
	ay, okY := m.mapper.PriceToPixel(anchor.Price)
	if !okX || !okY {
		return false
	}

	nt, okT := m.mapper.PixelToTime(ax + dx)
	np, okP := m.mapper.PixelToPrice(ay + dy)
	if !okT || !okP {
		return false
	}

	d.Translate(nt-anchor.Time, np-anchor.Price)
	m.EmitDrawingChanged(d)
	return true
}

// MoveControlPoint drags one control point of the selected drawing.
// Type-specific coupling lives in the variants: position tools translate
// the virtual indices into percentage updates, the derived curve
// re-derives its midpoint, and dragging a polyline's last point onto its
// first point closes the ring.
func (m *Manager) MoveControlPoint(index int, x, y float64, snap *SnapResult) bool {
	d := m.selected
	if d == nil || d.Locked() || m.config.Locked {
		return false
	}

	t, price, ok := m.resolve(x, y, snap)
	if !ok {
		return false
	}

	d.MovePoint(index, t, price)

	if closer, isCloser := d.(drawing.Closer); isCloser && !closer.Closed() {
		if index == len(d.Points())-1 {
			if pp := d.PixelPoints(); len(pp) > 0 &&
				geometry.Distance(x, y, pp[0].X, pp[0].Y) <= m.config.CloseRadius {
				closer.CloseFromDrag()
			}
		}
	}

	m.EmitDrawingChanged(d)
	return true
}

// DeleteDrawing removes a drawing by id.
func (m *Manager) DeleteDrawing(id string) bool {
	d, ok := m.byID[id]
	if !ok {
		return false
	}

	if m.selected == d {
		m.setSelected(nil)
	}
	if m.active == d {
		m.active = nil
	}

	m.removeDrawing(d)
	return true
}

func (m *Manager) DeleteSelected() bool {
	if m.selected == nil {
		return false
	}
	return m.DeleteDrawing(m.selected.ID())
}

// ClearAll drops every drawing, including one mid-creation.
func (m *Manager) ClearAll() {
	for _, d := range m.drawings {
		metrics.DrawingsDeletedMetrics.WithLabelValues(string(d.Type())).Inc()
	}

	m.drawings = nil
	m.byID = make(map[string]drawing.Drawing)
	m.active = nil
	if m.selected != nil {
		m.selected = nil
		m.EmitSelectionChanged(nil)
	}
	metrics.DrawingsLiveMetrics.Set(0)
}

// resolve converts pixel coordinates to logical ones, honoring a magnet
// snap when one was produced for this event. Absent mappings skip the
// event; this is the hot path and must never fail loudly.
func (m *Manager) resolve(x, y float64, snap *SnapResult) (int64, float64, bool) {
	if snap != nil && snap.Snapped {
		x = snap.X
	}

	t, ok := m.mapper.PixelToTime(x)
	if !ok {
		return 0, 0, false
	}

	if snap != nil && snap.Snapped {
		return t, snap.Price, true
	}

	price, ok := m.mapper.PixelToPrice(y)
	if !ok {
		return 0, 0, false
	}
	return t, price, true
}

func (m *Manager) attach(d drawing.Drawing) {
	m.drawings = append(m.drawings, d)
	m.byID[d.ID()] = d

	metrics.DrawingsCreatedMetrics.WithLabelValues(string(d.Type())).Inc()
	metrics.DrawingsLiveMetrics.Set(float64(len(m.drawings)))

	m.EmitDrawingAdded(d)
}

func (m *Manager) removeDrawing(d drawing.Drawing) {
	for i, owned := range m.drawings {
		if owned == d {
			m.drawings = append(m.drawings[:i], m.drawings[i+1:]...)
			break
		}
	}
	delete(m.byID, d.ID())

	metrics.DrawingsDeletedMetrics.WithLabelValues(string(d.Type())).Inc()
	metrics.DrawingsLiveMetrics.Set(float64(len(m.drawings)))

	m.EmitDrawingRemoved(d)
}

// finalizeActive promotes the finished active drawing to selected and
// optionally leaves draw mode (strokes keep the mode armed).
func (m *Manager) finalizeActive(exitMode bool) {
	d := m.active
	m.active = nil

	if exitMode {
		m.SetMode(ModeNone)
	}

	m.setSelected(d)
}

func (m *Manager) setSelected(d drawing.Drawing) {
	if m.selected == d {
		if d == nil {
			return
		}
		d.SetState(types.DrawingStateSelected)
		return
	}

	if m.selected != nil {
		m.selected.SetState(types.DrawingStateComplete)
	}

	m.selected = d
	if d != nil {
		d.SetState(types.DrawingStateSelected)
	}

	m.EmitSelectionChanged(d)
}
