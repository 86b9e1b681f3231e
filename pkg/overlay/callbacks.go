package overlay

import (
	"github.com/c9s/chartdraw/pkg/drawing"
	"github.com/c9s/chartdraw/pkg/types"
)

func (m *Manager) OnModeChanged(cb func(mode types.DrawingType)) {
	m.modeChangedCallbacks = append(m.modeChangedCallbacks, cb)
}

func (m *Manager) EmitModeChanged(mode types.DrawingType) {
	for _, cb := range m.modeChangedCallbacks {
		cb(mode)
	}
}

func (m *Manager) OnDrawingAdded(cb func(d drawing.Drawing)) {
	m.drawingAddedCallbacks = append(m.drawingAddedCallbacks, cb)
}

func (m *Manager) EmitDrawingAdded(d drawing.Drawing) {
	for _, cb := range m.drawingAddedCallbacks {
		cb(d)
	}
}

func (m *Manager) OnDrawingChanged(cb func(d drawing.Drawing)) {
	m.drawingChangedCallbacks = append(m.drawingChangedCallbacks, cb)
}

func (m *Manager) EmitDrawingChanged(d drawing.Drawing) {
	for _, cb := range m.drawingChangedCallbacks {
		cb(d)
	}
}

func (m *Manager) OnDrawingRemoved(cb func(d drawing.Drawing)) {
	m.drawingRemovedCallbacks = append(m.drawingRemovedCallbacks, cb)
}

func (m *Manager) EmitDrawingRemoved(d drawing.Drawing) {
	for _, cb := range m.drawingRemovedCallbacks {
		cb(d)
	}
}

// EmitSelectionChanged fires with nil when the selection is cleared.
func (m *Manager) OnSelectionChanged(cb func(d drawing.Drawing)) {
	m.selectionChangedCallbacks = append(m.selectionChangedCallbacks, cb)
}

func (m *Manager) EmitSelectionChanged(d drawing.Drawing) {
	for _, cb := range m.selectionChangedCallbacks {
		cb(d)
	}
}
