package drawing

import (
	"github.com/c9s/chartdraw/pkg/types"
)

// PreviewConfirm is the protocol for 3+ point shapes (channels, rotated
// rectangles, triangles, harmonic patterns). It tracks a single preview
// slot: the first UpdateLastPoint after a commit pushes a new point and
// records its index, later calls overwrite that same slot, and
// ConfirmPreviewPoint merely clears the index. The point's storage
// location never changes on confirmation.
type PreviewConfirm struct {
	baseDrawing

	required int
}

func NewPreviewConfirm(id string, dtype types.DrawingType, required int, hitStyle HitStyle) *PreviewConfirm {
	return &PreviewConfirm{
		baseDrawing: newBase(id, dtype, hitStyle),
		required:    required,
	}
}

func (d *PreviewConfirm) RequiredPoints() int {
	return d.required
}

func (d *PreviewConfirm) AddPoint(t int64, price float64) {
	if d.state != types.DrawingStateCreating {
		return
	}

	d.commitPoint(t, price)
	if d.CommittedCount() >= d.required {
		d.state = types.DrawingStateComplete
	}
}

func (d *PreviewConfirm) UpdateLastPoint(t int64, price float64) {
	if d.state != types.DrawingStateCreating {
		return
	}
	d.previewPoint(t, price)
}

func (d *PreviewConfirm) ConfirmPreviewPoint() {
	d.previewIndex = -1
	if d.CommittedCount() >= d.required {
		d.state = types.DrawingStateComplete
	}
}
