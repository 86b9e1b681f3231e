package drawing

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/c9s/chartdraw/pkg/types"
)

var ErrUnknownType = errors.New("unknown drawing type")

var (
	_ Drawing = (*FixedArity)(nil)
	_ Drawing = (*Line)(nil)
	_ Drawing = (*Fib)(nil)
	_ Drawing = (*PreviewConfirm)(nil)
	_ Drawing = (*OpenPath)(nil)
	_ Drawing = (*CloseablePolygon)(nil)
	_ Drawing = (*DerivedCurve)(nil)
	_ Drawing = (*Stroke)(nil)
	_ Drawing = (*Position)(nil)

	_ PreviewConfirmer = (*PreviewConfirm)(nil)
	_ PathFinisher     = (*OpenPath)(nil)
	_ Closer           = (*CloseablePolygon)(nil)
	_ StrokeFinisher   = (*Stroke)(nil)
)

// Spec describes one registered drawing tool: the protocol it follows
// during creation and the factory producing it. The manager dispatches
// pointer events by Protocol; nothing outside this table switches on the
// concrete type tag.
type Spec struct {
	Type     types.DrawingType
	Protocol Protocol
	Factory  func(id string) Drawing
}

var registry = map[types.DrawingType]*Spec{}

func register(dtype types.DrawingType, protocol Protocol, factory func(id string) Drawing) {
	registry[dtype] = &Spec{Type: dtype, Protocol: protocol, Factory: factory}
}

func registerLine(dtype types.DrawingType, arity int, extendLeft, extendRight bool) {
	register(dtype, ProtocolFixedArity, func(id string) Drawing {
		return NewLine(id, dtype, arity, extendLeft, extendRight)
	})
}

func registerFixed(dtype types.DrawingType, arity int, hitStyle HitStyle) {
	register(dtype, ProtocolFixedArity, func(id string) Drawing {
		return NewFixedArity(id, dtype, arity, hitStyle)
	})
}

func registerPreviewConfirm(dtype types.DrawingType, required int, hitStyle HitStyle) {
	register(dtype, ProtocolPreviewConfirm, func(id string) Drawing {
		return NewPreviewConfirm(id, dtype, required, hitStyle)
	})
}

func init() {
	registerLine(types.DrawingTrendLine, 2, false, false)
	registerLine(types.DrawingRay, 2, false, true)
	registerLine(types.DrawingExtendedLine, 2, true, true)
	registerLine(types.DrawingArrow, 2, false, false)
	registerLine(types.DrawingHorizontalLine, 1, true, true)
	registerLine(types.DrawingVerticalLine, 1, false, false)

	registerFixed(types.DrawingRectangle, 2, HitBounds)
	registerFixed(types.DrawingCircle, 2, HitBounds)
	registerFixed(types.DrawingText, 1, HitBounds)
	registerFixed(types.DrawingSticker, 1, HitBounds)
	registerFixed(types.DrawingElliottImpulse, 6, HitStroke)

	register(types.DrawingFibRetracement, ProtocolFixedArity, func(id string) Drawing {
		return NewFib(id, types.DrawingFibRetracement, 2)
	})
	register(types.DrawingFibExtension, ProtocolFixedArity, func(id string) Drawing {
		return NewFib(id, types.DrawingFibExtension, 3)
	})

	registerPreviewConfirm(types.DrawingParallelChannel, 3, HitStroke)
	registerPreviewConfirm(types.DrawingFlatChannel, 3, HitStroke)
	registerPreviewConfirm(types.DrawingTriangle, 3, HitFill)
	registerPreviewConfirm(types.DrawingRotatedRectangle, 3, HitFill)
	registerPreviewConfirm(types.DrawingHeadAndShoulders, 7, HitStroke)
	registerPreviewConfirm(types.DrawingXABCDPattern, 5, HitStroke)
	registerPreviewConfirm(types.DrawingABCDPattern, 4, HitStroke)
	registerPreviewConfirm(types.DrawingThreeDrives, 7, HitStroke)

	register(types.DrawingPolyline, ProtocolOpenPath, func(id string) Drawing {
		return NewOpenPath(id, types.DrawingPolyline)
	})
	register(types.DrawingPolygon, ProtocolCloseablePolygon, func(id string) Drawing {
		return NewCloseablePolygon(id, types.DrawingPolygon)
	})

	register(types.DrawingCurve, ProtocolDerivedCurve, func(id string) Drawing {
		return NewDerivedCurve(id, types.DrawingCurve)
	})

	register(types.DrawingBrush, ProtocolStroke, func(id string) Drawing {
		return NewStroke(id, types.DrawingBrush)
	})
	register(types.DrawingHighlighter, ProtocolStroke, func(id string) Drawing {
		return NewStroke(id, types.DrawingHighlighter)
	})

	register(types.DrawingLongPosition, ProtocolFixedArity, func(id string) Drawing {
		return NewPosition(id, types.DrawingLongPosition, 1)
	})
	register(types.DrawingShortPosition, ProtocolFixedArity, func(id string) Drawing {
		return NewPosition(id, types.DrawingShortPosition, -1)
	})
}

// Get looks up the spec for a drawing type.
func Get(dtype types.DrawingType) (*Spec, bool) {
	s, ok := registry[dtype]
	return s, ok
}

// Types returns every registered drawing type.
func Types() []types.DrawingType {
	out := make([]types.DrawingType, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	return out
}

// New constructs a fresh drawing of the given type with a generated id.
func New(dtype types.DrawingType) (Drawing, error) {
	s, ok := registry[dtype]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "type %q", dtype)
	}
	return s.Factory(uuid.New().String()), nil
}

// recordApplier restores variant state from a persisted record. The
// base drawing implements the common fields; variants shadow it to pick
// up their extension fields.
type recordApplier interface {
	applyRecord(r types.DrawingRecord)
}

// NewFromRecord reconstructs a drawing from its persisted record,
// preserving the saved id verbatim. The id is set at construction; it is
// never reassigned afterwards.
func NewFromRecord(r types.DrawingRecord) (Drawing, error) {
	s, ok := registry[r.Type]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "type %q", r.Type)
	}

	d := s.Factory(r.ID)
	d.(recordApplier).applyRecord(r)
	return d, nil
}
