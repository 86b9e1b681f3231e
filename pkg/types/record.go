package types

// DrawingRecord is the stable persistence form of a drawing. Unknown
// extra fields in a stored record are ignored on load; fields that do
// not apply to a type are left at their zero value and omitted on save.
//
// The record never carries state == selected: selection is a
// view-session concept and is demoted to complete before writing.
type DrawingRecord struct {
	ID     string         `json:"id"`
	Type   DrawingType    `json:"type"`
	Points []DrawingPoint `json:"points"`
	Style  Style          `json:"style"`
	State  DrawingState   `json:"state"`

	Visible bool `json:"visible"`
	Locked  bool `json:"locked"`

	// line tools
	ExtendLeft  bool `json:"extendLeft,omitempty"`
	ExtendRight bool `json:"extendRight,omitempty"`

	// fibonacci tools
	Levels []FibLevel `json:"levels,omitempty"`

	// closeable polygon
	Closed bool `json:"closed,omitempty"`

	// position projection tools
	Quantity      float64 `json:"quantity,omitempty"`
	ProfitPercent float64 `json:"profitPercent,omitempty"`
	StopPercent   float64 `json:"stopPercent,omitempty"`
}
