package board

type ActionType string

const (
	ActionStart ActionType = "start"
	ActionDraw  ActionType = "draw"
	ActionEnd   ActionType = "end"
	ActionClear ActionType = "clear"
)

// Action is one primitive of a freehand stroke. Transient: consumed by the
// surface immediately and optionally forwarded to an ActionSink.
type Action struct {
	Type  ActionType `json:"type"`
	X     float64    `json:"x,omitempty"`
	Y     float64    `json:"y,omitempty"`
	Color string     `json:"color,omitempty"`
	Width float64    `json:"width,omitempty"`
}

// ActionSink receives every action emitted by local input. A multiplayer
// implementation would forward these over a network channel; nothing is
// wired to it here.
type ActionSink interface {
	Emit(action Action)
}
