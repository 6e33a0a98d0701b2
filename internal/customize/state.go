// Package customize models the in-progress product edit: the per-session
// customization state, the routing of product types onto the three editors,
// and the validation applied when an edit is committed to the cart.
package customize

// Point is a canvas coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Placement positions an uploaded image on the canvas.
type Placement struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// State holds the current edit values for one product. All fields are
// optional; which ones matter depends on the product's declared options.
// It is a value type: updates replace the whole state.
type State struct {
	Color        string     `json:"color,omitempty"`
	Size         string     `json:"size,omitempty"`
	Text         string     `json:"text,omitempty"`
	Font         string     `json:"font,omitempty"`
	FontSize     int        `json:"fontSize,omitempty"`
	TextPosition *Point     `json:"textPosition,omitempty"`
	Image        []byte     `json:"image,omitempty"`
	ImagePos     *Placement `json:"imagePosition,omitempty"`
}

// RenderFunc is invoked synchronously whenever a session's state changes.
type RenderFunc func(State)

// Session is the customization state holder for one product edit. It owns
// exactly one State; Set replaces the state wholesale and triggers the
// render hook before returning. The holder enforces nothing: validation
// happens at add-to-cart time.
type Session struct {
	state  State
	render RenderFunc
}

// NewSession creates a session with an initial state. render may be nil.
func NewSession(initial State, render RenderFunc) *Session {
	s := &Session{state: initial, render: render}
	if s.render != nil {
		s.render(s.state)
	}
	return s
}

// Set replaces the session state and synchronously re-renders.
func (s *Session) Set(next State) {
	s.state = next
	if s.render != nil {
		s.render(s.state)
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State { return s.state }
