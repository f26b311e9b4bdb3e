// Package input tracks keyboard and mouse state between frames.
//
// The window feeds platform events in with Push; game code queries the
// resulting state. The package has no platform dependency.
package input

import "github.com/farouqadepetu/SecondEngine-sub000/internal/engine/camera"

// Key is a physical key, independent of keyboard layout.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyLShift
	KeyEscape
	Key1
	Key2
	Key3
	KeyF12

	keyCount
)

// MouseButton numbers follow the SDL convention (1 = left).
type MouseButton uint8

const (
	MouseLeft   MouseButton = 1
	MouseMiddle MouseButton = 2
	MouseRight  MouseButton = 3

	maxButtons = 8
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX int
	DeltaY int
	Button MouseButton
	Repeat bool
}

// State is the input seen by one frame.
type State struct {
	events  []Event
	down    [keyCount]bool
	pressed [keyCount]bool
	buttons [maxButtons]bool

	mouseX, mouseY int
	deltaX, deltaY int

	quit          bool
	resized       bool
	width, height int
}

// New creates an empty input state.
func New() *State {
	return &State{
		events: make([]Event, 0, 16),
	}
}

// BeginFrame forgets the previous frame's events, presses and mouse motion.
// Held keys and buttons stay down.
func (s *State) BeginFrame() {
	s.events = s.events[:0]
	s.pressed = [keyCount]bool{}
	s.deltaX, s.deltaY = 0, 0
	s.resized = false
}

// Push applies one event.
func (s *State) Push(e Event) {
	s.events = append(s.events, e)

	switch e.Type {
	case EventQuit:
		s.quit = true
	case EventWindowResize:
		s.resized = true
		s.width, s.height = e.Width, e.Height
	case EventKeyDown:
		if validKey(e.Key) {
			if !s.down[e.Key] && !e.Repeat {
				s.pressed[e.Key] = true
			}
			s.down[e.Key] = true
		}
	case EventKeyUp:
		if validKey(e.Key) {
			s.down[e.Key] = false
		}
	case EventMouseMove:
		s.mouseX, s.mouseY = e.MouseX, e.MouseY
		s.deltaX += e.DeltaX
		s.deltaY += e.DeltaY
	case EventMouseDown:
		if e.Button < maxButtons {
			s.buttons[e.Button] = true
		}
	case EventMouseUp:
		if e.Button < maxButtons {
			s.buttons[e.Button] = false
		}
	}
}

// SetKeyDown overrides the held state of k from a keyboard snapshot.
func (s *State) SetKeyDown(k Key, down bool) {
	if validKey(k) {
		s.down[k] = down
	}
}

// Events returns the events pushed since BeginFrame.
func (s *State) Events() []Event {
	return s.events
}

// QuitRequested reports whether a quit event has been seen.
func (s *State) QuitRequested() bool {
	return s.quit
}

// IsKeyDown reports whether k is held.
func (s *State) IsKeyDown(k Key) bool {
	return validKey(k) && s.down[k]
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (s *State) IsKeyPressed(k Key) bool {
	return validKey(k) && s.pressed[k]
}

// IsButtonDown reports whether mouse button b is held.
func (s *State) IsButtonDown(b MouseButton) bool {
	return b < maxButtons && s.buttons[b]
}

// MousePosition returns the last cursor position in window pixels.
func (s *State) MousePosition() (int, int) {
	return s.mouseX, s.mouseY
}

// MouseDelta returns the cursor motion accumulated this frame.
func (s *State) MouseDelta() (int, int) {
	return s.deltaX, s.deltaY
}

// Resized returns the new window size if it changed this frame.
func (s *State) Resized() (width, height int, ok bool) {
	return s.width, s.height, s.resized
}

// Intent maps the held keys to camera movement: WASD to move, Q/E to sink
// and rise, arrow keys to turn.
func (s *State) Intent() camera.Intent {
	return camera.Intent{
		Forward: s.axis(KeyW, KeyS),
		Right:   s.axis(KeyD, KeyA),
		Up:      s.axis(KeyE, KeyQ),
		Yaw:     s.axis(KeyRight, KeyLeft),
		Pitch:   s.axis(KeyDown, KeyUp),
	}
}

func (s *State) axis(pos, neg Key) float32 {
	var v float32
	if s.IsKeyDown(pos) {
		v++
	}
	if s.IsKeyDown(neg) {
		v--
	}
	return v
}

func validKey(k Key) bool {
	return k > KeyUnknown && k < keyCount
}
