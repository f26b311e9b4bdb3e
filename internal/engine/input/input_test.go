package input

import (
	"testing"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/camera"
)

func TestKeyPressAndHold(t *testing.T) {
	s := New()
	s.BeginFrame()
	s.Push(Event{Type: EventKeyDown, Key: KeyW})

	if !s.IsKeyPressed(KeyW) || !s.IsKeyDown(KeyW) {
		t.Fatal("W should be pressed and down on the first frame")
	}

	s.BeginFrame()
	s.Push(Event{Type: EventKeyDown, Key: KeyW, Repeat: true})
	if s.IsKeyPressed(KeyW) {
		t.Error("key repeat should not count as a press")
	}
	if !s.IsKeyDown(KeyW) {
		t.Error("W should still be held")
	}

	s.BeginFrame()
	s.Push(Event{Type: EventKeyUp, Key: KeyW})
	if s.IsKeyDown(KeyW) {
		t.Error("W should be released")
	}
	if len(s.Events()) != 1 {
		t.Errorf("Events: got %d, want 1", len(s.Events()))
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	s := New()
	s.Push(Event{Type: EventKeyDown, Key: KeyUnknown})
	s.Push(Event{Type: EventKeyDown, Key: Key(999)})
	if s.IsKeyDown(KeyUnknown) || s.IsKeyDown(Key(999)) || s.IsKeyPressed(Key(-1)) {
		t.Error("out of range keys should never report down")
	}
}

func TestMouse(t *testing.T) {
	s := New()
	s.BeginFrame()
	s.Push(Event{Type: EventMouseDown, Button: MouseRight})
	s.Push(Event{Type: EventMouseMove, MouseX: 10, MouseY: 20, DeltaX: 3, DeltaY: -1})
	s.Push(Event{Type: EventMouseMove, MouseX: 12, MouseY: 21, DeltaX: 2, DeltaY: 1})

	if !s.IsButtonDown(MouseRight) {
		t.Error("right button should be down")
	}
	if dx, dy := s.MouseDelta(); dx != 5 || dy != 0 {
		t.Errorf("MouseDelta: got (%d, %d), want (5, 0)", dx, dy)
	}
	if x, y := s.MousePosition(); x != 12 || y != 21 {
		t.Errorf("MousePosition: got (%d, %d)", x, y)
	}

	s.BeginFrame()
	if dx, dy := s.MouseDelta(); dx != 0 || dy != 0 {
		t.Error("BeginFrame should reset the mouse delta")
	}
	s.Push(Event{Type: EventMouseUp, Button: MouseRight})
	if s.IsButtonDown(MouseRight) {
		t.Error("right button should be up")
	}
}

func TestResizeAndQuit(t *testing.T) {
	s := New()
	s.BeginFrame()
	s.Push(Event{Type: EventWindowResize, Width: 800, Height: 600})
	if w, h, ok := s.Resized(); !ok || w != 800 || h != 600 {
		t.Errorf("Resized: got %d %d %v", w, h, ok)
	}
	s.BeginFrame()
	if _, _, ok := s.Resized(); ok {
		t.Error("resize should only be reported for one frame")
	}
	s.Push(Event{Type: EventQuit})
	if !s.QuitRequested() {
		t.Error("quit should be latched")
	}
}

func TestIntent(t *testing.T) {
	s := New()
	s.SetKeyDown(KeyW, true)
	s.SetKeyDown(KeyA, true)
	s.SetKeyDown(KeyD, true)
	s.SetKeyDown(KeyLeft, true)
	s.SetKeyDown(KeyUp, true)

	want := camera.Intent{Forward: 1, Right: 0, Up: 0, Yaw: -1, Pitch: -1}
	if got := s.Intent(); got != want {
		t.Errorf("Intent: got %+v, want %+v", got, want)
	}
}
