package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/farouqadepetu/SecondEngine-sub000/internal/engine/input"
)

var scancodes = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_W:      input.KeyW,
	sdl.SCANCODE_A:      input.KeyA,
	sdl.SCANCODE_S:      input.KeyS,
	sdl.SCANCODE_D:      input.KeyD,
	sdl.SCANCODE_Q:      input.KeyQ,
	sdl.SCANCODE_E:      input.KeyE,
	sdl.SCANCODE_UP:     input.KeyUp,
	sdl.SCANCODE_DOWN:   input.KeyDown,
	sdl.SCANCODE_LEFT:   input.KeyLeft,
	sdl.SCANCODE_RIGHT:  input.KeyRight,
	sdl.SCANCODE_SPACE:  input.KeySpace,
	sdl.SCANCODE_LSHIFT: input.KeyLShift,
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
	sdl.SCANCODE_1:      input.Key1,
	sdl.SCANCODE_2:      input.Key2,
	sdl.SCANCODE_3:      input.Key3,
	sdl.SCANCODE_F12:    input.KeyF12,
}

// PollEvents drains the SDL event queue into in, then refreshes held keys
// from the keyboard state. Returns true if the window should close.
func (w *Window) PollEvents(in *input.State) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.Push(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				width, height := w.Size()
				in.Push(input.Event{Type: input.EventWindowResize, Width: width, Height: height})
			case sdl.WINDOWEVENT_CLOSE:
				in.Push(input.Event{Type: input.EventQuit})
			}

		case *sdl.KeyboardEvent:
			ev := input.Event{Key: scancodes[e.Keysym.Scancode], Repeat: e.Repeat != 0}
			if e.Type == sdl.KEYDOWN {
				ev.Type = input.EventKeyDown
			} else {
				ev.Type = input.EventKeyUp
			}
			in.Push(ev)

		case *sdl.MouseMotionEvent:
			in.Push(input.Event{
				Type:   input.EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				DeltaX: int(e.XRel),
				DeltaY: int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			ev := input.Event{
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: input.MouseButton(e.Button),
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				ev.Type = input.EventMouseDown
			} else {
				ev.Type = input.EventMouseUp
			}
			in.Push(ev)
		}
	}

	state := sdl.GetKeyboardState()
	for sc, k := range scancodes {
		if int(sc) < len(state) {
			in.SetKeyDown(k, state[sc] != 0)
		}
	}
	return in.QuitRequested()
}
