// Package input samples the mouse and keyboard once per frame for the
// texture viewer.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int
	LeftPressed      bool
	LeftJustPressed  bool
	LeftJustReleased bool
	ScrollY          float64

	// Drag pans the texture once the cursor leaves the threshold
	DragStartX, DragStartY int
	Dragging               bool
	DragThreshold          int

	// Keyboard
	KeysPressed map[ebiten.Key]bool
}

func NewInputState() *InputState {
	return &InputState{
		DragThreshold: 3,
		KeysPressed:   make(map[ebiten.Key]bool),
	}
}

// viewerKeys are the held keys the viewer polls; one-shot keys go through
// IsKeyJustPressed.
var viewerKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight,
	ebiten.KeyShift, ebiten.KeyControl,
	ebiten.KeyEqual, ebiten.KeyMinus,
}

// Update should be called every frame
func (s *InputState) Update() {
	x, y := ebiten.CursorPosition()
	_, scrollY := ebiten.Wheel()
	s.Track(x, y,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		scrollY,
	)
	for _, k := range viewerKeys {
		s.KeysPressed[k] = ebiten.IsKeyPressed(k)
	}
}

// Track advances the mouse state by one frame.
func (s *InputState) Track(x, y int, leftDown, justPressed, justReleased bool, scrollY float64) {
	s.prevMouseX, s.prevMouseY = s.MouseX, s.MouseY
	s.MouseX, s.MouseY = x, y
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	s.LeftPressed = leftDown
	s.LeftJustPressed = justPressed
	s.LeftJustReleased = justReleased
	s.ScrollY = scrollY

	if justPressed {
		s.DragStartX, s.DragStartY = x, y
		s.Dragging = false
	}
	if leftDown && !s.Dragging {
		dx := x - s.DragStartX
		dy := y - s.DragStartY
		if dx*dx+dy*dy > s.DragThreshold*s.DragThreshold {
			s.Dragging = true
		}
	}
	if !leftDown {
		s.Dragging = false
	}
}

// Held reports whether any of keys is down this frame.
func (s *InputState) Held(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if s.KeysPressed[k] {
			return true
		}
	}
	return false
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// DragDelta is the mouse movement this frame while a drag is active.
func (s *InputState) DragDelta() (dx, dy int, active bool) {
	if !s.Dragging {
		return 0, 0, false
	}
	return s.MouseDX, s.MouseDY, true
}
