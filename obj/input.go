package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Latch accumulates input between simulation steps. The render loop may run
// several frames per step, so each held signal stays latched once seen and
// is only cleared by Reset after the step consumes it.
type Latch struct {
	Left  bool
	Right bool
	Jump  bool
	Fire  bool

	// single-frame edges, not latched
	PauseEdge      bool
	FullscreenEdge bool
	CameraEdge     bool

	// manual camera pan accumulated since last Reset
	PanX float64
	PanY float64
}

func NewLatch() *Latch {
	return &Latch{}
}

// Poll samples the keyboard and the first gamepad, OR-ing held signals into
// the latch. Call once per frame.
func (l *Latch) Poll() {
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		l.Left = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		l.Right = true
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		l.Jump = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		l.Fire = true
	}

	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			l.Left = true
		} else if leftX > 0.3 {
			l.Right = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			l.Jump = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightLeft) {
			l.Fire = true
		}
	}

	l.PauseEdge = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	l.FullscreenEdge = inpututil.IsKeyJustPressed(ebiten.KeyF11)
	l.CameraEdge = inpututil.IsKeyJustPressed(ebiten.KeyC)

	// IJKL pans the camera when follow mode is off
	const panStep = 8
	if ebiten.IsKeyPressed(ebiten.KeyJ) {
		l.PanX -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyL) {
		l.PanX += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyI) {
		l.PanY -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyK) {
		l.PanY += panStep
	}
}

// Reset clears latched signals after a simulation step has consumed them.
func (l *Latch) Reset() {
	l.Left = false
	l.Right = false
	l.Jump = false
	l.Fire = false
	l.PanX = 0
	l.PanY = 0
}
