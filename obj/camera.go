package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mossfet/skylift/common"
)

// Camera renders the world centered on a world coordinate. In auto mode it
// smoothly follows a target each cycle; in manual mode it stays where the
// user left it.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	off     *ebiten.Image

	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64

	auto bool
}

// NewCamera creates a camera with the given logical screen size.
func NewCamera(screenW, screenH int, smooth float64, auto bool) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, smooth: smooth, auto: auto}
	c.off = ebiten.NewImage(screenW, screenH)
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetWorldBounds sets the world pixel dimensions for clamping.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// Auto reports whether the camera recenters on the target each cycle.
func (c *Camera) Auto() bool { return c.auto }

// SetAuto toggles follow mode.
func (c *Camera) SetAuto(auto bool) { c.auto = auto }

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.PosX - float64(c.screenW)/2.0, c.PosY - float64(c.screenH)/2.0
}

// Update moves the camera toward the target world coordinate. Manual mode
// ignores the target entirely. Call from the fixed-rate update loop so the
// smoothing stays consistent.
func (c *Camera) Update(targetX, targetY float64) {
	if !c.auto {
		c.clampToWorld()
		return
	}
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
		c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
	}

	// round so source texels align to screen pixels
	c.PosX = math.Round(c.PosX)
	c.PosY = math.Round(c.PosY)
	c.clampToWorld()
}

// Pan shifts the camera by a screen-space delta; only meaningful in
// manual mode.
func (c *Camera) Pan(dx, dy float64) {
	c.PosX += dx
	c.PosY += dy
	c.clampToWorld()
}

// SnapTo immediately centers the camera on the given world coordinate,
// e.g. after a scene load.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = math.Round(x)
	c.PosY = math.Round(y)
	c.clampToWorld()
}

func (c *Camera) clampToWorld() {
	halfW := float64(c.screenW) / 2.0
	halfH := float64(c.screenH) / 2.0
	if c.worldW > 0 {
		if c.worldW < float64(c.screenW) {
			// world narrower than the view: center on it
			c.PosX = c.worldW / 2.0
		} else {
			c.PosX = common.Clamp(c.PosX, halfW, c.worldW-halfW)
		}
	}
	if c.worldH > 0 {
		if c.worldH < float64(c.screenH) {
			c.PosY = c.worldH / 2.0
		} else {
			c.PosY = common.Clamp(c.PosY, halfH, c.worldH-halfH)
		}
	}
}

// Render clears the offscreen buffer, hands it to drawWorld for world-space
// drawing (the caller applies ViewTopLeft offsets), then blits it to screen.
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}
	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}
	screen.DrawImage(c.off, &ebiten.DrawImageOptions{})
}
