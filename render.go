package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/mossfet/skylift/physics"
	"github.com/mossfet/skylift/scene"
)

// drawWorld paints the scene into the camera's offscreen buffer. Objects
// render in markup order so later entries layer over earlier ones, with the
// player on top.
func (g *Game) drawWorld(world *ebiten.Image) {
	vx, vy := g.cam.ViewTopLeft()

	for _, o := range g.scene.Objects {
		fillRect(world,
			float64(o.X)-vx, float64(o.Y)-vy,
			float64(o.Width), float64(o.Height),
			objectColor(o))
	}

	g.drawPlayer(world, vx, vy)
}

func (g *Game) drawPlayer(world *ebiten.Image, vx, vy float64) {
	p := g.scene.Player()
	px := p.Pos(physics.AxisX) - vx
	py := p.Pos(physics.AxisY) - vy
	w := p.Size(physics.AxisX)
	h := p.Size(physics.AxisY)

	fillRect(world, px, py, w, h, colornames.Crimson)

	// eye marks the facing direction
	eyeW := w / 4
	eyeX := px + w - eyeW - 2
	if g.sim.Facing() < 0 {
		eyeX = px + 2
	}
	fillRect(world, eyeX, py+h/5, eyeW, eyeW, colornames.Whitesmoke)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// objectColor picks the markup color when given, otherwise a default by
// role so untinted scenes stay readable.
func objectColor(o *scene.Object) color.Color {
	if c, ok := parseHexColor(o.Color); ok {
		return c
	}
	switch {
	case o.Decor:
		return colornames.Darkslategray
	case o.HasTag(scene.TagElevator):
		return colornames.Goldenrod
	case o.HasTag(scene.TagTraversable):
		return colornames.Mediumseagreen
	default:
		return colornames.Slategray
	}
}

func parseHexColor(s string) (color.NRGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, false
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[1+i*2])
		lo, ok2 := hexNibble(s[2+i*2])
		if !ok1 || !ok2 {
			return color.NRGBA{}, false
		}
		v[i] = hi<<4 | lo
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: 0xff}, true
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
