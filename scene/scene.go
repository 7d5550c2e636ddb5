// Package scene loads platformer scenes from YAML markup and exposes them
// as an ordered store of rectangles with identity, tags, and mutable
// position. The physics and sim packages only ever see the store through
// their small interfaces; markup details stay here.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mossfet/skylift/physics"
)

// Tags recognized in scene markup.
const (
	TagTraversable = "traversable"
	TagElevator    = "elevator"
)

// coord is a scene coordinate. Missing or malformed markup values decode
// to 0 instead of failing the load.
type coord float64

func (c *coord) UnmarshalYAML(value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err != nil {
		*c = 0
		return nil
	}
	*c = coord(f)
	return nil
}

// Object is one rectangle in a scene. The zero value is a 0x0 box at the
// origin. Objects implement physics.Body.
type Object struct {
	Name   string   `yaml:"id"`
	X      coord    `yaml:"x"`
	Y      coord    `yaml:"y"`
	Width  coord    `yaml:"width"`
	Height coord    `yaml:"height"`
	Tags   []string `yaml:"tags"`
	// Decor marks a purely decorative container; its rectangle never
	// participates in collision at all.
	Decor bool   `yaml:"decor"`
	Color string `yaml:"color"`

	tags map[string]bool
}

func (o *Object) ID() string { return o.Name }

func (o *Object) Pos(a physics.Axis) float64 {
	if a == physics.AxisX {
		return float64(o.X)
	}
	return float64(o.Y)
}

func (o *Object) SetPos(a physics.Axis, v float64) {
	if a == physics.AxisX {
		o.X = coord(v)
	} else {
		o.Y = coord(v)
	}
}

func (o *Object) Size(a physics.Axis) float64 {
	if a == physics.AxisX {
		return float64(o.Width)
	}
	return float64(o.Height)
}

func (o *Object) Traversable() bool { return o.HasTag(TagTraversable) }

// HasTag reports tag membership.
func (o *Object) HasTag(tag string) bool {
	if o == nil {
		return false
	}
	if o.tags == nil {
		o.tags = make(map[string]bool, len(o.Tags))
		for _, t := range o.Tags {
			o.tags[t] = true
		}
	}
	return o.tags[tag]
}

// Spawn is the player spawn point in world pixels.
type Spawn struct {
	X coord `yaml:"x"`
	Y coord `yaml:"y"`
}

// PlayerSpec sizes the player rectangle.
type PlayerSpec struct {
	Width  coord `yaml:"width"`
	Height coord `yaml:"height"`
}

// Scene is a loaded scene: the object list in markup order plus the player
// rectangle created at the spawn point. It implements sim.Stage.
type Scene struct {
	Name   string     `yaml:"name"`
	Width  coord      `yaml:"width"`
	Height coord      `yaml:"height"`
	Spawn  Spawn      `yaml:"spawn"`
	// PlayerSize sizes the player rectangle; the Player method returns
	// the live body.
	PlayerSize PlayerSpec `yaml:"player"`
	// Script is an optional path, relative to the scene file, of a tengo
	// hook fed with simulation events.
	Script  string    `yaml:"script"`
	Objects []*Object `yaml:"objects"`

	player *Object
	bodies []physics.Body
}

const (
	defaultPlayerWidth  = 32
	defaultPlayerHeight = 64
)

// Parse decodes scene markup. Identity-less objects get a positional id;
// negative sizes clamp to zero. Only a malformed document is an error.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: unmarshal: %w", err)
	}
	for i, o := range s.Objects {
		if o == nil {
			o = &Object{}
			s.Objects[i] = o
		}
		if o.Name == "" {
			o.Name = fmt.Sprintf("object-%d", i)
		}
		if o.Width < 0 {
			o.Width = 0
		}
		if o.Height < 0 {
			o.Height = 0
		}
	}

	if s.PlayerSize.Width <= 0 {
		s.PlayerSize.Width = defaultPlayerWidth
	}
	if s.PlayerSize.Height <= 0 {
		s.PlayerSize.Height = defaultPlayerHeight
	}
	s.player = &Object{
		Name:   "player",
		X:      s.Spawn.X,
		Y:      s.Spawn.Y,
		Width:  s.PlayerSize.Width,
		Height: s.PlayerSize.Height,
	}

	// Candidate solids in markup order, player last. Decorative
	// containers are excluded from collision entirely.
	for _, o := range s.Objects {
		if o.Decor {
			continue
		}
		s.bodies = append(s.bodies, o)
	}
	s.bodies = append(s.bodies, s.player)
	return &s, nil
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return s, nil
}

// Bodies returns every collision candidate in stable markup order.
func (s *Scene) Bodies() []physics.Body { return s.bodies }

// PlayerObject returns the player rectangle as a scene object.
func (s *Scene) PlayerObject() *Object { return s.player }

// Player returns the player rectangle.
func (s *Scene) Player() physics.Body { return s.player }

// Elevators returns the elevator-tagged objects in markup order.
func (s *Scene) Elevators() []physics.Body {
	var out []physics.Body
	for _, o := range s.Objects {
		if !o.Decor && o.HasTag(TagElevator) {
			out = append(out, o)
		}
	}
	return out
}
