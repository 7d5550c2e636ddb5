package scenes

import (
	"testing"

	"github.com/mossfet/skylift/scene"
)

// The embedded default has to parse through the real loader with its ids
// intact: the hook script and event logging match on them.
func TestDefaultSceneParses(t *testing.T) {
	data, err := Read(DefaultName)
	if err != nil {
		t.Fatalf("Read(%s): %v", DefaultName, err)
	}
	s, err := scene.Parse(data)
	if err != nil {
		t.Fatalf("Parse(%s): %v", DefaultName, err)
	}

	if s.Name != "rooftops" {
		t.Fatalf("Name = %q, want rooftops", s.Name)
	}

	ids := make(map[string]*scene.Object, len(s.Objects))
	for _, o := range s.Objects {
		ids[o.Name] = o
	}
	for _, id := range []string{"skyline", "ground", "lift", "ledge", "tower"} {
		if ids[id] == nil {
			t.Fatalf("no object decoded with id %q", id)
		}
	}

	if elevs := s.Elevators(); len(elevs) != 1 || elevs[0].ID() != "lift" {
		t.Fatalf("Elevators = %v, want [lift]", elevs)
	}
	if !ids["ledge"].Traversable() {
		t.Fatal("ledge should be traversable")
	}

	if s.Script == "" {
		t.Fatal("default scene should name a hook script")
	}
	if _, err := Read(s.Script); err != nil {
		t.Fatalf("hook script %s not embedded: %v", s.Script, err)
	}
}
