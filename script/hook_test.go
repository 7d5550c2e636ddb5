package script

import "testing"

func TestHookInvoke(t *testing.T) {
	src := []byte(`
if event == "landed" {
	say = "down on " + other
}
if event == "roof-hit" && player_y < 100.0 {
	say = "bumped high up"
}
`)
	h, err := New(src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cases := []struct {
		name    string
		event   string
		body    string
		other   string
		px, py  float64
		wantSay string
	}{
		{"matching_event", "landed", "player", "ground", 10, 200, "down on ground"},
		{"silent_event", "jumping", "player", "", 10, 200, ""},
		{"position_guard", "roof-hit", "player", "", 10, 50, "bumped high up"},
		{"position_guard_miss", "roof-hit", "player", "", 10, 500, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			say, err := h.Invoke(c.event, c.body, c.other, c.px, c.py)
			if err != nil {
				t.Fatalf("Invoke: %v", err)
			}
			if say != c.wantSay {
				t.Fatalf("say = %q, want %q", say, c.wantSay)
			}
		})
	}
}

func TestHookCompileError(t *testing.T) {
	if _, err := New([]byte(`if {`)); err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestNilHook(t *testing.T) {
	var h *Hook
	say, err := h.Invoke("landed", "player", "", 0, 0)
	if err != nil || say != "" {
		t.Fatalf("nil hook: say=%q err=%v", say, err)
	}
}
