// Package script runs optional per-scene tengo hooks. A hook is compiled
// once and invoked for every simulation event with the event name, the
// bodies involved, and the player's position. Hooks are observational:
// they can log through the returned say value but never reach back into
// the simulation.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Hook is a compiled scene script. Not safe for concurrent use; the game
// loop invokes it from the tick goroutine only.
type Hook struct {
	compiled *tengo.Compiled
}

// New compiles src. The script sees the globals event, body, other,
// player_x, player_y and may assign say to emit a log line.
func New(src []byte) (*Hook, error) {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap("fmt", "math", "text"))

	for _, name := range []string{"event", "body", "other", "say"} {
		if err := s.Add(name, ""); err != nil {
			return nil, fmt.Errorf("script: add %s: %w", name, err)
		}
	}
	for _, name := range []string{"player_x", "player_y"} {
		if err := s.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("script: add %s: %w", name, err)
		}
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &Hook{compiled: compiled}, nil
}

// Invoke runs the hook for one event and returns the script's say value,
// empty when the script stayed silent.
func (h *Hook) Invoke(event, body, other string, playerX, playerY float64) (string, error) {
	if h == nil || h.compiled == nil {
		return "", nil
	}
	if err := h.compiled.Set("event", event); err != nil {
		return "", fmt.Errorf("script: set event: %w", err)
	}
	if err := h.compiled.Set("body", body); err != nil {
		return "", fmt.Errorf("script: set body: %w", err)
	}
	if err := h.compiled.Set("other", other); err != nil {
		return "", fmt.Errorf("script: set other: %w", err)
	}
	if err := h.compiled.Set("player_x", playerX); err != nil {
		return "", fmt.Errorf("script: set player_x: %w", err)
	}
	if err := h.compiled.Set("player_y", playerY); err != nil {
		return "", fmt.Errorf("script: set player_y: %w", err)
	}
	if err := h.compiled.Set("say", ""); err != nil {
		return "", fmt.Errorf("script: reset say: %w", err)
	}

	if err := h.compiled.Run(); err != nil {
		return "", fmt.Errorf("script: run: %w", err)
	}

	if v := h.compiled.Get("say"); v != nil {
		if s, ok := v.Value().(string); ok {
			return s, nil
		}
	}
	return "", nil
}
