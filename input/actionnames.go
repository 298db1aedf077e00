package input

import (
	"github.com/lixenwraith/term-pong/engine"
)

// actionRegistry maps canonical action names to actions
// Used by the key config loader to resolve TOML/env action strings
var actionRegistry = map[string]engine.Action{
	"p1_up":   engine.ActionP1Up,
	"p1_down": engine.ActionP1Down,
	"p2_up":   engine.ActionP2Up,
	"p2_down": engine.ActionP2Down,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (engine.Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// opposite returns the other direction on the same paddle
func opposite(a engine.Action) engine.Action {
	switch a {
	case engine.ActionP1Up:
		return engine.ActionP1Down
	case engine.ActionP1Down:
		return engine.ActionP1Up
	case engine.ActionP2Up:
		return engine.ActionP2Down
	case engine.ActionP2Down:
		return engine.ActionP2Up
	}
	return engine.ActionCount
}
