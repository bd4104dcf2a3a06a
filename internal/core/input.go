// Package core holds the presentation-independent vocabulary shared by the
// engine and the platform layers.
package core

import (
	"fmt"
	"strings"
)

// Action represents a semantic game command, abstracted from physical key presses.
// The platform maps keys to actions; the engine only ever sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionRight          // Right arrow, D, L
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionUndo           // Z, U
	ActionRedo           // Y, Ctrl+R
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four moves.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionLeft
}

// ParseAction converts a name such as "undo" or "left" to an Action.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return ActionUp, nil
	case "right":
		return ActionRight, nil
	case "down":
		return ActionDown, nil
	case "left":
		return ActionLeft, nil
	case "undo":
		return ActionUndo, nil
	case "redo":
		return ActionRedo, nil
	case "restart":
		return ActionRestart, nil
	case "quit":
		return ActionQuit, nil
	}
	return ActionNone, fmt.Errorf("core: unknown action %q", s)
}
