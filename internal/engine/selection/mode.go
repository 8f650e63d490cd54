// Package selection implements the component selection engine: a
// host-driven plugin that maintains vertex/edge/face membership sets over
// the host's active mesh, mutates them through picking, marquee and
// topological operators, and mirrors the active set onto the mesh's
// per-vertex highlight channel.
package selection

import "fmt"

// Mode selects which component family the engine targets.
type Mode int

const (
	ModeVertex Mode = iota
	ModeEdge
	ModeFace
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeVertex:
		return "vertex"
	case ModeEdge:
		return "edge"
	case ModeFace:
		return "face"
	}
	return "unknown"
}

// ParseMode converts a mode name (as written in config files) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "vertex":
		return ModeVertex, nil
	case "edge":
		return ModeEdge, nil
	case "face":
		return ModeFace, nil
	}
	return ModeFace, fmt.Errorf("unknown selection mode %q", s)
}

// Op is the membership operator applied by pick and box select.
type Op int

const (
	// OpReplace clears the active set before inserting.
	OpReplace Op = iota
	// OpAdd inserts the target element.
	OpAdd
	// OpSubtract removes the target element.
	OpSubtract
	// OpToggle flips the target element's membership.
	OpToggle
)

// String returns the lowercase operator name.
func (o Op) String() string {
	switch o {
	case OpReplace:
		return "replace"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpToggle:
		return "toggle"
	}
	return "unknown"
}
