package recording

import (
	"image/color"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdBeginPath CommandType = iota // Discard the pending path
	CmdMoveTo                       // Start a sub-path
	CmdArc                          // Append a circular arc
	CmdClosePath                    // Close the current sub-path
	CmdFill                         // Fill the pending path
	CmdClear                        // Replace every pixel
	CmdDrawImage                    // Draw an image scaled to the surface
)

var commandTypeNames = [...]string{
	CmdBeginPath: "BeginPath",
	CmdMoveTo:    "MoveTo",
	CmdArc:       "Arc",
	CmdClosePath: "ClosePath",
	CmdFill:      "Fill",
	CmdClear:     "Clear",
	CmdDrawImage: "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded drawing operation.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BeginPathCommand discards the pending path.
type BeginPathCommand struct{}

func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// MoveToCommand starts a new sub-path at (X, Y).
type MoveToCommand struct {
	X, Y float64
}

func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// ArcCommand appends an arc centered at (X, Y).
type ArcCommand struct {
	X, Y   float64
	Radius float64
	Start  float64
	End    float64
}

func (ArcCommand) Type() CommandType { return CmdArc }

// ClosePathCommand closes the current sub-path.
type ClosePathCommand struct{}

func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// FillCommand fills the pending path.
type FillCommand struct {
	Color color.Color
}

func (FillCommand) Type() CommandType { return CmdFill }

// ClearCommand replaces every pixel with Color.
type ClearCommand struct {
	Color color.Color
}

func (ClearCommand) Type() CommandType { return CmdClear }

// DrawImageCommand draws a pooled image scaled to the surface.
type DrawImageCommand struct {
	Image ImageRef
}

func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
