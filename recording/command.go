package recording

import "github.com/gogpu/vecedit"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillPath   CommandType = iota // Fill a path
	CmdStrokePath                    // Stroke a path
	CmdClearRect                     // Clear a rectangle to transparent
	CmdDrawImage                     // Draw an image into a rectangle
)

var commandTypeNames = [...]string{
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdClearRect:  "ClearRect",
	CmdDrawImage:  "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid image.
func (r ImageRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// FillPathCommand fills the interior of a path.
type FillPathCommand struct {
	Path PathRef
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes the outline of a path.
type StrokePathCommand struct {
	Path PathRef
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// ClearRectCommand clears a rectangle.
type ClearRectCommand struct {
	Rect vecedit.Rect
}

// Type implements Command.
func (ClearRectCommand) Type() CommandType { return CmdClearRect }

// DrawImageCommand draws a pooled image scaled into Dst.
type DrawImageCommand struct {
	Image ImageRef
	Dst   vecedit.Rect
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
