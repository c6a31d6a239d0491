package recording

import (
	"image"

	"github.com/gogpu/vecedit"
)

// Recorder captures canvas operations as commands. It implements
// vecedit.Canvas, so any primitive can paint into it. Use Finish to obtain
// an immutable Recording that can be replayed to another canvas.
//
// Example:
//
//	rec := recording.NewRecorder()
//	circle.Paint(rec)
//	r := rec.Finish()
//	r.Playback(dst)
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	resources *ResourcePool
	bounds    vecedit.Rect
}

var _ vecedit.Canvas = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 32),
		resources: NewResourcePool(),
		bounds:    vecedit.EmptyRect(),
	}
}

// Record paints every primitive into a fresh recorder and returns the result.
func Record(items ...vecedit.Renderable) *Recording {
	rec := NewRecorder()
	for _, it := range items {
		it.Paint(rec)
	}
	return rec.Finish()
}

// FillPath implements vecedit.Canvas.
func (r *Recorder) FillPath(p *vecedit.Path) {
	ref := r.resources.AddPath(p)
	r.grow(r.resources.GetPath(ref).Bounds())
	r.commands = append(r.commands, FillPathCommand{Path: ref})
}

// StrokePath implements vecedit.Canvas.
func (r *Recorder) StrokePath(p *vecedit.Path) {
	ref := r.resources.AddPath(p)
	r.grow(r.resources.GetPath(ref).Bounds())
	r.commands = append(r.commands, StrokePathCommand{Path: ref})
}

// ClearRect implements vecedit.Canvas.
func (r *Recorder) ClearRect(rect vecedit.Rect) {
	r.grow(rect)
	r.commands = append(r.commands, ClearRectCommand{Rect: rect})
}

// DrawImage implements vecedit.Canvas.
// Nil and empty images are dropped.
func (r *Recorder) DrawImage(img image.Image, dst vecedit.Rect) {
	ref := r.resources.AddImage(img)
	if !ref.IsValid() {
		return
	}
	r.grow(dst)
	r.commands = append(r.commands, DrawImageCommand{Image: ref, Dst: dst})
}

func (r *Recorder) grow(b vecedit.Rect) {
	if !b.IsEmpty() {
		r.bounds = r.bounds.Union(b)
	}
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands and resources.
func (r *Recorder) Reset() {
	clear(r.commands)
	r.commands = r.commands[:0]
	r.resources.Clear()
	r.bounds = vecedit.EmptyRect()
}

// Finish returns an immutable Recording containing all recorded commands.
// After calling Finish, the Recorder should not be used again.
func (r *Recorder) Finish() *Recording {
	return &Recording{
		commands:  r.commands,
		resources: r.resources,
		bounds:    r.bounds,
	}
}

// Recording is an immutable container for recorded canvas commands.
type Recording struct {
	commands  []Command
	resources *ResourcePool
	bounds    vecedit.Rect
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Bounds returns the union of every recorded path and rectangle. It is
// empty for an empty recording.
func (r *Recording) Bounds() vecedit.Rect {
	return r.bounds
}

// Playback replays the recording to c. Paths handed to c are clones, so
// the recording can be replayed any number of times. Commands whose
// resource reference does not resolve are skipped.
func (r *Recording) Playback(c vecedit.Canvas) {
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case FillPathCommand:
			if p := r.resources.GetPath(cmd.Path); p != nil {
				c.FillPath(p.Clone())
			}
		case StrokePathCommand:
			if p := r.resources.GetPath(cmd.Path); p != nil {
				c.StrokePath(p.Clone())
			}
		case ClearRectCommand:
			c.ClearRect(cmd.Rect)
		case DrawImageCommand:
			if img := r.resources.GetImage(cmd.Image); img != nil {
				c.DrawImage(img, cmd.Dst)
			}
		}
	}
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}
