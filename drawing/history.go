package drawing

import (
	"errors"

	"github.com/google/uuid"

	"github.com/gogpu/vecedit"
)

// DefaultHistoryLimit is the number of undo records kept when NewHistory
// is given a non-positive limit.
const DefaultHistoryLimit = 100

var (
	// ErrEditInProgress is returned by every History action except Cancel
	// and Commit while an edit is open.
	ErrEditInProgress = errors.New("drawing: edit already in progress")

	// ErrNoEdit is returned by Cancel and Commit without a matching Begin.
	ErrNoEdit = errors.New("drawing: no edit in progress")
)

// record is one undoable action. A nil before means the item was added; a
// nil after means it was removed. index is the stack position at the time.
type record struct {
	action string
	id     uuid.UUID
	index  int
	before vecedit.Primitive
	after  vecedit.Primitive
}

// pending is an interactive edit opened by Begin.
type pending struct {
	id       uuid.UUID
	prim     vecedit.Primitive
	restore  vecedit.Snapshot
	before   vecedit.Primitive
	revision uint64
}

// History records undoable changes to a Drawing.
//
// Interactive edits follow the Begin / Cancel / Commit protocol: Begin
// snapshots the primitive in place, the caller mutates it freely (for
// example on every drag event), and Cancel restores the snapshot while
// Commit stores independent copies of the before and after states.
//
// History is not safe for concurrent use.
type History struct {
	d     *Drawing
	limit int
	undo  []record
	redo  []record
	open  *pending
}

// NewHistory creates a history for d keeping at most limit undo records.
func NewHistory(d *Drawing, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{d: d, limit: limit}
}

// Drawing returns the drawing the history edits.
func (h *History) Drawing() *Drawing { return h.d }

// Add adds p to the drawing as an undoable action.
func (h *History) Add(p vecedit.Primitive) (uuid.UUID, error) {
	if h.open != nil {
		return uuid.Nil, ErrEditInProgress
	}
	id := h.d.Add(p)
	h.push(record{action: "add", id: id, index: h.d.Index(id), after: p.Copy()})
	return id, nil
}

// Remove removes an item as an undoable action.
func (h *History) Remove(id uuid.UUID) error {
	if h.open != nil {
		return ErrEditInProgress
	}
	p, i, ok := h.d.remove(id)
	if !ok {
		return ErrNotFound
	}
	h.push(record{action: "remove", id: id, index: i, before: p.Copy()})
	return nil
}

// Apply replaces the item with a transformed copy as an undoable action.
func (h *History) Apply(id uuid.UUID, m vecedit.Matrix) error {
	if h.open != nil {
		return ErrEditInProgress
	}
	p, ok := h.d.Get(id)
	if !ok {
		return ErrNotFound
	}
	next, err := p.CopyTransformed(m)
	if err != nil {
		return err
	}
	if _, err := h.d.Replace(id, next); err != nil {
		return err
	}
	h.push(record{action: "transform", id: id, index: h.d.Index(id), before: p.Copy(), after: next.Copy()})
	return nil
}

// Begin opens an interactive edit of the item with the given ID and
// returns the primitive to mutate.
func (h *History) Begin(id uuid.UUID) (vecedit.Primitive, error) {
	if h.open != nil {
		return nil, ErrEditInProgress
	}
	p, ok := h.d.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	h.open = &pending{
		id:       id,
		prim:     p,
		restore:  p.Snapshot(),
		before:   p.Copy(),
		revision: p.Revision(),
	}
	return p, nil
}

// Editing reports whether an edit is open.
func (h *History) Editing() bool { return h.open != nil }

// Cancel restores the primitive to its state at Begin and closes the edit.
func (h *History) Cancel() error {
	if h.open == nil {
		return ErrNoEdit
	}
	h.open.restore()
	h.open = nil
	return nil
}

// Commit closes the edit. It records an undo step only if the primitive's
// revision changed since Begin, and reports whether it did. If the item
// left the drawing during the edit, nothing is recorded and Commit returns
// ErrNotFound.
func (h *History) Commit() (bool, error) {
	if h.open == nil {
		return false, ErrNoEdit
	}
	op := h.open
	h.open = nil
	i := h.d.Index(op.id)
	if i < 0 {
		return false, ErrNotFound
	}
	if op.prim.Revision() == op.revision {
		return false, nil
	}
	h.push(record{action: "edit", id: op.id, index: i, before: op.before, after: op.prim.Copy()})
	return true, nil
}

func (h *History) push(r record) {
	h.undo = append(h.undo, r)
	if over := len(h.undo) - h.limit; over > 0 {
		clear(h.undo[:over])
		h.undo = h.undo[over:]
	}
	clear(h.redo)
	h.redo = h.redo[:0]
	vecedit.Logger().Debug("drawing: recorded", "action", r.action, "id", r.id, "depth", len(h.undo))
}

// CanUndo reports whether Undo has a step to revert.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo has a step to reapply.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Undo reverts the most recent step. It fails while an edit is open.
func (h *History) Undo() (bool, error) {
	if h.open != nil {
		return false, ErrEditInProgress
	}
	if len(h.undo) == 0 {
		return false, nil
	}
	r := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.set(r.id, r.index, r.before)
	h.redo = append(h.redo, r)
	return true, nil
}

// Redo reapplies the most recently undone step. It fails while an edit is
// open.
func (h *History) Redo() (bool, error) {
	if h.open != nil {
		return false, ErrEditInProgress
	}
	if len(h.redo) == 0 {
		return false, nil
	}
	r := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.set(r.id, r.index, r.after)
	h.undo = append(h.undo, r)
	return true, nil
}

// set makes the drawing hold a copy of p under id, or nothing if p is nil.
// Copies keep the stored records independent of later edits.
func (h *History) set(id uuid.UUID, index int, p vecedit.Primitive) {
	if p == nil {
		h.d.Remove(id)
		return
	}
	if _, err := h.d.Replace(id, p.Copy()); errors.Is(err, ErrNotFound) {
		h.d.insert(index, Item{ID: id, Primitive: p.Copy()})
	}
}
