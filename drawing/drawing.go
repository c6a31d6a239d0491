package drawing

import (
	"errors"
	"iter"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/gogpu/vecedit"
)

// ErrNotFound is returned when an ID does not name an item of the drawing.
var ErrNotFound = errors.New("drawing: item not found")

// Item is one primitive of a drawing with its stable identifier.
type Item struct {
	ID        uuid.UUID
	Primitive vecedit.Primitive
}

// Drawing is an ordered stack of primitives, bottom first. Items are keyed
// by random UUIDs that stay stable across edits, undo and replacement.
//
// Drawing is safe for concurrent use; the primitives it holds are not.
type Drawing struct {
	mu    sync.RWMutex
	items []Item
}

// New creates an empty drawing.
func New() *Drawing {
	return &Drawing{}
}

// Add puts p on top of the stack and returns its new ID.
func (d *Drawing) Add(p vecedit.Primitive) uuid.UUID {
	id := uuid.New()
	d.mu.Lock()
	d.items = append(d.items, Item{ID: id, Primitive: p})
	d.mu.Unlock()
	return id
}

// insert places an item at stack position i, clamped to the valid range.
func (d *Drawing) insert(i int, it Item) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i = min(max(i, 0), len(d.items))
	d.items = slices.Insert(d.items, i, it)
}

// Remove deletes the item with the given ID and reports whether it existed.
func (d *Drawing) Remove(id uuid.UUID) bool {
	_, _, ok := d.remove(id)
	return ok
}

func (d *Drawing) remove(id uuid.UUID) (vecedit.Primitive, int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.index(id)
	if i < 0 {
		return nil, -1, false
	}
	p := d.items[i].Primitive
	d.items = slices.Delete(d.items, i, i+1)
	return p, i, true
}

// Get returns the primitive with the given ID.
func (d *Drawing) Get(id uuid.UUID) (vecedit.Primitive, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if i := d.index(id); i >= 0 {
		return d.items[i].Primitive, true
	}
	return nil, false
}

// Index returns the stack position of id, or -1.
func (d *Drawing) Index(id uuid.UUID) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index(id)
}

func (d *Drawing) index(id uuid.UUID) int {
	return slices.IndexFunc(d.items, func(it Item) bool { return it.ID == id })
}

// Replace swaps the primitive stored under id, keeping its stack position,
// and returns the previous one.
func (d *Drawing) Replace(id uuid.UUID, p vecedit.Primitive) (vecedit.Primitive, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.index(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	old := d.items[i].Primitive
	d.items[i].Primitive = p
	return old, nil
}

// Len returns the number of items.
func (d *Drawing) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.items)
}

// Items returns a copy of the item list, bottom first.
func (d *Drawing) Items() []Item {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.items)
}

// All iterates over the items bottom first. The iteration works on a copy
// of the item list, so the drawing may be edited during the loop.
func (d *Drawing) All() iter.Seq2[uuid.UUID, vecedit.Primitive] {
	items := d.Items()
	return func(yield func(uuid.UUID, vecedit.Primitive) bool) {
		for _, it := range items {
			if !yield(it.ID, it.Primitive) {
				return
			}
		}
	}
}

// HitTest returns the topmost item whose bounds, grown by tolerance on
// every side, contain pt.
func (d *Drawing) HitTest(pt vecedit.Point, tolerance float64) (uuid.UUID, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := len(d.items) - 1; i >= 0; i-- {
		b := d.items[i].Primitive.Bounds()
		if b.IsEmpty() {
			continue
		}
		b.Min = b.Min.Sub(vecedit.Pt(tolerance, tolerance))
		b.Max = b.Max.Add(vecedit.Pt(tolerance, tolerance))
		if b.Contains(pt) {
			return d.items[i].ID, true
		}
	}
	return uuid.Nil, false
}

// Bounds returns the union of every item's bounds. It is empty for an
// empty drawing.
func (d *Drawing) Bounds() vecedit.Rect {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r := vecedit.EmptyRect()
	for _, it := range d.items {
		r = it.Primitive.AddToBounds(r)
	}
	return r
}

// Paint paints every item into c, bottom first.
func (d *Drawing) Paint(c vecedit.Canvas) {
	for _, p := range d.All() {
		p.Paint(c)
	}
}
