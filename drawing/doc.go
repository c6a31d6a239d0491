// Package drawing holds a document of vecedit primitives and its undo
// history.
//
// A Drawing is an ordered stack of primitives keyed by UUID. A History
// wraps it with undoable Add, Remove and Apply operations and with the
// interactive edit protocol that vecedit's snapshots are built for:
//
//	p, err := h.Begin(id)    // snapshot in place
//	p.SetControlPoint(0, pt) // many times while dragging
//	h.Cancel()               // restore the snapshot, or
//	h.Commit()               // keep the edit as one undo step
package drawing
