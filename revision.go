package vecedit

// Snapshot restores the state a primitive had when the snapshot was taken.
// It may be called any number of times.
type Snapshot func()

// Versioning holds the revision counter shared by every primitive.
// The zero value starts at revision 0.
type Versioning struct {
	rev uint64
}

// Revision returns the current revision.
func (v *Versioning) Revision() uint64 { return v.rev }

func (v *Versioning) bump() { v.rev++ }

// restorable captures *p by value and returns a Snapshot writing it back.
// clone deep-copies any reference fields (slices, paths) of the value; it is
// applied both when capturing and on every restore so repeated restores
// never share storage with the live primitive.
func restorable[T any](p *T, clone func(T) T) Snapshot {
	saved := clone(*p)
	return func() {
		*p = clone(saved)
	}
}

// plain is the clone function for values without reference fields.
func plain[T any](v T) T { return v }
