// Package interner implements a small, append-only string interner used
// to turn station codes into compact integer handles.
package interner

// defaultCapacity is reserved eagerly so that the backing slice for a
// full NS timetable (~1000 stations) never needs to grow mid-parse.
const defaultCapacity = 1024

// Handle is a 16-bit index into an Interner. Handles are stable for
// the lifetime of the Interner that issued them.
type Handle uint16

// Interner interns station codes to Handles and back. It is built up
// single-threaded during ingestion and is read-only (and therefore
// safe to share across goroutines) afterwards.
type Interner struct {
	codes   []string
	indexOf map[string]Handle
}

// New returns an empty Interner with capacity reserved for typical NS
// timetable sizes.
func New() *Interner {
	return &Interner{
		codes:   make([]string, 0, defaultCapacity),
		indexOf: make(map[string]Handle, defaultCapacity),
	}
}

// Intern inserts code if absent and returns its Handle. Repeated calls
// with the same code return the same Handle.
func (in *Interner) Intern(code string) Handle {
	if h, ok := in.indexOf[code]; ok {
		return h
	}

	h := Handle(len(in.codes))
	in.codes = append(in.codes, code)
	in.indexOf[code] = h
	return h
}

// Lookup returns the Handle for code, if it has already been interned.
func (in *Interner) Lookup(code string) (Handle, bool) {
	h, ok := in.indexOf[code]
	return h, ok
}

// Resolve returns the code a Handle was interned from. It panics if
// handle was not issued by this Interner, since that is always a
// programming error (handles never escape the repository that owns
// the Interner that produced them).
func (in *Interner) Resolve(handle Handle) string {
	return in.codes[int(handle)]
}

// Len returns the number of distinct codes interned so far.
func (in *Interner) Len() int {
	return len(in.codes)
}

// Codes returns the interned strings in handle order — 0 is
// codes[0], 1 is codes[1], and so on. The slice is owned by the
// Interner and must not be mutated by callers.
func (in *Interner) Codes() []string {
	return in.codes
}
