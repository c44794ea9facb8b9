package kstring

// Interner is a content-addressed pool that owns every heap-allocated
// String an Environment produces and may deduplicate identical
// content. Dedup is a permitted optimization, not an invariant:
// callers must not rely on pointer equality for equal contents except
// when strictly derived from Fetch.
type Interner struct {
	pool map[string]*String
}

// NewInterner returns an empty Interner pre-seeded with the shared
// singleton literals so to_string on booleans/null/0/1 allocates
// nothing, per spec.md §9 "Static singletons for constant coercions".
func NewInterner() *Interner {
	in := &Interner{pool: make(map[string]*String, 64)}
	for _, lit := range []*String{True, False, Null, Zero, One, Empty} {
		in.Register(lit)
	}
	return in
}

// Len reports how many distinct contents are currently pooled
// (debug/--stats use only).
func (in *Interner) Len() int { return len(in.pool) }

// Register inserts a pre-built String into the pool, keyed by its
// current contents. Returns whether the insertion was new; a false
// return is non-fatal, the caller simply keeps its own unshared
// String. Registering a String whose contents later change (which
// cannot happen post spec.md's single-write invariant) would be a bug.
func (in *Interner) Register(s *String) bool {
	key := string(s.Bytes())
	if _, ok := in.pool[key]; ok {
		return false
	}
	in.pool[key] = s
	s.pool = in
	return true
}

// evict drops s's pool entry once s's refcount has reached zero, so a
// later Fetch of the same content allocates fresh instead of reviving
// a String whose storage deinit already tore down. A no-op if s was
// already replaced in the pool by a newer registration for the same
// content (evict only removes the entry if it still points at s).
func (in *Interner) evict(s *String) {
	key := string(s.Bytes())
	if in.pool[key] == s {
		delete(in.pool, key)
	}
}

// Fetch returns an existing String with matching contents, refcount
// bumped, or allocates and registers a new one.
func (in *Interner) Fetch(b []byte) *String {
	if s, ok := in.pool[string(b)]; ok {
		s.Increment()
		return s
	}
	s := embedOrOwned(b)
	in.Register(s)
	return s
}

// Concat allocates a fresh String of length lhs.Len()+rhs.Len(),
// written lhs-then-rhs, and registers it. When either side is empty,
// the other side is returned with its refcount bumped and nothing is
// allocated.
func (in *Interner) Concat(lhs, rhs *String) *String {
	if lhs.Len() == 0 {
		rhs.Increment()
		return rhs
	}
	if rhs.Len() == 0 {
		lhs.Increment()
		return lhs
	}
	s := WithCapacity(lhs.Len() + rhs.Len())
	buf := s.AsMutBytes()
	n := copy(buf, lhs.Bytes())
	copy(buf[n:], rhs.Bytes())
	s.Fill()
	in.Register(s)
	return s
}

// Repeat allocates src.Len()*n bytes, filled by n consecutive copies
// of src. n == 0 returns the canonical empty string; n == 1 returns
// src itself with its refcount bumped.
func (in *Interner) Repeat(src *String, n int) *String {
	if n == 0 {
		return in.Fetch(nil)
	}
	if n == 1 {
		src.Increment()
		return src
	}
	s := WithCapacity(src.Len() * n)
	buf := s.AsMutBytes()
	for i := 0; i < n; i++ {
		copy(buf[i*src.Len():], src.Bytes())
	}
	s.Fill()
	in.Register(s)
	return s
}

// Substring registers a substring variant borrowing owner's
// [start, start+length) byte range. A zero length returns the
// canonical empty string instead.
func (in *Interner) Substring(owner *String, start, length int) *String {
	if length == 0 {
		return in.Fetch(nil)
	}
	s := newSubstring(owner, start, length)
	in.Register(s)
	return s
}

// Shared process-wide literals, per spec.md §9. Initialized once;
// their refcount is advisory and never drives a free.
var (
	True  = Literal([]byte("true"))
	False = Literal([]byte("false"))
	Null  = Literal([]byte("null"))
	Zero  = Literal([]byte("0"))
	One   = Literal([]byte("1"))
	Empty = Literal([]byte(""))
)
