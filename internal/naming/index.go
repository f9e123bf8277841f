package naming

import "slices"

// LookupStatus is the outcome of resolving a key against an Index.
type LookupStatus int

const (
	Unmatched LookupStatus = iota
	Ambiguous
	Resolved
)

func (s LookupStatus) String() string {
	switch s {
	case Unmatched:
		return "unmatched"
	case Ambiguous:
		return "ambiguous"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Lookup is the tagged result of Index.Find. Target is only meaningful when
// Status is Resolved; Candidates is filled for Ambiguous.
type Lookup[T any] struct {
	Status     LookupStatus
	Target     T
	Candidates []T
}

// Index maps a normalized key to every record carrying it. Records whose key
// is empty are not indexed.
type Index[T any] struct {
	buckets map[string][]T
}

// NewIndex builds an index over items using keyFn.
func NewIndex[T any](items []T, keyFn func(T) string) *Index[T] {
	idx := &Index[T]{buckets: make(map[string][]T, len(items))}
	for _, it := range items {
		idx.Add(keyFn(it), it)
	}
	return idx
}

// Add inserts item under key; empty keys are ignored.
func (x *Index[T]) Add(key string, item T) {
	if key == "" {
		return
	}
	x.buckets[key] = append(x.buckets[key], item)
}

// Has reports whether at least one record carries key.
func (x *Index[T]) Has(key string) bool {
	if key == "" {
		return false
	}
	return len(x.buckets[key]) > 0
}

// All returns every record under key. The result has no spare capacity, so
// appending to it never writes into the index.
func (x *Index[T]) All(key string) []T {
	if key == "" {
		return nil
	}
	return slices.Clip(x.buckets[key])
}

// Find resolves key. More than one candidate is never narrowed down here;
// callers decide whether a deterministic filter applies.
func (x *Index[T]) Find(key string) Lookup[T] {
	return Resolve(x.All(key))
}

// Resolve classifies a candidate list.
func Resolve[T any](candidates []T) Lookup[T] {
	switch len(candidates) {
	case 0:
		return Lookup[T]{Status: Unmatched}
	case 1:
		return Lookup[T]{Status: Resolved, Target: candidates[0], Candidates: candidates}
	default:
		return Lookup[T]{Status: Ambiguous, Candidates: candidates}
	}
}
