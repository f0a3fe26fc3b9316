package indent

import (
	"hash/fnv"
	"strings"
)

// Indentation is an immutable prefix to prepend to characters whenever
// printing on a new line.
//
// Indenting and unindenting return other instances and never modify the
// receiver. All instances derived from the same Of call share one
// immutable cache of precomputed levels, so level changes within the
// cached range allocate nothing.
type Indentation struct {
	level int
	value string
	cache []*Indentation
}

// Canonical indentations, anchored at level 0. Of normalizes the matching
// units to these shared instances.
var (
	// Empty indentation. The level is maintained but the materialized
	// value remains empty at all levels.
	Empty = newIndentation(UnitNone, CanonicalCacheSize)

	// Tabs indents by one tab character per level.
	Tabs = newIndentation(UnitTab, CanonicalCacheSize)

	// TwoSpaces indents by two spaces per level.
	TwoSpaces = newIndentation(UnitTwoSpaces, CanonicalCacheSize)

	// FourSpaces indents by four spaces per level.
	FourSpaces = newIndentation(UnitFourSpaces, CanonicalCacheSize)
)

// newIndentation builds a fresh shared cache of cacheSize levels and
// returns its level-0 anchor.
func newIndentation(unit string, cacheSize int) *Indentation {
	if cacheSize < minCacheSize {
		cacheSize = minCacheSize
	}
	cache := make([]*Indentation, cacheSize)
	cache[0] = &Indentation{level: 0, value: "", cache: cache}
	for i := 1; i < cacheSize; i++ {
		cache[i] = &Indentation{level: i, value: cache[i-1].value + unit, cache: cache}
	}
	return cache[0]
}

// Of returns an indentation for the given unit, initialized at level 0.
//
// The common units "", "\t", "  " and "    " resolve to the shared
// Empty, Tabs, TwoSpaces and FourSpaces instances. Any other unit
// allocates a fresh cache precomputed to DefaultCacheSize levels.
func Of(unit string) *Indentation {
	switch unit {
	case UnitNone:
		return Empty
	case UnitTab:
		return Tabs
	case UnitTwoSpaces:
		return TwoSpaces
	case UnitFourSpaces:
		return FourSpaces
	}
	return newIndentation(unit, DefaultCacheSize)
}

// From returns the level-0 indentation sharing the given indentation's
// unit and cache. Returns a precondition error when ind is nil.
func From(ind *Indentation) (*Indentation, error) {
	if ind == nil {
		return nil, NewNilIndentationError()
	}
	return ind.cache[0], nil
}

// Indent returns the indentation one level deeper. The receiver is not
// modified.
func (i *Indentation) Indent() *Indentation {
	next, _ := i.AtLevel(i.level + 1) // level+1 is never negative
	return next
}

// Unindent returns the indentation one level shallower. The level never
// becomes negative: at level 0 the receiver itself is returned.
func (i *Indentation) Unindent() *Indentation {
	if i.level == 0 {
		return i
	}
	prev, _ := i.AtLevel(i.level - 1)
	return prev
}

// AtLevel returns the indentation at the requested level.
//
// The receiver is returned unchanged when the level already matches, and
// cached instances are returned for levels within the shared cache.
// Levels beyond the cache are synthesized by extending the cache's
// longest entry, so the cost of deep indentation is amortized.
//
// A negative level yields an invalid-argument error.
func (i *Indentation) AtLevel(level int) (*Indentation, error) {
	if level < 0 {
		return nil, NewNegativeLevelError(level)
	}
	if level == i.level {
		return i, nil
	}
	if level < len(i.cache) {
		return i.cache[level], nil
	}

	unit := i.Unit()
	if unit == "" {
		return &Indentation{level: level, value: "", cache: i.cache}, nil
	}
	longest := i.cache[len(i.cache)-1]
	var sb strings.Builder
	sb.Grow(level * len(unit))
	sb.WriteString(longest.value)
	for l := longest.level; l < level; l++ {
		sb.WriteString(unit)
	}
	return &Indentation{level: level, value: sb.String(), cache: i.cache}, nil
}

// MustAtLevel is like AtLevel but panics on a negative level.
func (i *Indentation) MustAtLevel(level int) *Indentation {
	ind, err := i.AtLevel(level)
	if err != nil {
		panic(err)
	}
	return ind
}

// Level returns the indentation level.
func (i *Indentation) Level() int {
	return i.level
}

// Unit returns the string repeated once per indentation level. It is
// defined as the materialized value at level 1.
func (i *Indentation) Unit() string {
	return i.cache[1].value
}

// Len returns the length of the materialized value in bytes, which
// equals level * len(unit).
func (i *Indentation) Len() int {
	return len(i.value)
}

// At returns the byte at the given index of the materialized value.
// Indexes outside [0, Len) yield a bounds error.
func (i *Indentation) At(index int) (byte, error) {
	if index < 0 || index >= len(i.value) {
		return 0, NewIndexOutOfRangeError(index, len(i.value))
	}
	return i.value[index], nil
}

// Slice returns the [start, end) substring of the materialized value.
// Invalid ranges yield a bounds error.
func (i *Indentation) Slice(start, end int) (string, error) {
	if start < 0 || end < start || end > len(i.value) {
		return "", NewInvalidRangeError(start, end, len(i.value))
	}
	return i.value[start:end], nil
}

// Equal reports whether both indentations have the same level and the
// same unit. The materialized values need not be the same object.
func (i *Indentation) Equal(other *Indentation) bool {
	if i == other {
		return true
	}
	if i == nil || other == nil {
		return false
	}
	return i.level == other.level && i.Unit() == other.Unit()
}

// Hash returns a hash of the materialized value. Equal indentations
// produce equal hashes.
func (i *Indentation) Hash() uint32 {
	h := fnv.New32a()
	h.Write([]byte(i.value))
	return h.Sum32()
}

// String returns the materialized value: the unit repeated level times.
func (i *Indentation) String() string {
	return i.value
}
