package indent

// Canonical indentation units - these resolve to shared cached instances in Of
const (
	UnitNone       = ""
	UnitTab        = "\t"
	UnitTwoSpaces  = "  "
	UnitFourSpaces = "    "
)

// Cache sizing
const (
	// CanonicalCacheSize is the number of precomputed levels held by the
	// canonical indentations (Empty, Tabs, TwoSpaces, FourSpaces).
	CanonicalCacheSize = 20

	// DefaultCacheSize is the number of precomputed levels for
	// indentations created from a non-canonical unit.
	DefaultCacheSize = 5

	// minCacheSize guarantees cache entry 1 exists; Unit reads it.
	minCacheSize = 2
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyLevel    = "level"
	MetaKeyIndex    = "index"
	MetaKeyStart    = "start"
	MetaKeyEnd      = "end"
	MetaKeyLength   = "length"
	MetaKeyDelegate = "delegate"
)
