package materialize

const DefaultMaxDepth = 1000

type Options struct {
	// JSON selects the lenient mode, in which duplicate keys overwrite
	// each other and keys which are not scalars are dropped.  When false,
	// a duplicate key is an error.
	JSON bool
	// IgnoreDuplicateKeys suppresses duplicate key diagnostics in the
	// lenient mode.
	IgnoreDuplicateKeys bool
	// DuplicateKeysAsHints reports duplicate keys with hint rather than
	// error severity.
	DuplicateKeysAsHints bool
	MergeKeys            bool
	// BigInt keeps integers which do not fit in 64 bits exact.  Otherwise
	// they become floats.
	BigInt bool
	// PreserveKeyOrder emits object keys in first insertion order rather
	// than sorted.
	PreserveKeyOrder bool
	MaxDepth         int
}

func DefaultOptions() Options {
	return Options{
		JSON:                true,
		IgnoreDuplicateKeys: true,
		MaxDepth:            DefaultMaxDepth,
	}
}
