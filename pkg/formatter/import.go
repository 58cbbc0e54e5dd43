package formatter

// Statement represents a single top-level statement extracted from a script
// block. Raw preserves the statement text byte for byte, including any
// comment lines attached above it.
type Statement struct {
	Raw           string // exact source text of the statement
	Body          string // statement text with attached comments stripped
	OriginalIndex int    // position before reordering, stable tie-break
	StartLine     int    // first line of Raw in the source block
	EndLine       int    // last line of Raw in the source block
	IsImport      bool
	TypeOnly      bool   // import carries a type-only marker
	ModulePath    string // import source path, empty for non-imports
	Category      ImportCategory
	Bucket        PreambleBucket
	Opaque        bool // extractor could not find a clean boundary
}

// PathKind classifies an import's module path.
type PathKind int

const (
	PathRelative PathKind = iota
	PathScoped
	PathBuiltin
	PathFramework
	PathThirdParty
)

// ImportCategory is the ordinal position of an import in the canonical
// output. Lower categories sort first.
type ImportCategory int

const (
	TypeScopedImport ImportCategory = iota
	TypeBuiltinImport
	TypeThirdPartyImport
	TypeRelativeImport
	ValueScopedImport
	ValueFrameworkImport
	ValueBuiltinImport
	ValueThirdPartyImport
	ValueRelativeImport
)

// PreambleBucket is the ordinal position of a declaration in a canonical
// component preamble. BucketUnclassified is terminal: anything no matcher
// recognizes lands there, after lifecycle hooks, and is never dropped.
type PreambleBucket int

const (
	BucketImports PreambleBucket = iota
	BucketProps
	BucketState
	BucketDerived
	BucketReactive
	BucketConstants
	BucketFunctions
	BucketEvents
	BucketStores
	BucketLifecycle
	BucketUnclassified
)

// bucketCount is the number of preamble buckets including the terminal one.
const bucketCount = int(BucketUnclassified) + 1
