package formatter

import (
	"regexp"
	"strings"

	"github.com/siyuan-infoblox/svelte-imports-group/pkg/std"
)

// frameworkModules are Svelte runtime entry points that sort ahead of
// generic third-party value imports.
var frameworkModules = []string{
	"svelte",
	"svelte/",
	"$app/",
	"$env/",
	"$service-worker",
}

// classifyPath resolves the path kind of a module specifier. The check order
// is load-bearing: relative and scoped prefixes win over everything, and the
// framework-runtime match is only consulted after the builtin registry, so a
// scoped package that happens to vendor a framework name is never
// misclassified.
func (g *formatter) classifyPath(modulePath string, valueBranch bool) PathKind {
	switch {
	case strings.HasPrefix(modulePath, "."):
		return PathRelative
	case strings.HasPrefix(modulePath, "@"):
		return PathScoped
	case g.isBuiltinModule(modulePath):
		return PathBuiltin
	case valueBranch && g.isFrameworkModule(modulePath):
		return PathFramework
	default:
		return PathThirdParty
	}
}

func (g *formatter) isBuiltinModule(modulePath string) bool {
	if std.IsBuiltinModule(modulePath) {
		return true
	}
	for _, extra := range g.config.ExtraBuiltinModules {
		if modulePath == extra || strings.HasPrefix(modulePath, extra+"/") {
			return true
		}
	}
	return false
}

func (g *formatter) isFrameworkModule(modulePath string) bool {
	for _, fw := range frameworkModules {
		if strings.HasSuffix(fw, "/") {
			if strings.HasPrefix(modulePath, fw) {
				return true
			}
		} else if modulePath == fw {
			return true
		}
	}
	for _, extra := range g.config.ExtraFrameworkModules {
		if modulePath == extra || strings.HasPrefix(modulePath, extra+"/") {
			return true
		}
	}
	return false
}

// importCategoryTable maps (type-only axis, path kind) to the category
// ordinal. Type imports have no framework slot: a framework path on the type
// axis resolves as third-party.
var importCategoryTable = map[bool]map[PathKind]ImportCategory{
	true: {
		PathScoped:     TypeScopedImport,
		PathBuiltin:    TypeBuiltinImport,
		PathThirdParty: TypeThirdPartyImport,
		PathRelative:   TypeRelativeImport,
	},
	false: {
		PathScoped:     ValueScopedImport,
		PathFramework:  ValueFrameworkImport,
		PathBuiltin:    ValueBuiltinImport,
		PathThirdParty: ValueThirdPartyImport,
		PathRelative:   ValueRelativeImport,
	},
}

// classifyImport assigns the import category ordinal for a statement.
func (g *formatter) classifyImport(st *Statement) ImportCategory {
	kind := g.classifyPath(st.ModulePath, !st.TypeOnly)
	return importCategoryTable[st.TypeOnly][kind]
}

// Preamble bucket matchers. Evaluation order differs from the canonical
// output order: rune wrappers and store constructors must be recognized
// before the generic let/const fallbacks claim them. Matching is by
// declaration shape, so legacy and runes syntax route to the same bucket.
var (
	legacyPropRe = regexp.MustCompile(`^export\s+(let|var|const)\b`)
	runePropsRe  = regexp.MustCompile(`^(let|var|const)\s[\s\S]*=\s*\$props\s*\(`)
	reactiveRe   = regexp.MustCompile(`^\$:`)
	effectRe     = regexp.MustCompile(`^\$effect\s*[.(]`)
	derivedRe    = regexp.MustCompile(`^(let|var|const)\s[\s\S]*=\s*\$derived(\.by)?\s*\(`)
	lifecycleRe  = regexp.MustCompile(`^(onMount|onDestroy|beforeUpdate|afterUpdate)\s*\(`)
	dispatcherRe = regexp.MustCompile(`\bcreateEventDispatcher\s*[<(]`)
	storeCtorRe  = regexp.MustCompile(`^(export\s+)?(let|var|const)\s[\s\S]*=\s*(writable|readable|derived)\s*[<(]`)
	stateRuneRe  = regexp.MustCompile(`^(let|var|const)\s[\s\S]*=\s*\$state(\.raw)?\s*\(`)
	legacyLetRe  = regexp.MustCompile(`^(let|var)\b`)
	functionRe   = regexp.MustCompile(`^(export\s+)?(async\s+)?function\b`)
	constRe      = regexp.MustCompile(`^const\b`)
)

type bucketMatcher struct {
	bucket PreambleBucket
	match  func(body string) bool
}

func reMatcher(bucket PreambleBucket, re *regexp.Regexp) bucketMatcher {
	return bucketMatcher{bucket: bucket, match: re.MatchString}
}

// bucketMatchers is consulted in order; the first hit wins.
var bucketMatchers = []bucketMatcher{
	reMatcher(BucketProps, runePropsRe),
	reMatcher(BucketProps, legacyPropRe),
	reMatcher(BucketReactive, reactiveRe),
	reMatcher(BucketReactive, effectRe),
	reMatcher(BucketDerived, derivedRe),
	reMatcher(BucketLifecycle, lifecycleRe),
	reMatcher(BucketEvents, dispatcherRe),
	reMatcher(BucketStores, storeCtorRe),
	reMatcher(BucketState, stateRuneRe),
	reMatcher(BucketState, legacyLetRe),
	reMatcher(BucketFunctions, functionRe),
	reMatcher(BucketConstants, constRe),
}

// classifyBucket assigns the preamble bucket for a statement. The function
// is total: anything unrecognized lands in the terminal unclassified bucket.
func (g *formatter) classifyBucket(st *Statement) PreambleBucket {
	if st.Opaque {
		return BucketUnclassified
	}
	if st.IsImport {
		return BucketImports
	}
	body := strings.TrimSpace(st.Body)
	for _, m := range bucketMatchers {
		if m.match(body) {
			return m.bucket
		}
	}
	return BucketUnclassified
}
