package formatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatter_classifyPath(t *testing.T) {
	req := require.New(t)
	g := New(FormatterConfig{})

	tests := []struct {
		name        string
		modulePath  string
		valueBranch bool
		want        PathKind
	}{
		{"relative sibling", "./utils", true, PathRelative},
		{"relative parent", "../lib/helpers", true, PathRelative},
		{"scoped package", "@scope/b", true, PathScoped},
		{"scoped framework package", "@sveltejs/kit", true, PathScoped},
		{"builtin", "path", true, PathBuiltin},
		{"builtin subpath", "fs/promises", true, PathBuiltin},
		{"builtin with scheme", "node:fs", true, PathBuiltin},
		{"framework runtime", "svelte", true, PathFramework},
		{"framework submodule", "svelte/store", true, PathFramework},
		{"framework app alias", "$app/stores", true, PathFramework},
		{"framework env alias", "$env/static/public", true, PathFramework},
		{"third party", "zod", true, PathThirdParty},
		{"framework on type axis is third-party", "svelte", false, PathThirdParty},
		{"bare alias falls back to third-party", "$lib/components", true, PathThirdParty},
		{"unknown prefix falls back to third-party", "~alias/thing", true, PathThirdParty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := g.classifyPath(tt.modulePath, tt.valueBranch)
			req.Equal(tt.want, result, "classifyPath(%q, %v)", tt.modulePath, tt.valueBranch)
		})
	}
}

func TestFormatter_classifyPath_configExtensions(t *testing.T) {
	req := require.New(t)
	g := New(FormatterConfig{
		ExtraBuiltinModules:   []string{"bun"},
		ExtraFrameworkModules: []string{"$service-worker", "$houdini"},
	})

	req.Equal(PathBuiltin, g.classifyPath("bun", true))
	req.Equal(PathBuiltin, g.classifyPath("bun/test", true))
	req.Equal(PathFramework, g.classifyPath("$houdini", true))
	req.Equal(PathFramework, g.classifyPath("$houdini/runtime", true))
}

func TestFormatter_classifyImport(t *testing.T) {
	req := require.New(t)
	g := New(FormatterConfig{})

	tests := []struct {
		name       string
		modulePath string
		typeOnly   bool
		want       ImportCategory
	}{
		{"type scoped", "@scope/b", true, TypeScopedImport},
		{"type builtin", "node:path", true, TypeBuiltinImport},
		{"type third-party", "zod", true, TypeThirdPartyImport},
		{"type framework resolves as third-party", "svelte", true, TypeThirdPartyImport},
		{"type relative", "./a", true, TypeRelativeImport},
		{"value scoped", "@scope/b", false, ValueScopedImport},
		{"value framework", "svelte/transition", false, ValueFrameworkImport},
		{"value builtin", "fs", false, ValueBuiltinImport},
		{"value third-party", "zod", false, ValueThirdPartyImport},
		{"value bare alias fallback", "$lib/utils", false, ValueThirdPartyImport},
		{"value relative", "../shared", false, ValueRelativeImport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Statement{ModulePath: tt.modulePath, TypeOnly: tt.typeOnly, IsImport: true}
			result := g.classifyImport(&st)
			req.Equal(tt.want, result, "classifyImport(%q, typeOnly=%v)", tt.modulePath, tt.typeOnly)
		})
	}
}

func TestFormatter_classifyBucket(t *testing.T) {
	req := require.New(t)
	g := New(FormatterConfig{})

	tests := []struct {
		name string
		body string
		want PreambleBucket
	}{
		// props, legacy and runes
		{"legacy prop", "export let title;", BucketProps},
		{"legacy readonly prop", "export const version = '1';", BucketProps},
		{"runes props destructure", "let { value = 0, label } = $props();", BucketProps},
		{"runes props const", "const { data } = $props();", BucketProps},

		// state, legacy and runes
		{"legacy state", "let count = 0;", BucketState},
		{"legacy uninitialized state", "let selection;", BucketState},
		{"runes state", "let count = $state(0);", BucketState},
		{"runes raw state", "let big = $state.raw([]);", BucketState},

		// derived state
		{"runes derived", "const doubled = $derived(count * 2);", BucketDerived},
		{"runes derived by", "let total = $derived.by(() => sum(items));", BucketDerived},

		// reactive statements
		{"labeled reactive", "$: doubled = count * 2;", BucketReactive},
		{"labeled reactive block", "$: { console.log(count); }", BucketReactive},
		{"runes effect", "$effect(() => { console.log(count); });", BucketReactive},
		{"runes pre effect", "$effect.pre(() => { measure(); });", BucketReactive},

		// constants and functions
		{"constant", "const API_URL = 'https://example.com';", BucketConstants},
		{"arrow handler is a constant", "const onClick = () => select(id);", BucketConstants},
		{"function declaration", "function handleClick() {}", BucketFunctions},
		{"async function declaration", "async function load() {}", BucketFunctions},
		{"exported function", "export function reset() {}", BucketFunctions},

		// events, stores, lifecycle
		{"event dispatcher", "const dispatch = createEventDispatcher();", BucketEvents},
		{"typed event dispatcher", "const dispatch = createEventDispatcher<Events>();", BucketEvents},
		{"writable store", "const user = writable(null);", BucketStores},
		{"readable store", "let clock = readable(new Date());", BucketStores},
		{"derived store", "const fullName = derived([first, last], join);", BucketStores},
		{"lifecycle onMount", "onMount(() => { fetchData(); });", BucketLifecycle},
		{"lifecycle onDestroy", "onDestroy(unsubscribe);", BucketLifecycle},
		{"lifecycle beforeUpdate", "beforeUpdate(() => {});", BucketLifecycle},

		// terminal bucket
		{"class declaration", "class Point {}", BucketUnclassified},
		{"bare expression", "setupAnalytics();", BucketUnclassified},
		{"local type declaration", "export type Item = { id: string };", BucketUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Statement{Raw: tt.body, Body: tt.body}
			result := g.classifyBucket(&st)
			req.Equal(tt.want, result, "classifyBucket(%q)", tt.body)
		})
	}
}

func TestFormatter_classifyBucket_importsAndOpaque(t *testing.T) {
	req := require.New(t)
	g := New(FormatterConfig{})

	imp := Statement{Body: "import { x } from './x';", IsImport: true}
	req.Equal(BucketImports, g.classifyBucket(&imp))

	opaque := Statement{Body: "const broken = (", Opaque: true}
	req.Equal(BucketUnclassified, g.classifyBucket(&opaque))
}
