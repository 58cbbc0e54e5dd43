package std

import "strings"

// BuiltinModules contains the module names supplied by the Node.js runtime.
// Subpath imports (e.g. "fs/promises") are resolved against the first path
// segment.
var BuiltinModules = map[string]bool{
	"assert":              true,
	"async_hooks":         true,
	"buffer":              true,
	"child_process":       true,
	"cluster":             true,
	"console":             true,
	"constants":           true,
	"crypto":              true,
	"dgram":               true,
	"diagnostics_channel": true,
	"dns":                 true,
	"domain":              true,
	"events":              true,
	"fs":                  true,
	"http":                true,
	"http2":               true,
	"https":               true,
	"inspector":           true,
	"module":              true,
	"net":                 true,
	"os":                  true,
	"path":                true,
	"perf_hooks":          true,
	"process":             true,
	"punycode":            true,
	"querystring":         true,
	"readline":            true,
	"repl":                true,
	"stream":              true,
	"string_decoder":      true,
	"timers":              true,
	"tls":                 true,
	"trace_events":        true,
	"tty":                 true,
	"url":                 true,
	"util":                true,
	"v8":                  true,
	"vm":                  true,
	"wasi":                true,
	"worker_threads":      true,
	"zlib":                true,
}

// IsBuiltinModule checks if a module path refers to a Node.js builtin.
// The "node:" scheme always marks a builtin; bare names are matched by their
// first path segment.
func IsBuiltinModule(modulePath string) bool {
	if modulePath == "" {
		return false
	}
	if strings.HasPrefix(modulePath, "node:") {
		return true
	}
	root := modulePath
	if i := strings.Index(modulePath, "/"); i >= 0 {
		root = modulePath[:i]
	}
	return BuiltinModules[root]
}
