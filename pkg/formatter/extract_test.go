package formatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractStatements_singleLine(t *testing.T) {
	req := require.New(t)

	src := "import { a } from 'a'\nconst x = 1\nlet y = 2\n"
	statements := ExtractStatements(src)

	req.Len(statements, 3)
	req.Equal("import { a } from 'a'", statements[0].Raw)
	req.Equal("const x = 1", statements[1].Raw)
	req.Equal("let y = 2", statements[2].Raw)
	for i, st := range statements {
		req.Equal(i, st.OriginalIndex)
		req.False(st.Opaque)
	}
}

func TestExtractStatements_multiLineImport(t *testing.T) {
	req := require.New(t)

	src := "import {\n\talpha,\n\tbeta,\n} from 'mod'\nconst x = 1\n"
	statements := ExtractStatements(src)

	req.Len(statements, 2)
	req.Equal("import {\n\talpha,\n\tbeta,\n} from 'mod'", statements[0].Raw)
	req.True(statements[0].IsImport)
	req.Equal("mod", statements[0].ModulePath)
	req.Equal(0, statements[0].StartLine)
	req.Equal(3, statements[0].EndLine)
}

func TestExtractStatements_commentsAttach(t *testing.T) {
	req := require.New(t)

	src := "// explains the import\nimport { a } from 'a'\n\n/* block\n   comment */\nconst x = 1\n"
	statements := ExtractStatements(src)

	req.Len(statements, 2)
	req.Equal("// explains the import\nimport { a } from 'a'", statements[0].Raw)
	req.Equal("import { a } from 'a'", statements[0].Body)
	req.Equal("/* block\n   comment */\nconst x = 1", statements[1].Raw)
	req.Equal("const x = 1", statements[1].Body)
}

func TestExtractStatements_templateLiteral(t *testing.T) {
	req := require.New(t)

	src := "const style = `\n\tcolor: ${color};\n`\nlet other = 1\n"
	statements := ExtractStatements(src)

	req.Len(statements, 2)
	req.Equal("const style = `\n\tcolor: ${color};\n`", statements[0].Raw)
	req.Equal("let other = 1", statements[1].Raw)
}

func TestExtractStatements_continuationLines(t *testing.T) {
	req := require.New(t)

	src := "const total =\n\ta + b\nconst chained = fetch(url)\n\t.then(parse)\nlet done = true\n"
	statements := ExtractStatements(src)

	req.Len(statements, 3)
	req.Equal("const total =\n\ta + b", statements[0].Raw)
	req.Equal("const chained = fetch(url)\n\t.then(parse)", statements[1].Raw)
	req.Equal("let done = true", statements[2].Raw)
}

func TestExtractStatements_functionBody(t *testing.T) {
	req := require.New(t)

	src := "function greet(name) {\n\tif (name) {\n\t\treturn `hi ${name}`\n\t}\n\treturn 'hi'\n}\nconst after = 1\n"
	statements := ExtractStatements(src)

	req.Len(statements, 2)
	req.Contains(statements[0].Raw, "function greet(name) {")
	req.Contains(statements[0].Raw, "return 'hi'")
	req.Equal("const after = 1", statements[1].Raw)
}

func TestExtractStatements_opaqueTail(t *testing.T) {
	req := require.New(t)

	src := "const ok = 1\nconst broken = (\n"
	statements := ExtractStatements(src)

	req.Len(statements, 2)
	req.False(statements[0].Opaque)
	req.True(statements[1].Opaque)
	req.Equal("const broken = (", statements[1].Raw)
}

func TestExtractStatements_trailingComment(t *testing.T) {
	req := require.New(t)

	src := "const ok = 1\n// a trailing remark\n"
	statements := ExtractStatements(src)

	req.Len(statements, 2)
	req.True(statements[1].Opaque)
	req.Equal("// a trailing remark", statements[1].Raw)
}

func TestExtractStatements_empty(t *testing.T) {
	req := require.New(t)

	req.Empty(ExtractStatements(""))
	req.Empty(ExtractStatements("\n\n\t\n"))
}

func TestParseImport(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name       string
		body       string
		wantImport bool
		wantType   bool
		wantPath   string
	}{
		{"named value import", "import { z } from 'zod'", true, false, "zod"},
		{"default import", "import App from './App.svelte'", true, false, "./App.svelte"},
		{"namespace import", "import * as path from 'node:path'", true, false, "node:path"},
		{"type import", "import type { User } from '@models/user'", true, true, "@models/user"},
		{"side-effect import", "import './global.css'", true, false, "./global.css"},
		{"double-quoted path", `import { x } from "pkg"`, true, false, "pkg"},
		{"re-export", "export { helper } from './helpers'", true, false, "./helpers"},
		{"star re-export", "export * from './api'", true, false, "./api"},
		{"type re-export", "export type { Shape } from './shapes'", true, true, "./shapes"},
		{"local export is not an import", "export const x = 1", false, false, ""},
		{"local star-free export", "export { x }", false, false, ""},
		{"plain statement", "const from = 'x'", false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Statement{Raw: tt.body, Body: tt.body}
			parseImport(&st)
			req.Equal(tt.wantImport, st.IsImport, "IsImport for %q", tt.body)
			req.Equal(tt.wantType, st.TypeOnly, "TypeOnly for %q", tt.body)
			req.Equal(tt.wantPath, st.ModulePath, "ModulePath for %q", tt.body)
		})
	}
}
