package formatter

import (
	"fmt"
	"strings"

	"github.com/siyuan-infoblox/svelte-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/svelte-imports-group/pkg/svelte"
)

// FormatScript rewrites the leading import block of a plain script file into
// canonical order and leaves the remainder of the file untouched. A file
// with no leading imports passes through unchanged.
func (g *formatter) FormatScript(src string) (string, error) {
	out := g.formatScriptOnce(src)
	if out == src {
		return src, nil
	}
	if err := verifyIdempotent(func(s string) (string, error) {
		return g.formatScriptOnce(s), nil
	}, out); err != nil {
		return "", err
	}
	return out, nil
}

func (g *formatter) formatScriptOnce(src string) string {
	statements := ExtractStatements(src)

	n := 0
	for _, st := range statements {
		if !st.IsImport {
			break
		}
		n++
	}
	if n == 0 {
		return src
	}

	imports := append([]Statement{}, statements[:n]...)
	g.sortImports(imports)
	block := emitGroups(groupImportsByCategory(imports))

	lines := strings.Split(src, "\n")
	tail := strings.Join(lines[statements[n-1].EndLine+1:], "\n")
	tail = strings.TrimLeft(tail, "\n")
	if strings.TrimSpace(tail) == "" {
		return block + "\n"
	}
	return block + "\n\n" + tail
}

// FormatComponent rewrites every script block of a Svelte component so its
// preamble follows the canonical bucket order. Content outside the script
// elements is left byte-identical.
func (g *formatter) FormatComponent(src string) (string, error) {
	out, err := g.formatComponentOnce(src)
	if err != nil {
		return "", err
	}
	if out == src {
		return src, nil
	}
	if err := verifyIdempotent(g.formatComponentOnce, out); err != nil {
		return "", err
	}
	return out, nil
}

func (g *formatter) formatComponentOnce(src string) (string, error) {
	blocks, err := svelte.FindScriptBlocks(src)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToLocateScript, err)
	}
	if len(blocks) == 0 {
		return src, nil
	}

	// splice back to front so earlier offsets stay valid
	out := src
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		content := out[b.ContentStart:b.ContentEnd]
		formatted := g.formatPreamble(content)
		out = out[:b.ContentStart] + formatted + out[b.ContentEnd:]
	}
	return out, nil
}

// formatPreamble runs the full preamble pipeline over one script block's
// content: extract, partition into buckets, nested import sub-sort, emit.
func (g *formatter) formatPreamble(content string) string {
	statements := ExtractStatements(content)
	if len(statements) == 0 {
		return content
	}
	buckets := g.partitionPreamble(statements)
	return "\n" + emitGroups(g.preambleGroups(buckets)) + "\n"
}
