// Package svelte locates script elements inside component files. It is a
// boundary finder, not a markup parser: it only needs the byte spans of
// script content so the formatter can splice rewritten preambles back in.
package svelte

import (
	"fmt"
	"strings"
)

// Block is the content span of one script element within a component file.
type Block struct {
	ContentStart int  // byte offset just after the opening tag's '>'
	ContentEnd   int  // byte offset of the closing "</script>"
	Module       bool // context="module" script
}

const (
	openTag  = "<script"
	closeTag = "</script>"
)

// FindScriptBlocks returns the script content spans of a component, in
// document order. An opening tag without a matching close is an error: the
// file cannot be recognized as a well-formed component and must be skipped
// unchanged.
func FindScriptBlocks(src string) ([]Block, error) {
	var blocks []Block
	offset := 0
	for {
		start := strings.Index(src[offset:], openTag)
		if start < 0 {
			return blocks, nil
		}
		start += offset

		// reject tags like <scripting>
		rest := src[start+len(openTag):]
		if rest == "" {
			return nil, fmt.Errorf("unterminated script tag at byte %d", start)
		}
		if c := rest[0]; c != '>' && c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			offset = start + len(openTag)
			continue
		}

		tagEnd := findTagEnd(src, start+len(openTag))
		if tagEnd < 0 {
			return nil, fmt.Errorf("unterminated script tag at byte %d", start)
		}

		end := strings.Index(src[tagEnd:], closeTag)
		if end < 0 {
			return nil, fmt.Errorf("script block at byte %d has no closing tag", start)
		}
		end += tagEnd

		blocks = append(blocks, Block{
			ContentStart: tagEnd,
			ContentEnd:   end,
			Module:       strings.Contains(src[start:tagEnd], `context="module"`) || strings.Contains(src[start:tagEnd], "context='module'"),
		})
		offset = end + len(closeTag)
	}
}

// findTagEnd returns the offset just past the '>' that closes an opening
// tag, honoring quoted attribute values.
func findTagEnd(src string, from int) int {
	i := from
	for i < len(src) {
		switch src[i] {
		case '"', '\'':
			quote := src[i]
			i++
			for i < len(src) && src[i] != quote {
				i++
			}
			if i == len(src) {
				return -1
			}
		case '>':
			return i + 1
		}
		i++
	}
	return -1
}
