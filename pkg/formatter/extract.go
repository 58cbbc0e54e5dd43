package formatter

import (
	"regexp"
	"strings"
)

// lineScanner tracks the lexical state that can carry across lines: bracket
// depth, template literals and block comments. Single- and double-quoted
// strings terminate at end of line.
type lineScanner struct {
	depth          int
	inTemplate     bool
	inBlockComment bool
}

// scan consumes one line and returns the code portion of the line with
// comments stripped, for statement-termination checks.
func (s *lineScanner) scan(line string) string {
	var code strings.Builder
	i := 0
	for i < len(line) {
		c := line[i]

		if s.inBlockComment {
			if c == '*' && i+1 < len(line) && line[i+1] == '/' {
				s.inBlockComment = false
				i += 2
				continue
			}
			i++
			continue
		}

		if s.inTemplate {
			if c == '\\' {
				i += 2
				continue
			}
			if c == '`' {
				s.inTemplate = false
			}
			i++
			continue
		}

		switch c {
		case '/':
			if i+1 < len(line) {
				switch line[i+1] {
				case '/':
					return code.String() // rest of line is a comment
				case '*':
					s.inBlockComment = true
					i += 2
					continue
				}
			}
		case '\'', '"':
			// quoted strings do not span lines
			quote := c
			code.WriteByte(c)
			i++
			for i < len(line) {
				if line[i] == '\\' {
					code.WriteByte(line[i])
					if i+1 < len(line) {
						code.WriteByte(line[i+1])
					}
					i += 2
					continue
				}
				code.WriteByte(line[i])
				if line[i] == quote {
					i++
					break
				}
				i++
			}
			continue
		case '`':
			s.inTemplate = true
			code.WriteByte(c)
			i++
			continue
		case '(', '[', '{':
			s.depth++
		case ')', ']', '}':
			s.depth--
		}

		code.WriteByte(c)
		i++
	}
	return code.String()
}

// continuationSuffixes mark a line whose statement must continue on the next
// line even though all brackets are balanced.
var continuationSuffixes = []string{
	"=>", "&&", "||", "??",
	",", "=", ":", "?", "+", "-", "*", "/", "%", "&", "|", "<", ">", ".",
}

func endsWithContinuation(code string) bool {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return false
	}
	for _, suffix := range continuationSuffixes {
		if strings.HasSuffix(trimmed, suffix) {
			return true
		}
	}
	return false
}

// startsWithContinuation reports whether a line can only continue the
// previous statement (method chains, ternary branches).
func startsWithContinuation(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	switch trimmed[0] {
	case '.', '?', ':':
		return true
	}
	return false
}

// ExtractStatements splits a script block into top-level statements.
// Statement boundaries are found without evaluating expressions: the scanner
// only tracks bracket depth, strings and comments. Comment lines attach to
// the statement that follows them. Text without a clean boundary is emitted
// as an opaque record so no input is ever dropped.
func ExtractStatements(src string) []Statement {
	lines := strings.Split(src, "\n")

	var (
		statements []Statement
		pending    []string // comment lines waiting for their statement
		current    []string
		scanner    lineScanner
		lastCode   string
		startLine  = -1
	)

	flush := func(endLine int, opaque bool) {
		if len(current) == 0 {
			return
		}
		raw := strings.Join(append(append([]string{}, pending...), current...), "\n")
		body := strings.Join(current, "\n")
		statements = append(statements, Statement{
			Raw:           raw,
			Body:          body,
			OriginalIndex: len(statements),
			StartLine:     startLine,
			EndLine:       endLine,
			Opaque:        opaque,
		})
		pending = nil
		current = nil
		startLine = -1
	}

	mark := func(i int) {
		if startLine < 0 {
			startLine = i
		}
	}

	nextNonBlank := func(from int) string {
		for j := from; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) != "" {
				return lines[j]
			}
		}
		return ""
	}

	inStatement := false
	inPendingComment := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inPendingComment {
			pending = append(pending, line)
			scanner.scan(line)
			if !scanner.inBlockComment {
				inPendingComment = false
			}
			continue
		}

		if !inStatement {
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "//") {
				mark(i)
				pending = append(pending, line)
				continue
			}
			if strings.HasPrefix(trimmed, "/*") {
				code := scanner.scan(line)
				if scanner.inBlockComment {
					mark(i)
					pending = append(pending, line)
					inPendingComment = true
					continue
				}
				if strings.TrimSpace(code) == "" {
					mark(i)
					pending = append(pending, line)
					continue
				}
				// comment closed and code follows on the same line
				mark(i)
				current = append(current, line)
				inStatement = true
				lastCode = code
			} else {
				mark(i)
				current = append(current, line)
				inStatement = true
				lastCode = scanner.scan(line)
			}
		} else {
			current = append(current, line)
			lastCode = scanner.scan(line)
		}

		if scanner.inBlockComment || scanner.inTemplate || scanner.depth > 0 {
			continue
		}
		if endsWithContinuation(lastCode) || startsWithContinuation(nextNonBlank(i+1)) {
			continue
		}
		inStatement = false
		flush(i, false)
	}

	// leftover text with no clean boundary; trailing blank lines are
	// separator whitespace, not statement text
	if inStatement {
		for len(current) > 0 && strings.TrimSpace(current[len(current)-1]) == "" {
			current = current[:len(current)-1]
		}
		flush(len(lines)-1, true)
	} else if len(pending) > 0 {
		// trailing comments with no statement to attach to
		current = pending
		pending = nil
		flush(len(lines)-1, true)
	}

	for i := range statements {
		parseImport(&statements[i])
	}
	return statements
}

var (
	importPathRe    = regexp.MustCompile(`\bfrom\s*['"]([^'"]*)['"]`)
	bareImportRe    = regexp.MustCompile(`^import\s*['"]([^'"]*)['"]`)
	typeImportRe    = regexp.MustCompile(`^import\s+type\b`)
	typeReExportRe  = regexp.MustCompile(`^export\s+type\b`)
	importStartRe   = regexp.MustCompile(`^import\b`)
	reExportStartRe = regexp.MustCompile(`^export\s+(type\s+)?[*{]`)
)

// parseImport fills the import attributes of a statement. Re-exports with a
// module source are import-like and sort with the imports.
func parseImport(st *Statement) {
	if st.Opaque {
		return
	}
	body := strings.TrimSpace(st.Body)

	switch {
	case importStartRe.MatchString(body):
		st.IsImport = true
		st.TypeOnly = typeImportRe.MatchString(body)
	case reExportStartRe.MatchString(body) && importPathRe.MatchString(body):
		st.IsImport = true
		st.TypeOnly = typeReExportRe.MatchString(body)
	default:
		return
	}

	if m := importPathRe.FindStringSubmatch(body); m != nil {
		st.ModulePath = m[1]
	} else if m := bareImportRe.FindStringSubmatch(body); m != nil {
		st.ModulePath = m[1]
	}
}
