package formatter

import "sort"

// sortImports classifies and orders import statements by (category ordinal,
// module path). Path comparison is byte-wise, no collation, so the result is
// a pure function of the input text. The sort is stable: equal keys keep
// their original relative order.
func (g *formatter) sortImports(imports []Statement) {
	for i := range imports {
		imports[i].Category = g.classifyImport(&imports[i])
	}
	sort.SliceStable(imports, func(i, j int) bool {
		if imports[i].Category != imports[j].Category {
			return imports[i].Category < imports[j].Category
		}
		return imports[i].ModulePath < imports[j].ModulePath
	})
}

// groupImportsByCategory splits an already-sorted import list into runs of
// equal category, for blank-line separation on emit.
func groupImportsByCategory(imports []Statement) [][]Statement {
	var groups [][]Statement
	for _, st := range imports {
		if n := len(groups); n > 0 && groups[n-1][0].Category == st.Category {
			groups[n-1] = append(groups[n-1], st)
			continue
		}
		groups = append(groups, []Statement{st})
	}
	return groups
}
