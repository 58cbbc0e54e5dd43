package formatter

// partitionPreamble performs the stable partition of a component preamble:
// every statement goes to exactly one bucket, intra-bucket order is the
// original statement order, and the import bucket gets the nested import
// sub-sort. Reactive statements and lifecycle hooks keep their original
// order unconditionally; their real-world semantics depend on execution
// sequence.
func (g *formatter) partitionPreamble(statements []Statement) [][]Statement {
	buckets := make([][]Statement, bucketCount)
	for _, st := range statements {
		st.Bucket = g.classifyBucket(&st)
		buckets[st.Bucket] = append(buckets[st.Bucket], st)
	}
	g.sortImports(buckets[BucketImports])
	return buckets
}

// preambleGroups flattens buckets into emission groups in canonical order,
// expanding the import bucket into its category runs so imports keep their
// blank-line separation inside components as well.
func (g *formatter) preambleGroups(buckets [][]Statement) [][]Statement {
	var groups [][]Statement
	groups = append(groups, groupImportsByCategory(buckets[BucketImports])...)
	for b := int(BucketProps); b < bucketCount; b++ {
		groups = append(groups, buckets[b])
	}
	return groups
}
