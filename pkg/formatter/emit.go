package formatter

import (
	"fmt"
	"strings"

	"github.com/siyuan-infoblox/svelte-imports-group/pkg/errors"
)

// emitGroups re-serializes ordered statements using each record's verbatim
// text, with exactly one blank line between non-empty groups. Empty groups
// contribute nothing, so the separator whitespace is fully normalized.
func emitGroups(groups [][]Statement) string {
	var parts []string
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		lines := make([]string, 0, len(group))
		for _, st := range group {
			lines = append(lines, st.Raw)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// verifyIdempotent reapplies a pipeline to its own output and demands a
// fixed point. A difference is a defect in the classifier or sorter, never
// in the input, so it surfaces as a hard error instead of possibly-incorrect
// output being written.
func verifyIdempotent(format func(string) (string, error), out string) error {
	again, err := format(out)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgIdempotencyViolation, err)
	}
	if again != out {
		return fmt.Errorf("%s", errors.ErrMsgIdempotencyViolation)
	}
	return nil
}
