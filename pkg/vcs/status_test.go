package vcs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePorcelain(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		output   string
		expected []string
	}{
		{
			name:     "modified in worktree",
			output:   " M src/App.svelte\n",
			expected: []string{"src/App.svelte"},
		},
		{
			name:     "staged and untracked",
			output:   "M  src/main.ts\n?? src/new.ts\n",
			expected: []string{"src/main.ts", "src/new.ts"},
		},
		{
			name:     "deleted files are excluded",
			output:   "D  gone.js\n M kept.js\n D also-gone.js\n",
			expected: []string{"kept.js"},
		},
		{
			name:     "rename contributes the new path",
			output:   "R  old/name.js -> new/name.js\n",
			expected: []string{"new/name.js"},
		},
		{
			name:     "quoted path",
			output:   " M \"with space.ts\"\n",
			expected: []string{"with space.ts"},
		},
		{
			name:     "empty output",
			output:   "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParsePorcelain(tt.output)
			req.Equal(tt.expected, result, "ParsePorcelain(%q)", tt.output)
		})
	}
}
