package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFormat(t *testing.T) {
	s := Generate("Hello World")

	assert.True(t, strings.HasPrefix(s, "Hello-World-"), "spaces become hyphens, case is preserved")
	suffix := strings.TrimPrefix(s, "Hello-World-")
	assert.Len(t, suffix, suffixLength)
	for _, r := range suffix {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerateKeepsTitleCase(t *testing.T) {
	s := Generate("MiXeD Case Title")
	assert.True(t, strings.HasPrefix(s, "MiXeD-Case-Title-"))
}

func TestGenerateDistinctForIdenticalTitles(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		s := Generate("Post")
		_, dup := seen[s]
		assert.False(t, dup, "slug %q generated twice", s)
		seen[s] = struct{}{}
	}
}
