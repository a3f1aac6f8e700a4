package shortid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z0-9]+$`)
	for _, n := range []int{EventSuffixLength, ShortLinkLength, 16} {
		id := New(n)
		require.Len(t, id, n)
		assert.Regexp(t, pattern, id)
	}
}

func TestNewIsNotConstant(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[New(ShortLinkLength)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestNewCoversWholeAlphabet(t *testing.T) {
	// With ~7000 uniform draws every one of the 62 characters shows up;
	// a generator biased against the alphabet tail would miss some.
	seen := map[rune]bool{}
	for i := 0; i < 1000; i++ {
		for _, r := range New(ShortLinkLength) {
			seen[r] = true
		}
	}
	assert.Len(t, seen, 62)
}
