package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "react", NormalizeName("React"))
	assert.Equal(t, "node.js", NormalizeName("  Node.js "))
	assert.Equal(t, "c++", NormalizeName("C++"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, "beginner", NormalizeLevel("Beginner"))
	assert.Equal(t, "expert", NormalizeLevel(" EXPERT "))
}
