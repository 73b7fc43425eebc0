package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	code := Generate(6)
	assert.Equal(t, 6, len(code))
	assert.Regexp(t, regexp.MustCompile(`^[A-HJ-KM-NP-Z2-9]{6}$`), code)

	assert.NotEqual(t, code, Generate(6))
}
