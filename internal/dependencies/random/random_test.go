package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntnStaysInRange(t *testing.T) {
	r := New()
	for range 200 {
		v := r.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
	assert.Equal(t, 0, r.Intn(0))
}

func TestStringUsesAlphabet(t *testing.T) {
	r := New()

	id := r.String(8, "AB")
	assert.Len(t, id, 8)
	assert.Empty(t, strings.Trim(id, "AB"))
	assert.Empty(t, r.String(0, "AB"))
	assert.Empty(t, r.String(4, ""))
}
