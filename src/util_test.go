package gsm0502

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true) })

	defer func() {
		var r = recover()
		assert.Contains(t, r, "Assertion failed at ")
		assert.Contains(t, r, "util_test.go:")
	}()
	Assert(false)
}
