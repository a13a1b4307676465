package gsm0502

import (
	"fmt"
	"runtime"
)

// Can't be "assert" because of conflicts with stretchr/testify/assert, but otherwise, it's compatible enough.
// Traps contract violations by the caller.
func Assert(t bool) {
	if !t {
		_, file, line, _ := runtime.Caller(1)
		panic(fmt.Sprintf("Assertion failed at %s:%d", file, line))
	}
}
