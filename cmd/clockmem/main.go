// Command clockmem simulates clocked memory primitives.
package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	defer atexit.Exit(0)

	Execute()
}
