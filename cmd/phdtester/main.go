// Command phdtester enumerates the compliant test contexts of a declared
// experiment and drives an external program through each of them,
// implementing the CLI surface described in spec.md §6.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
