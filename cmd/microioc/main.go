// Command microioc boots the framework container and either serves its
// diagnostics endpoints or prints its entries.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "microioc: %v\n", err)
		os.Exit(1)
	}
}
