// Command cayley classifies finite structures given by Cayley tables.
//
//	cayley analyze ring.yaml
//	cayley generate mod 6 | cayley analyze -
//	cayley serve --addr :8080
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
