// Command ore rolls One Roll Engine pools from the terminal using the same
// interpreter, parser and templates as the server.
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
