package main

import (
	"fmt"
	"os"

	"aggregat4/cspenv/cmd/cspenv/root"
)

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
