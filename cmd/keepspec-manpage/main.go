package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/keepspec/cmd/keepspec"
	"github.com/arthur-debert/keepspec/internal/version"
)

func main() {
	rootCmd := keepspec.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "KEEPSPEC",
		Section: "1",
		Source:  "keepspec " + version.Version,
		Manual:  "keepspec manual",
	}

	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := doc.GenManTree(rootCmd, header, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}
}
