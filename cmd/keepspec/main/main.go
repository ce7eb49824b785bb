package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/keepspec/cmd/keepspec"
	"github.com/arthur-debert/keepspec/pkg/ui"
)

func main() {
	rootCmd := keepspec.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError(ui.DetectFormat(os.Stderr), err))
		os.Exit(1)
	}
}
