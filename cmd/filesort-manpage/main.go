package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/filesort/cmd/filesort"
)

func main() {
	rootCmd := filesort.NewRootCmd()

	err := doc.GenMan(rootCmd, filesort.ManHeader(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
