package main

import (
	"os"

	"github.com/arthur-debert/filesort/cmd/filesort"
)

func main() {
	rootCmd := filesort.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		filesort.ReportError(rootCmd, os.Stderr, err)
		os.Exit(1)
	}
}
