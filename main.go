package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bucketlens.dev/bucketlens/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bucketlens",
		Short: "Audit anonymous access exposure of S3 buckets",
	}

	rootCmd.AddCommand(cmd.NewScanCmd())
	rootCmd.AddCommand(cmd.NewRegionsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
