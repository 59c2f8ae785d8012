package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bucketlens.dev/bucketlens/internal/scan"
)

func NewRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the candidate regions used for auto-detection, in probe order",
		Run: func(cmd *cobra.Command, args []string) {
			for _, region := range scan.DefaultRegions {
				fmt.Println(region)
			}
		},
	}
}
