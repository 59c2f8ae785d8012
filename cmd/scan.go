package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gobwas/glob"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	awsclient "bucketlens.dev/bucketlens/internal/aws"
	awss3 "bucketlens.dev/bucketlens/internal/aws/s3"
	"bucketlens.dev/bucketlens/internal/config"
	"bucketlens.dev/bucketlens/internal/logger"
	"bucketlens.dev/bucketlens/internal/render"
	"bucketlens.dev/bucketlens/internal/scan"
)

func NewScanCmd() *cobra.Command {
	var (
		region     string
		workers    int
		htmlPath   string
		jsonOut    bool
		filter     string
		noColor    bool
		noProgress bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "scan <bucket>",
		Short: "Enumerate a bucket anonymously and probe per-folder access",
		Long: `Scan discovers the bucket's region (unless --region is given), lists every
object without credentials, and probes each top-level folder for anonymous
read and write access. Write probes upload a small random-named canary
object and delete it again.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket := args[0]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			region = cfg.MergeRegion(region)
			workers = cfg.MergeWorkers(workers)

			log, err := logger.New(verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer log.Sync()

			var keyFilter glob.Glob
			if filter != "" {
				keyFilter, err = glob.Compile(filter)
				if err != nil {
					return fmt.Errorf("invalid --filter pattern %q: %w", filter, err)
				}
			}

			ctx := context.Background()
			awsCfg, err := awsclient.LoadAnonymousConfig(ctx, region)
			if err != nil {
				return err
			}

			scanner := &scan.Scanner{
				Client:     awss3.NewFromConfig(awsCfg),
				Logger:     log,
				Candidates: cfg.Regions,
				Workers:    workers,
				Filter:     keyFilter,
			}

			var bar *progressbar.ProgressBar
			if !noProgress && !jsonOut {
				scanner.OnFoldersFound = func(n int) {
					bar = progressbar.NewOptions(n,
						progressbar.OptionSetWriter(os.Stderr),
						progressbar.OptionSetDescription("probing folders"),
						progressbar.OptionSetWidth(40),
						progressbar.OptionShowCount(),
						progressbar.OptionClearOnFinish(),
					)
				}
				scanner.OnFolderProbed = func(string, scan.PermissionResult) {
					if bar != nil {
						bar.Add(1)
					}
				}
			}

			report, err := scanner.Run(ctx, bucket, region)
			if bar != nil {
				bar.Finish()
			}
			if err != nil {
				return err
			}

			if jsonOut {
				out, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
				fmt.Println(string(out))
				return nil
			}

			if report.Inventory.TotalCount == 0 {
				fmt.Println("No objects found in bucket.")
				return nil
			}

			console := render.Console{Color: !noColor}
			fmt.Print(console.Render(report))

			if htmlPath != "" {
				f, err := os.Create(htmlPath)
				if err != nil {
					return fmt.Errorf("creating HTML report: %w", err)
				}
				defer f.Close()
				if err := render.WriteHTML(f, report); err != nil {
					return fmt.Errorf("writing HTML report: %w", err)
				}
				fmt.Printf("\nHTML report saved as %s\n", htmlPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "bucket region (default: auto-detect)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent folder probes (default: sequential)")
	cmd.Flags().StringVar(&htmlPath, "html", "", "write an HTML report to the given path")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&filter, "filter", "", "only audit keys matching this glob")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the probe progress bar")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
