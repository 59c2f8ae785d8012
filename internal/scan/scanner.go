package scan

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gobwas/glob"
	"go.uber.org/zap"
)

// Scanner drives a full bucket audit: region resolution, enumeration, folder
// classification and per-folder permission probes, assembled into a Report.
type Scanner struct {
	Client StorageClient
	Logger *zap.Logger

	// Candidates overrides the region candidate list used when no region is
	// supplied to Run. Nil means DefaultRegions.
	Candidates []string

	// Workers bounds how many folders are probed concurrently. Zero or one
	// keeps probing strictly sequential, the safe default against
	// rate-limited targets.
	Workers int

	// Filter, when set, restricts the audit to keys matching the glob.
	// Totals and folders reflect the filtered set.
	Filter glob.Glob

	// OnFoldersFound is called once with the number of folders about to be
	// probed. OnFolderProbed is called after each folder's probes finish;
	// with Workers > 1 the calls may arrive from multiple goroutines.
	OnFoldersFound func(n int)
	OnFolderProbed func(folder string, result PermissionResult)
}

// Run audits bucket and returns the finished report. An empty region
// triggers resolution against the candidate list. Region resolution and
// enumeration failures abort the run; permission probe failures only surface
// as false entries in the report.
func (s *Scanner) Run(ctx context.Context, bucket, region string) (*Report, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if region == "" {
		candidates := s.Candidates
		if candidates == nil {
			candidates = DefaultRegions
		}
		resolved, err := ResolveRegion(ctx, s.Client, bucket, candidates)
		if err != nil {
			return nil, fmt.Errorf("resolving region for s3://%s: %w", bucket, err)
		}
		region = resolved
		logger.Info("resolved bucket region",
			zap.String("bucket", bucket),
			zap.String("region", region))
	}

	inv, err := Enumerate(ctx, s.Client, logger, bucket, region)
	if err != nil {
		return nil, err
	}
	if s.Filter != nil {
		kept := make([]Object, 0, len(inv.Objects))
		for _, obj := range inv.Objects {
			if s.Filter.Match(obj.Key) {
				kept = append(kept, obj)
			}
		}
		inv = NewInventory(kept)
	}

	report := &Report{
		Bucket:      bucket,
		Region:      region,
		GeneratedAt: time.Now().UTC(),
		Inventory:   inv,
		Folders:     map[string][]Object{},
		Permissions: map[string]PermissionResult{},
	}
	if inv.TotalCount == 0 {
		// Nothing to report; probing folders that do not exist would only
		// produce noise against the target.
		return report, nil
	}

	report.Folders = GroupByFolder(inv.Objects)
	if s.OnFoldersFound != nil {
		s.OnFoldersFound(len(report.Folders))
	}
	report.Permissions = s.probeAll(ctx, logger, bucket, region, report.Folders)
	return report, nil
}

// probeAll produces a permission result for exactly the folder set it is
// given. Folders are handled in sorted order so request patterns stay
// deterministic.
func (s *Scanner) probeAll(ctx context.Context, logger *zap.Logger, bucket, region string, folders map[string][]Object) map[string]PermissionResult {
	names := make([]string, 0, len(folders))
	for name := range folders {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make(map[string]PermissionResult, len(names))

	if s.Workers <= 1 {
		for _, folder := range names {
			res := ProbePermissions(ctx, s.Client, logger, bucket, folder, region)
			results[folder] = res
			if s.OnFolderProbed != nil {
				s.OnFolderProbed(folder, res)
			}
		}
		return results
	}

	// Folders have no ordering dependency on each other, so fan out bounded
	// by Workers and merge under the lock.
	sem := make(chan struct{}, s.Workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, folder := range names {
		wg.Add(1)
		go func(folder string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				// Record a conservative result so the report's folder and
				// permission key sets still match.
				mu.Lock()
				results[folder] = PermissionResult{Folder: folder}
				mu.Unlock()
				return
			}
			defer func() { <-sem }()

			res := ProbePermissions(ctx, s.Client, logger, bucket, folder, region)
			mu.Lock()
			results[folder] = res
			mu.Unlock()
			if s.OnFolderProbed != nil {
				s.OnFolderProbed(folder, res)
			}
		}(folder)
	}
	wg.Wait()
	return results
}
