package scan

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStorage struct {
	listFunc   func(ctx context.Context, bucket, prefix, region string) ([]Object, error)
	putFunc    func(ctx context.Context, bucket, key, region string, payload []byte) error
	deleteFunc func(ctx context.Context, bucket, key, region string) error
}

func (m *mockStorage) List(ctx context.Context, bucket, prefix, region string) ([]Object, error) {
	return m.listFunc(ctx, bucket, prefix, region)
}

func (m *mockStorage) Put(ctx context.Context, bucket, key, region string, payload []byte) error {
	return m.putFunc(ctx, bucket, key, region, payload)
}

func (m *mockStorage) Delete(ctx context.Context, bucket, key, region string) error {
	return m.deleteFunc(ctx, bucket, key, region)
}

func deniedErr(op string) error {
	return &StorageError{Op: op, Kind: KindAccessDenied, Err: errors.New("access denied")}
}

func notFoundErr(op string) error {
	return &StorageError{Op: op, Kind: KindNotFound, Err: errors.New("no such bucket")}
}

func transportErr(op string) error {
	return &StorageError{Op: op, Kind: KindTransport, Err: errors.New("connection reset")}
}

// scenarioObjects is the canonical three-folder bucket used across tests.
func scenarioObjects() []Object {
	mod := time.Date(2025, 3, 27, 15, 48, 38, 0, time.UTC)
	return []Object{
		{Key: "docs/a.txt", Size: 500, LastModified: mod},
		{Key: "public/readme.md", Size: 0, LastModified: mod},
		{Key: "logs/2024/x.log", Size: 5_000_000, LastModified: mod},
	}
}

// scenarioStorage serves scenarioObjects with read allowed everywhere and
// write allowed only under logs/.
func scenarioStorage() *mockStorage {
	return &mockStorage{
		listFunc: func(ctx context.Context, bucket, prefix, region string) ([]Object, error) {
			if prefix == "" {
				return scenarioObjects(), nil
			}
			return nil, nil
		},
		putFunc: func(ctx context.Context, bucket, key, region string, payload []byte) error {
			if strings.HasPrefix(key, "logs/") {
				return nil
			}
			return deniedErr("PutObject")
		},
		deleteFunc: func(ctx context.Context, bucket, key, region string) error {
			return nil
		},
	}
}

func TestScannerRun_Scenario(t *testing.T) {
	scanner := &Scanner{Client: scenarioStorage()}

	report, err := scanner.Run(context.Background(), "target-bucket", "us-east-1")
	require.NoError(t, err)

	assert.Equal(t, "target-bucket", report.Bucket)
	assert.Equal(t, "us-east-1", report.Region)
	assert.Equal(t, 3, report.Inventory.TotalCount)
	assert.Equal(t, int64(5_000_500), report.Inventory.TotalSizeBytes)

	require.Len(t, report.Folders, 3)
	assert.Equal(t, []string{"docs", "logs", "public"}, report.FolderNames())

	require.Len(t, report.Permissions, 3)
	assert.Equal(t, PermissionResult{Folder: "docs", CanRead: true}, report.Permissions["docs"])
	assert.Equal(t, PermissionResult{Folder: "public", CanRead: true}, report.Permissions["public"])
	assert.Equal(t, PermissionResult{Folder: "logs", CanRead: true, CanWrite: true}, report.Permissions["logs"])
}

func TestScannerRun_FolderAndPermissionKeySetsMatch(t *testing.T) {
	scanner := &Scanner{Client: scenarioStorage()}

	report, err := scanner.Run(context.Background(), "target-bucket", "us-east-1")
	require.NoError(t, err)

	for folder := range report.Folders {
		assert.Contains(t, report.Permissions, folder)
	}
	for folder := range report.Permissions {
		assert.Contains(t, report.Folders, folder)
	}
}

func TestScannerRun_EmptyBucketSkipsProbes(t *testing.T) {
	mock := &mockStorage{
		listFunc: func(ctx context.Context, bucket, prefix, region string) ([]Object, error) {
			if prefix != "" {
				t.Errorf("unexpected read probe on prefix %q for an empty bucket", prefix)
			}
			return nil, nil
		},
		putFunc: func(ctx context.Context, bucket, key, region string, payload []byte) error {
			t.Errorf("unexpected write probe on key %q for an empty bucket", key)
			return nil
		},
		deleteFunc: func(ctx context.Context, bucket, key, region string) error {
			t.Errorf("unexpected delete of key %q for an empty bucket", key)
			return nil
		},
	}
	scanner := &Scanner{Client: mock}

	report, err := scanner.Run(context.Background(), "empty-bucket", "us-east-1")
	require.NoError(t, err)
	assert.Equal(t, 0, report.Inventory.TotalCount)
	assert.Empty(t, report.Folders)
	assert.Empty(t, report.Permissions)
}

func TestScannerRun_RegionResolutionFailureAbortsBeforeEnumeration(t *testing.T) {
	var listCalls int
	mock := &mockStorage{
		listFunc: func(ctx context.Context, bucket, prefix, region string) ([]Object, error) {
			listCalls++
			return nil, notFoundErr("ListObjectsV2")
		},
	}
	scanner := &Scanner{Client: mock, Candidates: []string{"us-east-1", "eu-west-1"}}

	_, err := scanner.Run(context.Background(), "hidden-bucket", "")
	require.ErrorIs(t, err, ErrRegionNotFound)
	// One listing per candidate and nothing more: no enumeration happened.
	assert.Equal(t, 2, listCalls)
}

func TestScannerRun_ResolvesRegionWhenUnset(t *testing.T) {
	mock := scenarioStorage()
	base := mock.listFunc
	mock.listFunc = func(ctx context.Context, bucket, prefix, region string) ([]Object, error) {
		if prefix == "" && region != "eu-central-1" {
			return nil, notFoundErr("ListObjectsV2")
		}
		return base(ctx, bucket, prefix, region)
	}
	scanner := &Scanner{Client: mock, Candidates: []string{"us-east-1", "eu-central-1"}}

	report, err := scanner.Run(context.Background(), "target-bucket", "")
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", report.Region)
	assert.Equal(t, 3, report.Inventory.TotalCount)
}

func TestScannerRun_FilterRestrictsInventory(t *testing.T) {
	scanner := &Scanner{
		Client: scenarioStorage(),
		Filter: glob.MustCompile("docs/*"),
	}

	report, err := scanner.Run(context.Background(), "target-bucket", "us-east-1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inventory.TotalCount)
	assert.Equal(t, int64(500), report.Inventory.TotalSizeBytes)
	assert.Equal(t, []string{"docs"}, report.FolderNames())
	require.Len(t, report.Permissions, 1)
}

func TestScannerRun_ParallelProbesCoverEveryFolder(t *testing.T) {
	var mu sync.Mutex
	objects := []Object{
		{Key: "a/1", Size: 1}, {Key: "b/1", Size: 1}, {Key: "c/1", Size: 1},
		{Key: "d/1", Size: 1}, {Key: "e/1", Size: 1}, {Key: "f/1", Size: 1},
	}
	probed := map[string]int{}
	mock := &mockStorage{
		listFunc: func(ctx context.Context, bucket, prefix, region string) ([]Object, error) {
			if prefix == "" {
				return objects, nil
			}
			mu.Lock()
			probed[prefix]++
			mu.Unlock()
			return nil, nil
		},
		putFunc: func(ctx context.Context, bucket, key, region string, payload []byte) error {
			return deniedErr("PutObject")
		},
		deleteFunc: func(ctx context.Context, bucket, key, region string) error {
			return nil
		},
	}
	scanner := &Scanner{Client: mock, Workers: 3}

	report, err := scanner.Run(context.Background(), "wide-bucket", "us-east-1")
	require.NoError(t, err)
	require.Len(t, report.Permissions, 6)
	for _, folder := range []string{"a", "b", "c", "d", "e", "f"} {
		assert.Equal(t, 1, probed[folder+"/"], "folder %s should be probed exactly once", folder)
		assert.True(t, report.Permissions[folder].CanRead)
		assert.False(t, report.Permissions[folder].CanWrite)
	}
}

func TestScannerRun_ProgressCallbacks(t *testing.T) {
	var foldersFound int
	var probed []string
	scanner := &Scanner{Client: scenarioStorage()}
	scanner.OnFoldersFound = func(n int) { foldersFound = n }
	scanner.OnFolderProbed = func(folder string, result PermissionResult) {
		probed = append(probed, folder)
	}

	_, err := scanner.Run(context.Background(), "target-bucket", "us-east-1")
	require.NoError(t, err)
	assert.Equal(t, 3, foldersFound)
	assert.Equal(t, []string{"docs", "logs", "public"}, probed)
}
