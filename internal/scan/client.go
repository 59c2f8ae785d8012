package scan

import "context"

// StorageClient is the unauthenticated storage surface the engine works
// through. Implementations must return *StorageError for classifiable
// failures so probes can tell a refusal from a network fault.
type StorageClient interface {
	// List returns every object under prefix. An empty result with a nil
	// error is a successful listing.
	List(ctx context.Context, bucket, prefix, region string) ([]Object, error)

	// Put uploads payload to key.
	Put(ctx context.Context, bucket, key, region string, payload []byte) error

	// Delete removes key. Callers treat failure as non-fatal.
	Delete(ctx context.Context, bucket, key, region string) error
}
