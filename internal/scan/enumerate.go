package scan

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Enumerate lists every object in the bucket and derives the inventory
// totals. Records the listing returned in a shape we cannot use (empty key,
// negative size) are skipped individually: a partial inventory the operator
// can reason about beats aborting the whole scan. A failed listing is fatal
// to the caller since nothing downstream is meaningful without it.
func Enumerate(ctx context.Context, client StorageClient, logger *zap.Logger, bucket, region string) (Inventory, error) {
	listed, err := client.List(ctx, bucket, "", region)
	if err != nil {
		return Inventory{}, fmt.Errorf("enumerating s3://%s: %w", bucket, err)
	}

	objects := make([]Object, 0, len(listed))
	for _, obj := range listed {
		// A leading separator would put the object in a folder with an
		// empty name, which no storage tool produces for real content.
		if obj.Key == "" || strings.HasPrefix(obj.Key, "/") || obj.Size < 0 {
			logger.Debug("skipping malformed listing record",
				zap.String("key", obj.Key),
				zap.Int64("size", obj.Size))
			continue
		}
		objects = append(objects, obj)
	}
	return NewInventory(objects), nil
}
