package scan

import (
	"context"
	"crypto/rand"

	"go.uber.org/zap"
)

const (
	canaryNameLength = 8
	canarySuffix     = ".txt"
	canaryPayload    = "bucketlens write-access probe, safe to delete\n"
)

// ProbePermissions checks anonymous read and write capability on one
// top-level folder. The probes are independent and both always run: a denied
// read never suppresses the write attempt, so write-only exposure is still
// reported.
//
// The write probe uploads a canary object under a random name and removes it
// again once the outcome is known. Cleanup is best effort; a failed delete is
// logged but does not downgrade the result, since the capability was already
// proven.
func ProbePermissions(ctx context.Context, client StorageClient, logger *zap.Logger, bucket, folder, region string) PermissionResult {
	res := PermissionResult{Folder: folder}
	prefix := folder + "/"

	if _, err := client.List(ctx, bucket, prefix, region); err == nil {
		res.CanRead = true
	} else {
		logger.Debug("read probe refused",
			zap.String("folder", folder),
			zap.Stringer("kind", Kind(err)),
			zap.Error(err))
	}

	key := prefix + canaryName()
	if err := client.Put(ctx, bucket, key, region, []byte(canaryPayload)); err != nil {
		// Nothing was created, so there is nothing to clean up.
		logger.Debug("write probe refused",
			zap.String("folder", folder),
			zap.Stringer("kind", Kind(err)),
			zap.Error(err))
		return res
	}
	res.CanWrite = true

	if err := client.Delete(ctx, bucket, key, region); err != nil {
		logger.Warn("canary cleanup failed, object left behind",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.Error(err))
	}
	return res
}

// canaryName returns a fixed-length random alphanumeric filename. Randomness
// keeps a probe from ever clobbering real content, and gives concurrent
// probes disjoint keys without shared state.
func canaryName() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	buf := make([]byte, canaryNameLength)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf) + canarySuffix
}
