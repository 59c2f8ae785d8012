package scan

import "context"

// ResolveRegion determines which region serves an unauthenticated bucket by
// issuing one listing per candidate, in the given order, stopping at the
// first region whose listing succeeds. Candidates are tried strictly
// sequentially: parallel probing would race on "first success" and hammer a
// target that may already be rate-limiting us.
//
// Only a clean listing (even an empty one) is acceptance. Access-denied,
// not-found and transport failures all mean "not this region" and move
// resolution to the next candidate.
func ResolveRegion(ctx context.Context, client StorageClient, bucket string, candidates []string) (string, error) {
	for _, region := range candidates {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if _, err := client.List(ctx, bucket, "", region); err == nil {
			return region, nil
		}
	}
	return "", ErrRegionNotFound
}
