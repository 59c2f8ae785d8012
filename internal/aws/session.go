package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// fallbackRegion satisfies the SDK's need for a configured region before the
// bucket's real region is known; every call overrides it explicitly.
const fallbackRegion = "us-east-1"

// LoadAnonymousConfig builds an AWS config that never signs requests. The
// audit is strictly unauthenticated, so local credentials must not leak into
// probe traffic: a signed request can succeed where an anonymous one would
// not, and the whole point is measuring anonymous exposure.
func LoadAnonymousConfig(ctx context.Context, region string) (aws.Config, error) {
	if region == "" {
		region = fallbackRegion
	}
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}
	return cfg, nil
}
