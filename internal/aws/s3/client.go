package s3

import (
	"bytes"
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"bucketlens.dev/bucketlens/internal/scan"
)

// S3API is the slice of the SDK surface the client needs.
type S3API interface {
	ListObjectsV2(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error)
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
}

// Client adapts the S3 SDK to the scan engine's StorageClient. All failures
// come back as *scan.StorageError so the engine branches on kinds, not text.
type Client struct {
	api S3API
}

func NewClient(api S3API) *Client {
	return &Client{api: api}
}

// NewFromConfig builds a Client over the real SDK client.
func NewFromConfig(cfg aws.Config) *Client {
	return NewClient(awss3.NewFromConfig(cfg))
}

var _ scan.StorageClient = (*Client)(nil)

// List returns every object under prefix, draining continuation tokens so
// the engine sees one flat listing regardless of bucket size.
func (c *Client) List(ctx context.Context, bucket, prefix, region string) ([]scan.Object, error) {
	var objects []scan.Object
	var token *string
	for {
		input := &awss3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			ContinuationToken: token,
		}
		if prefix != "" {
			input.Prefix = aws.String(prefix)
		}

		out, err := c.api.ListObjectsV2(ctx, input, withRegion(region)...)
		if err != nil {
			return nil, classify("ListObjectsV2", err)
		}

		for _, obj := range out.Contents {
			var lastModified time.Time
			if obj.LastModified != nil {
				lastModified = *obj.LastModified
			}
			objects = append(objects, scan.Object{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: lastModified,
			})
		}

		if out.IsTruncated == nil || !*out.IsTruncated {
			return objects, nil
		}
		token = out.NextContinuationToken
	}
}

// Put uploads payload to key.
func (c *Client) Put(ctx context.Context, bucket, key, region string, payload []byte) error {
	input := &awss3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(payload),
	}
	if _, err := c.api.PutObject(ctx, input, withRegion(region)...); err != nil {
		return classify("PutObject", err)
	}
	return nil
}

// Delete removes key.
func (c *Client) Delete(ctx context.Context, bucket, key, region string) error {
	input := &awss3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	if _, err := c.api.DeleteObject(ctx, input, withRegion(region)...); err != nil {
		return classify("DeleteObject", err)
	}
	return nil
}

func withRegion(region string) []func(*awss3.Options) {
	if region == "" {
		return nil
	}
	return []func(*awss3.Options){func(o *awss3.Options) {
		o.Region = region
	}}
}
