package s3

import (
	"errors"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"

	"bucketlens.dev/bucketlens/internal/scan"
)

// classify maps an SDK failure onto the engine's error kinds. The API error
// code is authoritative; the HTTP status is the fallback for responses S3
// returns without a parseable body (anonymous listings of redirected buckets
// are the usual case).
func classify(op string, err error) error {
	kind := scan.KindTransport

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "AllAccessDisabled":
			kind = scan.KindAccessDenied
		case "NoSuchBucket", "NoSuchKey", "PermanentRedirect", "MovedPermanently":
			kind = scan.KindNotFound
		}
	}
	if kind == scan.KindTransport {
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) {
			switch respErr.HTTPStatusCode() {
			case http.StatusForbidden:
				kind = scan.KindAccessDenied
			case http.StatusNotFound, http.StatusMovedPermanently:
				kind = scan.KindNotFound
			}
		}
	}

	return &scan.StorageError{Op: op, Kind: kind, Err: err}
}
