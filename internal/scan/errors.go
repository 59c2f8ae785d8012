package scan

import (
	"errors"
	"fmt"
)

// ErrorKind classifies storage failures. Probes branch on the kind instead of
// matching error text, which AWS changes without notice.
type ErrorKind int

const (
	// KindTransport covers network faults, timeouts and anything else the
	// client could not attribute to the bucket itself.
	KindTransport ErrorKind = iota
	// KindAccessDenied means the bucket answered and refused the caller.
	KindAccessDenied
	// KindNotFound means the bucket (or key) is not served at the probed
	// location, including cross-region redirects.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindAccessDenied:
		return "access denied"
	case KindNotFound:
		return "not found"
	default:
		return "transport"
	}
}

// StorageError is the structured error every StorageClient implementation
// returns. Op names the underlying storage operation.
type StorageError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Kind extracts the classification from err. Unclassified errors are treated
// as transport faults, the conservative choice for every caller.
func Kind(err error) ErrorKind {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindTransport
}

// ErrRegionNotFound is returned by ResolveRegion when no candidate region
// serves the bucket. The scan cannot proceed past it.
var ErrRegionNotFound = errors.New("no candidate region serves the bucket")
