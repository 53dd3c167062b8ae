package fetch

import "fmt"

// RequestError reports invalid request parameters. Local, never retried.
type RequestError struct {
	Reason string
}

func (e *RequestError) Error() string { return " fetch: bad request: " + e.Reason }

// TransferError reports that the elevation service was unreachable or
// returned a non-success status. Status is zero when the transport failed
// before a response was received.
type TransferError struct {
	URL    string
	Status int
	Err    error
}

func (e *TransferError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(" fetch: transfer from %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf(" fetch: transfer from %s failed: status %d", e.URL, e.Status)
}

func (e *TransferError) Unwrap() error { return e.Err }

// StorageError reports a cache directory or file write failure.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf(" fetch: cache storage %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
