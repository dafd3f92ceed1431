package processor

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedPayload    = errors.New("malformed payload")
	ErrStorageWriteFailure = errors.New("storage write failure")
)

type FailureKind int

const (
	KindMalformedPayload FailureKind = iota + 1
	KindStorageWriteFailure
)

func (k FailureKind) String() string {
	switch k {
	case KindMalformedPayload:
		return "MalformedPayload"
	case KindStorageWriteFailure:
		return "StorageWriteFailure"
	default:
		return "Unknown"
	}
}

func (k FailureKind) sentinel() error {
	if k == KindStorageWriteFailure {
		return ErrStorageWriteFailure
	}
	return ErrMalformedPayload
}

// ProcessingError aborts a batch. Index and MessageID locate the record that
// stopped it; the host only sees that the invocation failed.
type ProcessingError struct {
	Kind      FailureKind
	Index     int
	MessageID string
	Err       error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: record %d (message %q): %v", e.Kind.sentinel(), e.Index, e.MessageID, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func (e *ProcessingError) Is(target error) bool {
	return target == e.Kind.sentinel()
}
