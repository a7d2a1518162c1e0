package watermark

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure of a watermark or edit operation.
type ErrorKind int

const (
	// KindFileNotFound means a referenced image file does not exist.
	KindFileNotFound ErrorKind = iota + 1
	// KindDecodeFailure means a file exists but could not be read as an image.
	KindDecodeFailure
	// KindInvalidParameter means an edit amount or other argument was rejected.
	KindInvalidParameter
	// KindWriteFailure means the result could not be encoded or written.
	KindWriteFailure
)

// Sentinels for errors.Is. Every *Error matches exactly one of them.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrDecodeFailure    = errors.New("decode failure")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrWriteFailure     = errors.New("write failure")
)

func (k ErrorKind) String() string {
	switch k {
	case KindFileNotFound:
		return "file_not_found"
	case KindDecodeFailure:
		return "decode_failure"
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindWriteFailure:
		return "write_failure"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindFileNotFound:
		return ErrFileNotFound
	case KindDecodeFailure:
		return ErrDecodeFailure
	case KindInvalidParameter:
		return ErrInvalidParameter
	case KindWriteFailure:
		return ErrWriteFailure
	default:
		return nil
	}
}

// Error is the classified error returned by every operation in this package.
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

// NewError builds a classified error. Path may be empty.
func NewError(kind ErrorKind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Kind.sentinel())
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first *Error in err's chain. Errors wrapping
// one of the sentinels directly are classified too; anything else is 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for _, k := range []ErrorKind{KindFileNotFound, KindDecodeFailure, KindInvalidParameter, KindWriteFailure} {
		if errors.Is(err, k.sentinel()) {
			return k
		}
	}
	return 0
}
