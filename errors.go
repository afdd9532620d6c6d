package imgdim

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes a decode can hit. Match them with
// errors.Is; the concrete error in the chain is always a *DecodeError
// carrying the file path and offending bytes or field name.
var (
	// ErrIO is returned when the file cannot be opened or read.
	ErrIO = errors.New("imgdim: i/o error")

	// ErrUnsupported is returned when the leading bytes match no known format.
	ErrUnsupported = errors.New("imgdim: unsupported format")

	// ErrMalformed is returned when a recognized format's header is too short
	// or internally inconsistent.
	ErrMalformed = errors.New("imgdim: malformed header")

	// ErrTruncated is returned when the file is shorter than the 8-byte
	// signature window, before any decoder runs.
	ErrTruncated = errors.New("imgdim: truncated data")

	// ErrMissingField is returned when a well-formed container lacks its
	// dimension fields (TIFF tags, PNM tokens, JPEG start-of-frame).
	ErrMissingField = errors.New("imgdim: missing field")
)

// DecodeError is the concrete error returned by Detect and DetectReader.
type DecodeError struct {
	Kind   error  // one of the package sentinels
	Format Format // format that was attempted, FormatUnknown if none matched
	Path   string // empty when decoding from a bare reader
	Detail string // offending bytes, missing tag, or underlying cause
	Err    error  // underlying error, if any
}

func (e *DecodeError) Error() string {
	msg := e.Kind.Error()
	if e.Format != FormatUnknown {
		msg = fmt.Sprintf("%s (%s)", msg, e.Format)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

func (e *DecodeError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func ioErr(path string, err error) *DecodeError {
	return &DecodeError{Kind: ErrIO, Path: path, Detail: err.Error(), Err: err}
}

func unsupportedErr(sig []byte) *DecodeError {
	return &DecodeError{Kind: ErrUnsupported, Detail: fmt.Sprintf("signature % X", sig)}
}

func truncatedErr(data []byte) *DecodeError {
	return &DecodeError{Kind: ErrTruncated, Detail: fmt.Sprintf("%d byte(s): % X", len(data), data)}
}

func malformedErr(f Format, detail string) *DecodeError {
	return &DecodeError{Kind: ErrMalformed, Format: f, Detail: detail}
}

func missingErr(f Format, what string) *DecodeError {
	return &DecodeError{Kind: ErrMissingField, Format: f, Detail: what}
}
