package discogs

import "fmt"

type NotFoundError struct {
	Resource string
	ID       uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("discogs: %s %d not found", e.Resource, e.ID)
}

type UnknownStatusError struct {
	Resource string
	Code     int
	Err      error
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("discogs: unexpected status %d getting %s", e.Code, e.Resource)
}

func (e *UnknownStatusError) Unwrap() error { return e.Err }

type DecodeError struct {
	Resource string
	ID       uint64
	Field    string
	Offset   int64
	Err      error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("discogs: decode %s %d", e.Resource, e.ID)
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Offset > 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	return msg + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
