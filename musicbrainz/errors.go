package musicbrainz

import (
	"encoding/json"
	"errors"
	"fmt"

	"catalog-client/musicbrainz/iso"
	"catalog-client/musicbrainz/mbid"
)

var (
	// ErrInvalidBaseURL é retornado por New quando a URL base não serve.
	ErrInvalidBaseURL = errors.New("musicbrainz: invalid base url")
	// ErrUnimplementedKind é retornado por LookupKind para entidades sem decoder.
	ErrUnimplementedKind = errors.New("musicbrainz: unimplemented entity kind")
	// ErrInvalidKind vem dentro de URLError quando o nome da entidade é vazio
	// ou um segmento de ponto ("." ou "..").
	ErrInvalidKind = errors.New("musicbrainz: invalid entity kind")
	// ErrNilDispatcher é retornado por New sem dispatcher.
	ErrNilDispatcher = errors.New("musicbrainz: nil dispatcher")
)

// URLError indica que não deu para compor a URL de uma entidade.
type URLError struct {
	Kind string
	ID   mbid.MBID
	Err  error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("musicbrainz: compose url for %s %s: %v", e.Kind, e.ID, e.Err)
}

func (e *URLError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Kind string
	ID   mbid.MBID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("musicbrainz: %s %s not found", e.Kind, e.ID)
}

// UnknownStatusError cobre qualquer status fora de 200/404, inclusive
// 408/429 depois de esgotar os retries (Err guarda o ExhaustedError).
type UnknownStatusError struct {
	Kind string
	Code int
	Err  error
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("musicbrainz: unexpected status %d looking up %s", e.Code, e.Kind)
}

func (e *UnknownStatusError) Unwrap() error { return e.Err }

// DecodeError é uma resposta 200 cujo corpo não bate com o registro.
// Field vem de json.UnmarshalTypeError, Offset de json.SyntaxError/UnmarshalTypeError.
type DecodeError struct {
	Kind   string
	ID     mbid.MBID
	Field  string
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("musicbrainz: decode %s %s", e.Kind, e.ID)
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Offset > 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	return msg + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func newDecodeError(kind string, id mbid.MBID, err error) *DecodeError {
	de := &DecodeError{Kind: kind, ID: id, Err: err}
	var te *json.UnmarshalTypeError
	var se *json.SyntaxError
	switch {
	case errors.As(err, &te):
		de.Field = te.Field
		de.Offset = te.Offset
		if uv, ok := unknownValue(te); ok {
			de.Err = uv
		} else if uc, ok := iso.RejectedCode(te); ok {
			de.Err = uc
		}
	case errors.As(err, &se):
		de.Offset = se.Offset
	}
	return de
}

// UnknownValueError é um valor de enumeração que o catálogo mandou e este
// cliente não conhece. Err guarda o *json.UnmarshalTypeError de origem.
type UnknownValueError struct {
	Type  string
	Value string
	Err   error
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("musicbrainz: unknown %s %q", e.Type, e.Value)
}

func (e *UnknownValueError) Unwrap() error { return e.Err }
