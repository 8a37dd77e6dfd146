package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"catalog-client/musicbrainz/mbid"
)

// Kind liga o nome da entidade no WS/2 ao decoder do registro.
type Kind[T any] struct {
	Name   string
	Decode func(body []byte) (T, error)
}

// NewKind usa encoding/json para decodificar em T.
func NewKind[T any](name string) Kind[T] {
	return Kind[T]{
		Name: name,
		Decode: func(body []byte) (T, error) {
			var v T
			err := json.Unmarshal(body, &v)
			return v, err
		},
	}
}

var (
	AreaKind         = NewKind[Area]("area")
	ArtistKind       = NewKind[Artist]("artist")
	ReleaseKind      = NewKind[Release]("release")
	ReleaseGroupKind = NewKind[ReleaseGroup]("release-group")
)

// KnownKinds são todas as entidades do WS/2, na ordem em que a CLI tenta.
// Só as registradas em DefaultRegistry têm decoder.
var KnownKinds = []string{
	"area", "artist", "event", "genre", "instrument", "label", "place",
	"recording", "release", "release-group", "series", "url", "work",
}

// ParseKindName normaliza um nome digitado pelo usuário ("Release-Group",
// " artist ") e confere contra KnownKinds.
func ParseKindName(s string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	return name, slices.Contains(KnownKinds, name)
}

// Lookup busca a entidade id e decodifica em T.
func Lookup[T any](ctx context.Context, c *Client, kind Kind[T], id mbid.MBID) (T, error) {
	var zero T
	body, err := c.fetch(ctx, kind.Name, id)
	if err != nil {
		return zero, err
	}
	v, err := kind.Decode(body)
	if err != nil {
		return zero, newDecodeError(kind.Name, id, err)
	}
	return v, nil
}

type decodeFunc func(body []byte) (any, error)

// Registry guarda kinds com tipo apagado. Não é seguro registrar
// concorrentemente com lookups; monte antes de usar.
type Registry struct {
	kinds map[string]decodeFunc
}

func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]decodeFunc)}
}

// DefaultRegistry devolve um registry novo com area, artist, release e release-group.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	Register(r, AreaKind)
	Register(r, ArtistKind)
	Register(r, ReleaseKind)
	Register(r, ReleaseGroupKind)
	return r
}

// Register adiciona (ou troca) o decoder de k.Name.
func Register[T any](r *Registry, k Kind[T]) {
	r.kinds[k.Name] = func(body []byte) (any, error) {
		v, err := k.Decode(body)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (r *Registry) Has(name string) bool {
	_, ok := r.kinds[name]
	return ok
}

// Names devolve os kinds registrados em ordem alfabética.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.kinds))
	for n := range r.kinds {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// LookupKind é o Lookup com tipo apagado, para quem só tem o nome da entidade.
// Kinds sem decoder voltam ErrUnimplementedKind sem fazer chamada.
func (c *Client) LookupKind(ctx context.Context, name string, id mbid.MBID) (any, error) {
	decode, ok := c.registry.kinds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnimplementedKind, name)
	}
	body, err := c.fetch(ctx, name, id)
	if err != nil {
		return nil, err
	}
	v, err := decode(body)
	if err != nil {
		return nil, newDecodeError(name, id, err)
	}
	return v, nil
}
