// Package mbid implementa o MusicBrainz Identifier (MBID).
//
// Um MBID é um UUID de 128 bits atribuído de forma permanente a cada entidade
// do catálogo (artistas, release groups, releases, gravações, obras, áreas...).
// A forma textual canônica é hex minúsculo com hífens 8-4-4-4-12; ex.: o
// artista Queen é 0383dadf-2a4e-4d10-a46a-e9e041da8eb3.
//
// Quando uma entidade é mesclada em outra, seus MBIDs redirecionam para a
// outra, então uma entidade pode ter mais de um MBID.
package mbid

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// MBID é um valor imutável. O valor zero é o UUID nulo.
type MBID struct {
	u uuid.UUID
}

var Nil MBID

// Parse aceita toda forma textual que o parser de UUID aceita (com hífens,
// urn:uuid:, entre chaves, 32 dígitos hex, qualquer caixa). String sempre
// devolve a forma canônica.
func Parse(s string) (MBID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return MBID{}, fmt.Errorf("invalid MBID %q: %w", s, err)
	}
	return MBID{u: u}, nil
}

// MustParse é Parse com panic no erro; só para literais.
func MustParse(s string) MBID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

func FromUUID(u uuid.UUID) MBID { return MBID{u: u} }

func FromBytes(b [16]byte) MBID { return MBID{u: uuid.UUID(b)} }

// FromUint128 monta o MBID a partir dos 64 bits altos e baixos (big-endian).
func FromUint128(hi, lo uint64) MBID {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], hi)
	binary.BigEndian.PutUint64(b[8:], lo)
	return FromBytes(b)
}

func (id MBID) UUID() uuid.UUID { return id.u }

func (id MBID) Bytes() [16]byte { return [16]byte(id.u) }

func (id MBID) IsNil() bool { return id.u == uuid.Nil }

func (id MBID) String() string { return id.u.String() }

func (id MBID) MarshalText() ([]byte, error) {
	return []byte(id.u.String()), nil
}

func (id *MBID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
