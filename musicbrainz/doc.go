// Package musicbrainz implementa lookups tipados no catálogo MusicBrainz (WS/2).
//
// Toda chamada passa por um *dispatch.Dispatcher compartilhado, que cuida de
// admissão, rate limit, retry e timeout. Este pacote só monta a URL, lê o
// status e decodifica o corpo no registro da entidade.
//
//   - Kind[T]: nome da entidade + decoder tipado (Lookup[T])
//   - Registry: mesma coisa com tipo apagado, para CLIs (Client.LookupKind)
//   - area, artist, release, release-group já vêm registrados em DefaultRegistry
package musicbrainz
