// Package iso contém as enumerações ISO usadas nos registros do catálogo:
// países (ISO 3166-1 alpha-2), idiomas (ISO 639-3) e scripts (ISO 15924).
//
// As constantes e tabelas em *_gen.go são geradas por cmd/isogen a partir
// de assets/*.json; não edite esses arquivos à mão.
package iso

//go:generate go run catalog-client/cmd/isogen -assets assets -out .

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// UnknownCodeError descreve um código fora da tabela. Não sai direto de
// UnmarshalText: use RejectedCode sobre o erro da decodificação.
type UnknownCodeError struct {
	Standard string
	Code     string
	Err      error
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown %s code %q", e.Standard, e.Code)
}

func (e *UnknownCodeError) Unwrap() error { return e.Err }

var standards = map[reflect.Type]string{
	reflect.TypeFor[Country]():  "ISO 3166-1",
	reflect.TypeFor[Language](): "ISO 639-3",
	reflect.TypeFor[Script]():   "ISO 15924",
}

// reject devolve *json.UnmarshalTypeError para que encoding/json preencha
// o caminho do campo (Field) onde o código apareceu.
func reject[T ~string](b []byte) error {
	return &json.UnmarshalTypeError{Value: strconv.Quote(string(b)), Type: reflect.TypeFor[T]()}
}

// RejectedCode reconhece em err a recusa de um UnmarshalText deste pacote.
func RejectedCode(err error) (*UnknownCodeError, bool) {
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) {
		return nil, false
	}
	std, ok := standards[te.Type]
	if !ok {
		return nil, false
	}
	code, uerr := strconv.Unquote(te.Value)
	if uerr != nil {
		return nil, false
	}
	return &UnknownCodeError{Standard: std, Code: code, Err: te}, true
}

type Country string

type CountryInfo struct {
	Code    Country
	Alpha3  string
	Numeric string
	Name    string
}

type Language string

type LanguageInfo struct {
	Code  Language
	Name  string
	Type  string
	Scope string
}

type Script string

type ScriptInfo struct {
	Code    Script
	Name    string
	Numeric string
	Date    string
}

var (
	countryIndex  = index(countries, func(i CountryInfo) Country { return i.Code })
	languageIndex = index(languages, func(i LanguageInfo) Language { return i.Code })
	scriptIndex   = index(scripts, func(i ScriptInfo) Script { return i.Code })
)

func index[K comparable, V any](rows []V, key func(V) K) map[K]int {
	m := make(map[K]int, len(rows))
	for i, r := range rows {
		m[key(r)] = i
	}
	return m
}

func lookup[K comparable, V any](rows []V, idx map[K]int, k K) (V, bool) {
	i, ok := idx[k]
	if !ok {
		var zero V
		return zero, false
	}
	return rows[i], true
}

func (c Country) String() string { return string(c) }

func (c Country) Info() (CountryInfo, bool) { return lookup(countries, countryIndex, c) }

func (c Country) Valid() bool { _, ok := countryIndex[c]; return ok }

// UnmarshalText exige o código exato (maiúsculo), como o catálogo envia.
func (c *Country) UnmarshalText(b []byte) error {
	v := Country(b)
	if !v.Valid() {
		return reject[Country](b)
	}
	*c = v
	return nil
}

func (c Country) MarshalText() ([]byte, error) { return []byte(c), nil }

// Countries devolve uma cópia da tabela na ordem do asset.
func Countries() []CountryInfo { return append([]CountryInfo(nil), countries...) }

func (l Language) String() string { return string(l) }

func (l Language) Info() (LanguageInfo, bool) { return lookup(languages, languageIndex, l) }

func (l Language) Valid() bool { _, ok := languageIndex[l]; return ok }

func (l *Language) UnmarshalText(b []byte) error {
	v := Language(b)
	if !v.Valid() {
		return reject[Language](b)
	}
	*l = v
	return nil
}

func (l Language) MarshalText() ([]byte, error) { return []byte(l), nil }

func Languages() []LanguageInfo { return append([]LanguageInfo(nil), languages...) }

func (s Script) String() string { return string(s) }

func (s Script) Info() (ScriptInfo, bool) { return lookup(scripts, scriptIndex, s) }

func (s Script) Valid() bool { _, ok := scriptIndex[s]; return ok }

func (s *Script) UnmarshalText(b []byte) error {
	v := Script(b)
	if !v.Valid() {
		return reject[Script](b)
	}
	*s = v
	return nil
}

func (s Script) MarshalText() ([]byte, error) { return []byte(s), nil }

func Scripts() []ScriptInfo { return append([]ScriptInfo(nil), scripts...) }
