package musicbrainz

import (
	"encoding/json"
	"reflect"
	"slices"
	"strconv"
)

// enumNames dá o nome legível de cada enumeração para UnknownValueError.
var enumNames = map[reflect.Type]string{
	reflect.TypeFor[AreaType]():                  "area type",
	reflect.TypeFor[ArtistType]():                "artist type",
	reflect.TypeFor[ArtistGender]():              "artist gender",
	reflect.TypeFor[ReleaseStatus]():             "release status",
	reflect.TypeFor[ReleasePackaging]():          "release packaging",
	reflect.TypeFor[ReleaseQuality]():            "release quality",
	reflect.TypeFor[ReleaseGroupPrimaryType]():   "release group primary type",
	reflect.TypeFor[ReleaseGroupSecondaryType](): "release group secondary type",
}

// parseEnum aceita só os valores exatos de allowed.
//
// A recusa sai como *json.UnmarshalTypeError porque é o único erro ao qual
// encoding/json acrescenta o caminho do campo; newDecodeError depois troca
// por UnknownValueError.
func parseEnum[T ~string](b []byte, allowed []T) (T, error) {
	v := T(b)
	if !slices.Contains(allowed, v) {
		return "", &json.UnmarshalTypeError{Value: strconv.Quote(string(b)), Type: reflect.TypeFor[T]()}
	}
	return v, nil
}

// unknownValue reconstrói o valor recusado por parseEnum.
func unknownValue(te *json.UnmarshalTypeError) (*UnknownValueError, bool) {
	name, ok := enumNames[te.Type]
	if !ok {
		return nil, false
	}
	v, err := strconv.Unquote(te.Value)
	if err != nil {
		return nil, false
	}
	return &UnknownValueError{Type: name, Value: v, Err: te}, true
}
