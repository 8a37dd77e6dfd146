package musicbrainz

import (
	"catalog-client/musicbrainz/iso"
	"catalog-client/musicbrainz/mbid"
)

// Area é uma região geográfica ou localidade.
type Area struct {
	ID             mbid.MBID     `json:"id"`
	Name           string        `json:"name"`
	SortName       string        `json:"sort-name"`
	Type           *AreaType     `json:"type"`
	TypeID         *mbid.MBID    `json:"type-id"`
	ISO31661Codes  []iso.Country `json:"iso-3166-1-codes"`
	Disambiguation string        `json:"disambiguation"`
}

type AreaType string

const (
	AreaCountry      AreaType = "Country"
	AreaSubdivision  AreaType = "Subdivision"
	AreaCounty       AreaType = "County"
	AreaMunicipality AreaType = "Municipality"
	AreaCity         AreaType = "City"
	AreaDistrict     AreaType = "District"
	AreaIsland       AreaType = "Island"
)

var areaTypes = []AreaType{
	AreaCountry, AreaSubdivision, AreaCounty, AreaMunicipality, AreaCity, AreaDistrict, AreaIsland,
}

func (t *AreaType) UnmarshalText(b []byte) (err error) {
	*t, err = parseEnum(b, areaTypes)
	return err
}
