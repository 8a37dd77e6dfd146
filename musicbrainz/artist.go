package musicbrainz

import "catalog-client/musicbrainz/mbid"

type Artist struct {
	ID             mbid.MBID      `json:"id"`
	Name           string         `json:"name"`
	SortName       string         `json:"sort-name"`
	LifeSpan       ArtistLifeSpan `json:"life-span"`
	Disambiguation string         `json:"disambiguation"`
	Type           *ArtistType    `json:"type"`
	TypeID         *mbid.MBID     `json:"type-id"`
	Gender         *ArtistGender  `json:"gender"`
	GenderID       *mbid.MBID     `json:"gender-id"`
	Country        string         `json:"country,omitempty"`
	Area           *ArtistArea    `json:"area"`
	BeginArea      *ArtistArea    `json:"begin-area"`
	EndArea        *ArtistArea    `json:"end-area"`
}

// ArtistArea é a forma resumida de Area que vem dentro de Artist.
// Os códigos ficam como string: subdivisões usam ISO 3166-2.
type ArtistArea struct {
	ID            mbid.MBID `json:"id"`
	Name          string    `json:"name"`
	SortName      string    `json:"sort-name,omitempty"`
	ISO31661Codes []string  `json:"iso-3166-1-codes,omitempty"`
}

type ArtistLifeSpan struct {
	Begin *string `json:"begin"`
	End   *string `json:"end"`
	Ended bool    `json:"ended"`
}

type ArtistType string

const (
	ArtistPerson    ArtistType = "Person"
	ArtistGroup     ArtistType = "Group"
	ArtistOrchestra ArtistType = "Orchestra"
	ArtistChoir     ArtistType = "Choir"
	ArtistCharacter ArtistType = "Character"
	ArtistOther     ArtistType = "Other"
)

var artistTypes = []ArtistType{
	ArtistPerson, ArtistGroup, ArtistOrchestra, ArtistChoir, ArtistCharacter, ArtistOther,
}

func (t *ArtistType) UnmarshalText(b []byte) (err error) {
	*t, err = parseEnum(b, artistTypes)
	return err
}

type ArtistGender string

const (
	GenderMale          ArtistGender = "Male"
	GenderFemale        ArtistGender = "Female"
	GenderNonBinary     ArtistGender = "Non-binary"
	GenderOther         ArtistGender = "Other"
	GenderNotApplicable ArtistGender = "Not applicable"
)

var artistGenders = []ArtistGender{
	GenderMale, GenderFemale, GenderNonBinary, GenderOther, GenderNotApplicable,
}

func (g *ArtistGender) UnmarshalText(b []byte) (err error) {
	*g, err = parseEnum(b, artistGenders)
	return err
}
