package musicbrainz

import "catalog-client/musicbrainz/mbid"

// ReleaseGroup agrupa as edições (releases) de um mesmo "álbum".
type ReleaseGroup struct {
	ID               mbid.MBID                   `json:"id"`
	Title            string                      `json:"title"`
	FirstReleaseDate string                      `json:"first-release-date"`
	PrimaryType      *ReleaseGroupPrimaryType    `json:"primary-type"`
	PrimaryTypeID    *mbid.MBID                  `json:"primary-type-id"`
	SecondaryTypes   []ReleaseGroupSecondaryType `json:"secondary-types"`
	SecondaryTypeIDs []mbid.MBID                 `json:"secondary-type-ids"`
	Disambiguation   string                      `json:"disambiguation"`
}

type ReleaseGroupPrimaryType string

const (
	PrimaryAlbum     ReleaseGroupPrimaryType = "Album"
	PrimarySingle    ReleaseGroupPrimaryType = "Single"
	PrimaryEP        ReleaseGroupPrimaryType = "EP"
	PrimaryBroadcast ReleaseGroupPrimaryType = "Broadcast"
	PrimaryOther     ReleaseGroupPrimaryType = "Other"
)

var primaryTypes = []ReleaseGroupPrimaryType{
	PrimaryAlbum, PrimarySingle, PrimaryEP, PrimaryBroadcast, PrimaryOther,
}

func (t *ReleaseGroupPrimaryType) UnmarshalText(b []byte) (err error) {
	*t, err = parseEnum(b, primaryTypes)
	return err
}

type ReleaseGroupSecondaryType string

const (
	SecondaryAudioDrama     ReleaseGroupSecondaryType = "Audio drama"
	SecondaryAudiobook      ReleaseGroupSecondaryType = "Audiobook"
	SecondaryCompilation    ReleaseGroupSecondaryType = "Compilation"
	SecondaryDemo           ReleaseGroupSecondaryType = "Demo"
	SecondaryDJMix          ReleaseGroupSecondaryType = "DJ-mix"
	SecondaryFieldRecording ReleaseGroupSecondaryType = "Field recording"
	SecondaryInterview      ReleaseGroupSecondaryType = "Interview"
	SecondaryLive           ReleaseGroupSecondaryType = "Live"
	SecondaryMixtapeStreet  ReleaseGroupSecondaryType = "Mixtape/Street"
	SecondaryRemix          ReleaseGroupSecondaryType = "Remix"
	SecondarySoundtrack     ReleaseGroupSecondaryType = "Soundtrack"
	SecondarySpokenword     ReleaseGroupSecondaryType = "Spokenword"
)

var secondaryTypes = []ReleaseGroupSecondaryType{
	SecondaryAudioDrama, SecondaryAudiobook, SecondaryCompilation, SecondaryDemo, SecondaryDJMix,
	SecondaryFieldRecording, SecondaryInterview, SecondaryLive, SecondaryMixtapeStreet,
	SecondaryRemix, SecondarySoundtrack, SecondarySpokenword,
}

func (t *ReleaseGroupSecondaryType) UnmarshalText(b []byte) (err error) {
	*t, err = parseEnum(b, secondaryTypes)
	return err
}
