package musicbrainz

import (
	"catalog-client/musicbrainz/iso"
	"catalog-client/musicbrainz/mbid"
)

type Release struct {
	ID                 mbid.MBID          `json:"id"`
	Title              string             `json:"title"`
	Status             *ReleaseStatus     `json:"status"`
	StatusID           *mbid.MBID         `json:"status-id"`
	Packaging          *ReleasePackaging  `json:"packaging"`
	PackagingID        *mbid.MBID         `json:"packaging-id"`
	Quality            ReleaseQuality     `json:"quality"`
	Date               string             `json:"date,omitempty"`
	Country            *string            `json:"country"`
	Barcode            *string            `json:"barcode"`
	ASIN               *string            `json:"asin"`
	Disambiguation     string             `json:"disambiguation"`
	ReleaseEvents      []ReleaseEvent     `json:"release-events"`
	CoverArtArchive    CoverArtArchive    `json:"cover-art-archive"`
	TextRepresentation TextRepresentation `json:"text-representation"`
}

type ReleaseEvent struct {
	Area *Area  `json:"area"`
	Date string `json:"date"`
}

type CoverArtArchive struct {
	Artwork  bool `json:"artwork"`
	Count    int  `json:"count"`
	Front    bool `json:"front"`
	Back     bool `json:"back"`
	Darkened bool `json:"darkened"`
}

// TextRepresentation traz idioma (ISO 639-3) e script (ISO 15924) dos textos.
// Ficam como string porque o catálogo usa códigos fora das tabelas (ex.: "qya").
type TextRepresentation struct {
	Language *string `json:"language"`
	Script   *string `json:"script"`
}

// LanguageCode devolve o idioma tipado, se conhecido.
func (t TextRepresentation) LanguageCode() (iso.Language, bool) {
	if t.Language == nil {
		return "", false
	}
	l := iso.Language(*t.Language)
	return l, l.Valid()
}

func (t TextRepresentation) ScriptCode() (iso.Script, bool) {
	if t.Script == nil {
		return "", false
	}
	s := iso.Script(*t.Script)
	return s, s.Valid()
}

type ReleaseStatus string

const (
	StatusOfficial      ReleaseStatus = "Official"
	StatusPromotion     ReleaseStatus = "Promotion"
	StatusBootleg       ReleaseStatus = "Bootleg"
	StatusPseudoRelease ReleaseStatus = "Pseudo-Release"
	StatusWithdrawn     ReleaseStatus = "Withdrawn"
	StatusCancelled     ReleaseStatus = "Cancelled"
)

var releaseStatuses = []ReleaseStatus{
	StatusOfficial, StatusPromotion, StatusBootleg, StatusPseudoRelease, StatusWithdrawn, StatusCancelled,
}

func (s *ReleaseStatus) UnmarshalText(b []byte) (err error) {
	*s, err = parseEnum(b, releaseStatuses)
	return err
}

type ReleasePackaging string

const (
	PackagingBook                 ReleasePackaging = "Book"
	PackagingBox                  ReleasePackaging = "Box"
	PackagingCardboardPaperSleeve ReleasePackaging = "Cardboard/Paper Sleeve"
	PackagingCassetteCase         ReleasePackaging = "Cassette Case"
	PackagingClamshellCase        ReleasePackaging = "Clamshell Case"
	PackagingDigibook             ReleasePackaging = "Digibook"
	PackagingDigipak              ReleasePackaging = "Digipak"
	PackagingDiscboxSlider        ReleasePackaging = "Discbox Slider"
	PackagingFatbox               ReleasePackaging = "Fatbox"
	PackagingGatefoldCover        ReleasePackaging = "Gatefold Cover"
	PackagingJewelCase            ReleasePackaging = "Jewel Case"
	PackagingKeepCase             ReleasePackaging = "Keep Case"
	PackagingLongbox              ReleasePackaging = "Longbox"
	PackagingMetalTin             ReleasePackaging = "Metal Tin"
	PackagingPlasticSleeve        ReleasePackaging = "Plastic Sleeve"
	PackagingSlidepack            ReleasePackaging = "Slidepack"
	PackagingSlimJewelCase        ReleasePackaging = "Slim Jewel Case"
	PackagingSnapCase             ReleasePackaging = "Snap Case"
	PackagingSnapPack             ReleasePackaging = "SnapPack"
	PackagingSuperJewelBox        ReleasePackaging = "Super Jewel Box"
	PackagingOther                ReleasePackaging = "Other"
	PackagingNone                 ReleasePackaging = "None"
)

var releasePackagings = []ReleasePackaging{
	PackagingBook, PackagingBox, PackagingCardboardPaperSleeve, PackagingCassetteCase,
	PackagingClamshellCase, PackagingDigibook, PackagingDigipak, PackagingDiscboxSlider,
	PackagingFatbox, PackagingGatefoldCover, PackagingJewelCase, PackagingKeepCase,
	PackagingLongbox, PackagingMetalTin, PackagingPlasticSleeve, PackagingSlidepack,
	PackagingSlimJewelCase, PackagingSnapCase, PackagingSnapPack, PackagingSuperJewelBox,
	PackagingOther, PackagingNone,
}

func (p *ReleasePackaging) UnmarshalText(b []byte) (err error) {
	*p, err = parseEnum(b, releasePackagings)
	return err
}

type ReleaseQuality string

const (
	QualityHigh   ReleaseQuality = "high"
	QualityNormal ReleaseQuality = "normal"
	QualityLow    ReleaseQuality = "low"
)

func (q *ReleaseQuality) UnmarshalText(b []byte) (err error) {
	*q, err = parseEnum(b, []ReleaseQuality{QualityHigh, QualityNormal, QualityLow})
	return err
}
