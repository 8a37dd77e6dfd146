package musicbrainz

import (
	"encoding/json"
	"errors"
	"testing"

	"catalog-client/musicbrainz/iso"
)

const releaseJSON = `{
  "id": "b84ee12a-09ef-421b-82de-0441a926375b",
  "title": "A Night at the Opera",
  "status": "Official",
  "status-id": "4e304316-386d-3409-af2e-78857eec5cfe",
  "packaging": "Cardboard/Paper Sleeve",
  "packaging-id": null,
  "quality": "normal",
  "date": "1975-11-21",
  "country": "GB",
  "barcode": null,
  "asin": null,
  "disambiguation": "",
  "release-events": [
    {"date": "1975-11-21", "area": {"id": "8a754a16-0027-3a29-b6d7-2b40ea0481ed", "name": "United Kingdom", "sort-name": "United Kingdom", "type": null, "iso-3166-1-codes": ["GB"], "disambiguation": ""}}
  ],
  "cover-art-archive": {"artwork": true, "count": 2, "front": true, "back": true, "darkened": false},
  "text-representation": {"language": "eng", "script": "Latn"}
}`

func TestRelease_Decode(t *testing.T) {
	r, err := ReleaseKind.Decode([]byte(releaseJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *r.Status != StatusOfficial || *r.Packaging != PackagingCardboardPaperSleeve || r.Quality != QualityNormal {
		t.Fatalf("unexpected enums %+v", r)
	}
	if r.Barcode != nil || r.PackagingID != nil {
		t.Fatalf("expected null fields to stay nil")
	}
	if len(r.ReleaseEvents) != 1 || r.ReleaseEvents[0].Area.ISO31661Codes[0] != iso.CountryGB {
		t.Fatalf("unexpected events %+v", r.ReleaseEvents)
	}
	if !r.CoverArtArchive.Front || r.CoverArtArchive.Count != 2 {
		t.Fatalf("unexpected cover art %+v", r.CoverArtArchive)
	}
	if l, ok := r.TextRepresentation.LanguageCode(); !ok || l != iso.LanguageEng {
		t.Fatalf("unexpected language %q", l)
	}
	if s, ok := r.TextRepresentation.ScriptCode(); !ok || s != iso.ScriptLatn {
		t.Fatalf("unexpected script %q", s)
	}
}

func TestReleaseGroup_Decode(t *testing.T) {
	body := `{
	  "id": "1f0a0b4c-5a56-3b5e-8c2e-0e5c3f3c7c41",
	  "title": "Greatest Hits",
	  "first-release-date": "1981-10-26",
	  "primary-type": "Album",
	  "primary-type-id": "f529b476-6e62-324f-b0aa-1f3e33d313fc",
	  "secondary-types": ["Compilation", "DJ-mix"],
	  "secondary-type-ids": ["dd2a21e1-0c00-3729-a7a0-de60b84eb5d1"],
	  "disambiguation": ""
	}`
	rg, err := ReleaseGroupKind.Decode([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *rg.PrimaryType != PrimaryAlbum || rg.SecondaryTypes[1] != SecondaryDJMix {
		t.Fatalf("unexpected types %+v", rg)
	}

	_, err = ReleaseGroupKind.Decode([]byte(`{"primary-type": "album"}`))
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) || te.Field != "primary-type" {
		t.Fatalf("expected case-sensitive enum decoding, got %v", err)
	}
	uv, ok := unknownValue(te)
	if !ok || uv.Type != "release group primary type" || uv.Value != "album" {
		t.Fatalf("unexpected unknown value %+v", uv)
	}
}

func TestTextRepresentation_UnknownCodes(t *testing.T) {
	var tr TextRepresentation
	if err := json.Unmarshal([]byte(`{"language":"qya","script":null}`), &tr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := tr.LanguageCode(); ok {
		t.Fatalf("qya is not in the language table")
	}
	if _, ok := tr.ScriptCode(); ok {
		t.Fatalf("null script must not be reported")
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	got := r.Names()
	want := []string{"area", "artist", "release", "release-group"}
	if len(got) != len(want) {
		t.Fatalf("unexpected names %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected names %v", got)
		}
	}
	if r.Has("work") {
		t.Fatalf("work should not be registered by default")
	}

	type Work struct {
		Title string `json:"title"`
	}
	Register(r, NewKind[Work]("work"))
	if !r.Has("work") {
		t.Fatalf("expected work to be registered")
	}
}
