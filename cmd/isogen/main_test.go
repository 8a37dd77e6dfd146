package main

import (
	"strings"
	"testing"
)

func TestCountries_RendersConstAndRow(t *testing.T) {
	f, err := countries([]byte(`[{"country":"Brazil","alpha2":"BR","alpha3":"BRA","numeric":"076"},{"country":"Kosovo","alpha2":"XK","alpha3":null,"numeric":null}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.Asset = "iso-3166.json"
	src, err := render(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(src)
	for _, want := range []string{
		"// Code generated by isogen from assets/iso-3166.json. DO NOT EDIT.",
		"\t// Brazil\n\tCountryBR Country = \"BR\"\n",
		`{CountryXK, "", "", "Kosovo"},`,
		`{CountryBR, "BRA", "076", "Brazil"},`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in generated source:\n%s", want, out)
		}
	}
}

func TestLanguagesAndScripts_Camel(t *testing.T) {
	lf, err := languages([]byte(`[{"name":"English","type":"L","scope":"I","iso6393":"eng"}]`))
	if err != nil || lf.Entries[0].Ident != "LanguageEng" {
		t.Fatalf("unexpected language entry %+v (%v)", lf.Entries, err)
	}
	sf, err := scripts([]byte(`[{"code":"Latn","name":"Latin","numeric":"215","pva":"Latin","date":"2004-05-01"}]`))
	if err != nil || sf.Entries[0].Ident != "ScriptLatn" {
		t.Fatalf("unexpected script entry %+v (%v)", sf.Entries, err)
	}
}

func TestCountries_RejectsBadCode(t *testing.T) {
	if _, err := countries([]byte(`[{"country":"Nowhere","alpha2":"NOW"}]`)); err == nil {
		t.Fatalf("expected error for 3-letter alpha-2")
	}
}
