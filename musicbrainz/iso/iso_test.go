package iso

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCountry_Info(t *testing.T) {
	info, ok := CountryGB.Info()
	if !ok {
		t.Fatalf("expected GB to be known")
	}
	if info.Alpha3 != "GBR" || info.Numeric != "826" {
		t.Fatalf("unexpected info %+v", info)
	}
	if _, ok := CountryXW.Info(); !ok {
		t.Fatalf("expected catalog-specific XW to be known")
	}
}

func TestCountry_UnmarshalStrict(t *testing.T) {
	var codes []Country
	if err := json.Unmarshal([]byte(`["JP","BR"]`), &codes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if codes[0] != CountryJP || codes[1] != CountryBR {
		t.Fatalf("unexpected codes %v", codes)
	}

	var rec struct {
		Codes []Country `json:"iso-3166-1-codes"`
	}
	err := json.Unmarshal([]byte(`{"iso-3166-1-codes":["GB","jp"]}`), &rec)
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) || te.Field != "iso-3166-1-codes" {
		t.Fatalf("expected type error on iso-3166-1-codes, got %v", err)
	}
	uc, ok := RejectedCode(err)
	if !ok || uc.Code != "jp" || uc.Standard != "ISO 3166-1" {
		t.Fatalf("expected rejected lowercase code, got %+v", uc)
	}
	if !errors.Is(uc, te) {
		t.Fatalf("expected UnknownCodeError to wrap the type error")
	}
}

func TestRejectedCode_IgnoresOtherErrors(t *testing.T) {
	var n struct{ N int }
	err := json.Unmarshal([]byte(`{"N":"x"}`), &n)
	if _, ok := RejectedCode(err); ok {
		t.Fatalf("int type error is not a rejected code: %v", err)
	}
	if _, ok := RejectedCode(errors.New("boom")); ok {
		t.Fatalf("plain error is not a rejected code")
	}
}

func TestLanguageAndScript(t *testing.T) {
	if info, ok := LanguageEng.Info(); !ok || info.Name != "English" {
		t.Fatalf("unexpected eng info %+v", info)
	}
	if info, ok := ScriptLatn.Info(); !ok || info.Numeric != "215" {
		t.Fatalf("unexpected Latn info %+v", info)
	}
	var s Script
	err := s.UnmarshalText([]byte("Xxxx"))
	if uc, ok := RejectedCode(err); !ok || uc.Standard != "ISO 15924" || uc.Code != "Xxxx" {
		t.Fatalf("expected rejected script, got %v", err)
	}
	if Language("zzz").Valid() {
		t.Fatalf("expected zzz to be unknown")
	}
}

func TestTables_NoDuplicates(t *testing.T) {
	if len(countryIndex) != len(countries) {
		t.Fatalf("duplicate country codes: %d rows, %d unique", len(countries), len(countryIndex))
	}
	if len(languageIndex) != len(languages) {
		t.Fatalf("duplicate language codes")
	}
	if len(scriptIndex) != len(scripts) {
		t.Fatalf("duplicate script codes")
	}
	c := Countries()
	c[0].Name = "changed"
	if countries[0].Name == "changed" {
		t.Fatalf("Countries must return a copy")
	}
}
