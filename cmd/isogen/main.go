// isogen gera as enumerações ISO do pacote musicbrainz/iso a partir dos
// assets JSON (ISO 3166-1, ISO 639-3, ISO 15924).
//
// Uso (via go generate em musicbrainz/iso):
//
//	go run catalog-client/cmd/isogen -assets assets -out .
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

type iso3166 struct {
	Country string  `json:"country"`
	Alpha2  string  `json:"alpha2"`
	Alpha3  *string `json:"alpha3"`
	Numeric *string `json:"numeric"`
}

type iso6393 struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Scope   string `json:"scope"`
	ISO6393 string `json:"iso6393"`
}

type iso15924 struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Numeric string `json:"numeric"`
	Date    string `json:"date"`
}

// entry é uma linha do arquivo gerado: constante + linha da tabela.
type entry struct {
	Doc   string
	Ident string
	Value string
	Row   string
}

type file struct {
	Asset   string
	Type    string
	Table   string
	Info    string
	Entries []entry
}

var tmpl = template.Must(template.New("gen").Parse(`// Code generated by isogen from assets/{{.Asset}}. DO NOT EDIT.

package iso

const (
{{- range $i, $e := .Entries}}
{{- if $i}}
{{end}}
	// {{$e.Doc}}
	{{$e.Ident}} {{$.Type}} = {{$e.Value}}
{{- end}}
)

var {{.Table}} = []{{.Info}}{
{{- range .Entries}}
	{{.Row}},
{{- end}}
}
`))

func main() {
	assets := flag.String("assets", "assets", "directory with the ISO JSON assets")
	out := flag.String("out", ".", "output directory for the generated files")
	flag.Parse()

	steps := []struct {
		asset string
		out   string
		build func([]byte) (file, error)
	}{
		{"iso-3166.json", "countries_gen.go", countries},
		{"iso-639-3.json", "languages_gen.go", languages},
		{"iso-15924.json", "scripts_gen.go", scripts},
	}

	for _, s := range steps {
		data, err := os.ReadFile(filepath.Join(*assets, s.asset))
		if err != nil {
			log.Fatalf("reading %s: %v", s.asset, err)
		}
		f, err := s.build(data)
		if err != nil {
			log.Fatalf("parsing %s: %v", s.asset, err)
		}
		f.Asset = s.asset
		src, err := render(f)
		if err != nil {
			log.Fatalf("rendering %s: %v", s.out, err)
		}
		if err := os.WriteFile(filepath.Join(*out, s.out), src, 0o644); err != nil {
			log.Fatalf("writing %s: %v", s.out, err)
		}
		log.Printf("isogen: %s -> %s (%d codes)", s.asset, s.out, len(f.Entries))
	}
}

func render(f file) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, f); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func countries(data []byte) (file, error) {
	var rows []iso3166
	if err := json.Unmarshal(data, &rows); err != nil {
		return file{}, err
	}
	f := file{Type: "Country", Table: "countries", Info: "CountryInfo"}
	for _, r := range rows {
		if len(r.Alpha2) != 2 {
			return file{}, fmt.Errorf("bad alpha-2 code %q", r.Alpha2)
		}
		ident := "Country" + strings.ToUpper(r.Alpha2)
		f.Entries = append(f.Entries, entry{
			Doc:   r.Country,
			Ident: ident,
			Value: strconv.Quote(r.Alpha2),
			Row:   fmt.Sprintf("{%s, %s, %s, %s}", ident, strconv.Quote(deref(r.Alpha3)), strconv.Quote(deref(r.Numeric)), strconv.Quote(r.Country)),
		})
	}
	return f, nil
}

func languages(data []byte) (file, error) {
	var rows []iso6393
	if err := json.Unmarshal(data, &rows); err != nil {
		return file{}, err
	}
	f := file{Type: "Language", Table: "languages", Info: "LanguageInfo"}
	for _, r := range rows {
		if len(r.ISO6393) != 3 {
			return file{}, fmt.Errorf("bad ISO 639-3 code %q", r.ISO6393)
		}
		ident := "Language" + camel(r.ISO6393)
		f.Entries = append(f.Entries, entry{
			Doc:   r.Name,
			Ident: ident,
			Value: strconv.Quote(r.ISO6393),
			Row:   fmt.Sprintf("{%s, %s, %s, %s}", ident, strconv.Quote(r.Name), strconv.Quote(r.Type), strconv.Quote(r.Scope)),
		})
	}
	return f, nil
}

func scripts(data []byte) (file, error) {
	var rows []iso15924
	if err := json.Unmarshal(data, &rows); err != nil {
		return file{}, err
	}
	f := file{Type: "Script", Table: "scripts", Info: "ScriptInfo"}
	for _, r := range rows {
		if len(r.Code) != 4 {
			return file{}, fmt.Errorf("bad ISO 15924 code %q", r.Code)
		}
		ident := "Script" + camel(r.Code)
		f.Entries = append(f.Entries, entry{
			Doc:   r.Name,
			Ident: ident,
			Value: strconv.Quote(r.Code),
			Row:   fmt.Sprintf("{%s, %s, %s, %s}", ident, strconv.Quote(r.Name), strconv.Quote(r.Numeric), strconv.Quote(r.Date)),
		})
	}
	return f, nil
}

func camel(code string) string {
	lower := strings.ToLower(code)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
