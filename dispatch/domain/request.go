package domain

import "net/http"

// Request é um valor imutável e reenviável quantas vezes for preciso.
//
// Nenhum estágio do pipeline altera Header ou Body; o transporte monta um
// *http.Request novo a cada tentativa.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response carrega status e corpo já lidos por completo.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Get monta uma Request GET com Accept: application/json.
func Get(url string) Request {
	h := make(http.Header)
	h.Set("Accept", "application/json")
	return Request{Method: http.MethodGet, URL: url, Header: h}
}

// WithHeader devolve uma cópia com o header definido; r não é alterada.
func (r Request) WithHeader(key, value string) Request {
	h := r.Header.Clone()
	if h == nil {
		h = make(http.Header)
	}
	h.Set(key, value)
	r.Header = h
	return r
}
