// Package domain define contratos e tipos de domínio do pipeline de dispatch
// (admissão, rate limit, retry, timeout e transporte).
//
// Este pacote não depende de net/http para decidir nada; http.Header aparece só
// como formato dos headers do Request/Response. Implementações concretas ficam
// em infra, regras de aplicação em application.
package domain
