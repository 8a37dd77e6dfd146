// Package application contém as regras de aplicação do pipeline de dispatch:
// admissão com espera, política de retry e timeout por tentativa.
//
// Ele depende apenas do pacote domain. Ex.: RetryService.Start() devolve a
// máquina de estados de uma chamada lógica, e RetryPolicy.Decide(resp, err)
// devolve uma Decision (retry ou não + backoff).
package application
