// Package dispatch compõe o pipeline que media toda chamada à API de catálogo.
//
// Visão geral (camadas):
//
//   - domain: contratos e tipos (Request, Response, Limiter, SlotPool, erros)
//   - application: regras (admissão com espera, retry, timeout por tentativa)
//   - infra: implementações concretas (semáforo, janela fixa, token bucket,
//     transporte HTTP, estatísticas em memória/Redis)
//   - dispatch (este pacote): Dispatcher + Options, o ponto de composição
//
// Fluxo de uma chamada lógica:
//
//  1. Espera uma vaga de admissão (backpressure; nunca rejeita por capacidade)
//  2. Espera uma permissão do rate limiter, único por Dispatcher
//  3. Executa a tentativa com timeout
//  4. 408/429/falha de rede: reenvia a mesma Request enquanto houver orçamento
//  5. Libera a vaga em qualquer caminho de saída
//
// Um *Dispatcher deve ser criado uma vez por identidade de cliente e
// compartilhado entre goroutines; o limite da API é global por cliente.
package dispatch
