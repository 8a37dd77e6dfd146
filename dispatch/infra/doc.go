// Package infra contém implementações concretas (infraestrutura) para os contratos
// definidos no pacote domain.
//
// Exemplos:
//   - ChanPool: semáforo simples para a admissão de chamadas simultâneas
//   - WindowLimiter: permissões por janela fixa, reservadas em ordem de chegada
//   - BucketLimiter: token bucket usando golang.org/x/time/rate
//   - HTTPTransport: net/http (opcionalmente HTTP/2 via golang.org/x/net/http2)
//   - MemoryStatsStore / RedisStatsStore: estatísticas por tentativa
package infra
