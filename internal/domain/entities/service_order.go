package entities

import "time"

// OrderStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - The API is the source of truth for order state; clients mutate their local
//     view only after the server acknowledges a transition.
//   - Transitions are monotonic: Em Aberto -> Em Manutenção -> Concluído.
//     There is no backward transition and Em Manutenção cannot be skipped.

type OrderStatus string

const (
	StatusOpen       OrderStatus = "Em Aberto"
	StatusInProgress OrderStatus = "Em Manutenção"
	StatusCompleted  OrderStatus = "Concluído"
)

// Annotation is a timestamped free-text note attached to an order. Annotations
// are append-only: existing entries are never edited or removed while the order
// lives.
type Annotation struct {
	ID      int       `json:"id"`
	Texto   string    `json:"texto"`
	Tecnico string    `json:"tecnico"`
	Data    time.Time `json:"data"`
}

// ServiceOrder is the order entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (numeric, assigned from the counters table)
//
// Wire contract:
//   - Field names follow the original fiscal vocabulary (notaEntrada = inbound
//     invoice, notaSaida = outbound invoice, om = maintenance order reference).
//   - Tecnico is empty while the order is open; NotaSaida is set only when the
//     order is completed.
type ServiceOrder struct {
	ID          int          `json:"id"`
	Item        string       `json:"item"`
	Cliente     string       `json:"cliente"`
	NotaEntrada string       `json:"notaEntrada"`
	NotaSaida   string       `json:"notaSaida"`
	Descricao   string       `json:"descricao"`
	OM          string       `json:"om"`
	Quantidade  int          `json:"quantidade"`
	Status      OrderStatus  `json:"status"`
	DataEntrada time.Time    `json:"dataEntrada"`
	Tecnico     string       `json:"tecnico"`
	Anotacoes   []Annotation `json:"anotacoes"`
}
