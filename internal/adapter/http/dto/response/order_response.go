package response

import (
	"time"

	"evosystem/internal/domain/entities"
)

type AnnotationResponse struct {
	ID      int       `json:"id"`
	Texto   string    `json:"texto"`
	Tecnico string    `json:"tecnico"`
	Data    time.Time `json:"data"`
}

type OrderResponse struct {
	ID          int                  `json:"id"`
	Item        string               `json:"item"`
	Cliente     string               `json:"cliente"`
	NotaEntrada string               `json:"notaEntrada"`
	NotaSaida   string               `json:"notaSaida"`
	Descricao   string               `json:"descricao"`
	OM          string               `json:"om"`
	Quantidade  int                  `json:"quantidade"`
	Status      string               `json:"status"`
	DataEntrada time.Time            `json:"dataEntrada"`
	Tecnico     string               `json:"tecnico"`
	Anotacoes   []AnnotationResponse `json:"anotacoes"`
}

func FromOrder(o entities.ServiceOrder) OrderResponse {
	annotations := make([]AnnotationResponse, 0, len(o.Anotacoes))
	for _, a := range o.Anotacoes {
		annotations = append(annotations, AnnotationResponse{
			ID:      a.ID,
			Texto:   a.Texto,
			Tecnico: a.Tecnico,
			Data:    a.Data,
		})
	}
	return OrderResponse{
		ID:          o.ID,
		Item:        o.Item,
		Cliente:     o.Cliente,
		NotaEntrada: o.NotaEntrada,
		NotaSaida:   o.NotaSaida,
		Descricao:   o.Descricao,
		OM:          o.OM,
		Quantidade:  o.Quantidade,
		Status:      string(o.Status),
		DataEntrada: o.DataEntrada,
		Tecnico:     o.Tecnico,
		Anotacoes:   annotations,
	}
}

func FromOrders(orders []entities.ServiceOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
