package request

import "evosystem/internal/usecase"

// CreateOrderRequest carries the intake form fields. Field names match the
// wire contract inherited from the previous system (Portuguese fiscal terms).
type CreateOrderRequest struct {
	Item        string `json:"item" binding:"required"`
	Cliente     string `json:"cliente" binding:"required"`
	NotaEntrada string `json:"notaEntrada" binding:"required"`
	OM          string `json:"om" binding:"required"`
	Quantidade  int    `json:"quantidade" binding:"required"`
	Descricao   string `json:"descricao" binding:"required"`
	Tecnico     string `json:"tecnico"`
}

func (r CreateOrderRequest) ToInput() usecase.NewOrderInput {
	return usecase.NewOrderInput{
		Item:        r.Item,
		Cliente:     r.Cliente,
		NotaEntrada: r.NotaEntrada,
		OM:          r.OM,
		Quantidade:  r.Quantidade,
		Descricao:   r.Descricao,
		Tecnico:     r.Tecnico,
	}
}

type AssignOrderRequest struct {
	Tecnico string `json:"tecnico" binding:"required"`
}

type FinalizeOrderRequest struct {
	NotaSaida string `json:"notaSaida" binding:"required"`
	Tecnico   string `json:"tecnico"`
}

type AnnotateOrderRequest struct {
	Texto   string `json:"texto" binding:"required"`
	Tecnico string `json:"tecnico"`
}
