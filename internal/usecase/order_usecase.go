package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"evosystem/internal/domain/entities"
	"evosystem/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrMissingOrderFields = errors.New("missing required order fields")
	ErrOrderNotOpen       = errors.New("order is not open")
	ErrOrderNotInProgress = errors.New("order is not in progress")
	ErrEmptyAnnotation    = errors.New("empty annotation text")
	ErrEmptyOutboundNota  = errors.New("empty outbound invoice")
	ErrEmptyTechnician    = errors.New("empty technician")
)

// NewOrderInput carries the creation fields supplied by the intake form.
type NewOrderInput struct {
	Item        string
	Cliente     string
	NotaEntrada string
	OM          string
	Quantidade  int
	Descricao   string
	Tecnico     string
}

// IOrderUseCase exposes the service-order lifecycle:
//   - Create registers an intake (status Em Aberto) and writes the entry annotation.
//   - Assign moves Em Aberto -> Em Manutenção and records the technician.
//   - Finalize moves Em Manutenção -> Concluído and records the outbound invoice.
//   - Annotate appends a free-text note and returns the full updated order.
//   - Delete removes the order together with its annotations.

type IOrderUseCase interface {
	Create(ctx context.Context, in NewOrderInput) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int) (entities.ServiceOrder, error)
	Assign(ctx context.Context, id int, tecnico string) (entities.ServiceOrder, error)
	Finalize(ctx context.Context, id int, notaSaida, tecnico string) (entities.ServiceOrder, error)
	Annotate(ctx context.Context, id int, texto, tecnico string) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id int) error
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) Create(ctx context.Context, in NewOrderInput) (entities.ServiceOrder, error) {
	in.Item = strings.TrimSpace(in.Item)
	in.Cliente = strings.TrimSpace(in.Cliente)
	in.NotaEntrada = strings.TrimSpace(in.NotaEntrada)
	in.OM = strings.TrimSpace(in.OM)
	in.Descricao = strings.TrimSpace(in.Descricao)
	in.Tecnico = strings.TrimSpace(in.Tecnico)

	if in.Quantidade <= 0 {
		return entities.ServiceOrder{}, ErrInvalidQuantity
	}
	if in.Item == "" || in.Cliente == "" || in.NotaEntrada == "" || in.OM == "" || in.Descricao == "" {
		return entities.ServiceOrder{}, ErrMissingOrderFields
	}

	now := time.Now().UTC()
	o := entities.ServiceOrder{
		Item:        in.Item,
		Cliente:     in.Cliente,
		NotaEntrada: in.NotaEntrada,
		OM:          in.OM,
		Quantidade:  in.Quantidade,
		Descricao:   in.Descricao,
		Status:      entities.StatusOpen,
		DataEntrada: now,
		Anotacoes: []entities.Annotation{{
			ID:      1,
			Texto:   fmt.Sprintf("Entrada: %s. NF: %s. OM: %s.", in.Descricao, in.NotaEntrada, in.OM),
			Tecnico: systemAuthor(in.Tecnico),
			Data:    now,
		}},
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[orders][usecase] created id=%d item=%q cliente=%q", created.ID, created.Item, created.Cliente)
	return created, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id int) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) Assign(ctx context.Context, id int, tecnico string) (entities.ServiceOrder, error) {
	tecnico = strings.TrimSpace(tecnico)
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	if tecnico == "" {
		return entities.ServiceOrder{}, ErrEmptyTechnician
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if current.Status != entities.StatusOpen {
		return entities.ServiceOrder{}, ErrOrderNotOpen
	}

	updated, err := u.repo.UpdateTransition(ctx, id, entities.StatusOpen, entities.StatusInProgress, tecnico, "")
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == 0 {
		// Lost the conditional check between the read and the update.
		return entities.ServiceOrder{}, ErrOrderNotOpen
	}

	return u.appendLifecycleNote(ctx, updated, fmt.Sprintf("Serviço assumido pelo técnico: %s.", tecnico), tecnico)
}

func (u *OrderUseCase) Finalize(ctx context.Context, id int, notaSaida, tecnico string) (entities.ServiceOrder, error) {
	notaSaida = strings.TrimSpace(notaSaida)
	tecnico = strings.TrimSpace(tecnico)
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	if notaSaida == "" {
		return entities.ServiceOrder{}, ErrEmptyOutboundNota
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if current.Status != entities.StatusInProgress {
		return entities.ServiceOrder{}, ErrOrderNotInProgress
	}

	// The technician assigned during Em Manutenção stays on the order; the
	// finalizer is recorded as the annotation author only.
	updated, err := u.repo.UpdateTransition(ctx, id, entities.StatusInProgress, entities.StatusCompleted, "", notaSaida)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == 0 {
		return entities.ServiceOrder{}, ErrOrderNotInProgress
	}

	return u.appendLifecycleNote(ctx, updated, fmt.Sprintf("Serviço CONCLUÍDO. NF de Saída/Faturamento: %s.", notaSaida), tecnico)
}

func (u *OrderUseCase) Annotate(ctx context.Context, id int, texto, tecnico string) (entities.ServiceOrder, error) {
	texto = strings.TrimSpace(texto)
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	if texto == "" {
		return entities.ServiceOrder{}, ErrEmptyAnnotation
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.appendLifecycleNote(ctx, current, texto, tecnico)
}

func (u *OrderUseCase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOrderNotFound
	}
	log.Printf("[orders][usecase] deleted id=%d", id)
	return nil
}

func (u *OrderUseCase) appendLifecycleNote(ctx context.Context, o entities.ServiceOrder, texto, tecnico string) (entities.ServiceOrder, error) {
	a := entities.Annotation{
		ID:      len(o.Anotacoes) + 1,
		Texto:   texto,
		Tecnico: systemAuthor(tecnico),
		Data:    time.Now().UTC(),
	}
	updated, err := u.repo.AppendAnnotation(ctx, o.ID, a)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func systemAuthor(tecnico string) string {
	if tecnico == "" {
		return "Sistema"
	}
	return tecnico
}
