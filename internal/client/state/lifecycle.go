package state

import (
	"context"
	"errors"
	"strings"

	"evosystem/internal/client"
	"evosystem/internal/domain/entities"
)

// Validation sentinels. These are checked before any network call so the
// backend is never reached with input the client already knows is invalid.
var (
	ErrQuantityNotPositive  = errors.New("quantity must be greater than zero")
	ErrMissingFields        = errors.New("item, cliente, nota de entrada, om and descricao are required")
	ErrEmptyAnnotation      = errors.New("annotation text must not be empty")
	ErrEmptyOutboundInvoice = errors.New("outbound invoice must not be empty")
	ErrOrderUnknown         = errors.New("order is not in the local view")
	ErrOrderNotOpen         = errors.New("order is not open")
	ErrOrderNotInProgress   = errors.New("order is not under maintenance")
	ErrAdminRequired        = errors.New("operation requires the admin user")
)

// LifecycleController drives order mutations. Every operation validates
// locally first, then calls the API, and applies the result to the store only
// after the server acknowledged it.
//
// The Prepare/Check methods expose the local validation on its own, for
// callers that run the network call on another goroutine and apply the
// result to the store themselves (the terminal frontend does this from its
// update loop).
type LifecycleController struct {
	api     API
	store   *OrderStore
	session *Session
}

func NewLifecycleController(api API, store *OrderStore, session *Session) *LifecycleController {
	return &LifecycleController{api: api, store: store, session: session}
}

// PrepareCreate validates the creation fields and fills the technician
// default from the session. No network.
func (c *LifecycleController) PrepareCreate(in client.NewOrder) (client.NewOrder, error) {
	if strings.TrimSpace(in.Item) == "" ||
		strings.TrimSpace(in.Cliente) == "" ||
		strings.TrimSpace(in.NotaEntrada) == "" ||
		strings.TrimSpace(in.OM) == "" ||
		strings.TrimSpace(in.Descricao) == "" {
		return client.NewOrder{}, ErrMissingFields
	}
	if in.Quantidade <= 0 {
		return client.NewOrder{}, ErrQuantityNotPositive
	}
	if strings.TrimSpace(in.Tecnico) == "" {
		in.Tecnico = c.session.Username()
	}
	return in, nil
}

// CheckAssume verifies the order is known locally and still open.
func (c *LifecycleController) CheckAssume(id int) error {
	order, ok := c.store.Get(id)
	if !ok {
		return ErrOrderUnknown
	}
	if order.Status != entities.StatusOpen {
		return ErrOrderNotOpen
	}
	return nil
}

// CheckFinalize verifies the order is under maintenance and the outbound
// invoice is present.
func (c *LifecycleController) CheckFinalize(id int, notaSaida string) error {
	order, ok := c.store.Get(id)
	if !ok {
		return ErrOrderUnknown
	}
	if order.Status != entities.StatusInProgress {
		return ErrOrderNotInProgress
	}
	if strings.TrimSpace(notaSaida) == "" {
		return ErrEmptyOutboundInvoice
	}
	return nil
}

// CheckAnnotate verifies the order is known locally and the text is not blank.
func (c *LifecycleController) CheckAnnotate(id int, texto string) error {
	if _, ok := c.store.Get(id); !ok {
		return ErrOrderUnknown
	}
	if strings.TrimSpace(texto) == "" {
		return ErrEmptyAnnotation
	}
	return nil
}

// CheckDelete verifies the session may delete and the order is known locally.
func (c *LifecycleController) CheckDelete(id int) error {
	if !c.session.IsAdmin() {
		return ErrAdminRequired
	}
	if _, ok := c.store.Get(id); !ok {
		return ErrOrderUnknown
	}
	return nil
}

func (c *LifecycleController) Create(ctx context.Context, in client.NewOrder) (entities.ServiceOrder, error) {
	in, err := c.PrepareCreate(in)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	created, err := c.api.CreateOrder(ctx, in)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	c.store.Upsert(created)
	return created, nil
}

// Assume moves an open order to Em Manutenção under the session user.
func (c *LifecycleController) Assume(ctx context.Context, id int) (entities.ServiceOrder, error) {
	if err := c.CheckAssume(id); err != nil {
		return entities.ServiceOrder{}, err
	}
	updated, err := c.api.AssignOrder(ctx, id, c.session.Username())
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	c.store.Upsert(updated)
	return updated, nil
}

// Finalize completes an order under maintenance with its outbound invoice.
func (c *LifecycleController) Finalize(ctx context.Context, id int, notaSaida string) (entities.ServiceOrder, error) {
	if err := c.CheckFinalize(id, notaSaida); err != nil {
		return entities.ServiceOrder{}, err
	}
	updated, err := c.api.FinalizeOrder(ctx, id, notaSaida, c.session.Username())
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	c.store.Upsert(updated)
	return updated, nil
}

func (c *LifecycleController) Annotate(ctx context.Context, id int, texto string) (entities.ServiceOrder, error) {
	if err := c.CheckAnnotate(id, texto); err != nil {
		return entities.ServiceOrder{}, err
	}
	updated, err := c.api.AnnotateOrder(ctx, id, texto, c.session.Username())
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	c.store.Upsert(updated)
	return updated, nil
}

// Delete removes an order. Only the admin user may delete.
func (c *LifecycleController) Delete(ctx context.Context, id int) error {
	if err := c.CheckDelete(id); err != nil {
		return err
	}
	if err := c.api.DeleteOrder(ctx, id); err != nil {
		return err
	}
	c.store.Remove(id)
	return nil
}
