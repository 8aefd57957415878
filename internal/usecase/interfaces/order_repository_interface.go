package interfaces

import (
	"context"

	"evosystem/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Conventions shared by all methods:
//   - Lookups return a zero-value order (ID == 0) with a nil error when the
//     id does not exist; only infrastructure failures produce errors.
//   - Transition updates are conditional on the expected current status so a
//     stale caller cannot skip or reverse the lifecycle.

type IOrderRepository interface {
	// Create assigns the next numeric id and persists the order.
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	// UpdateTransition moves the order from expected to next, recording the
	// technician and, for completion, the outbound invoice. Returns a zero
	// order when the id is absent or the status precondition fails.
	UpdateTransition(ctx context.Context, id int, expected, next entities.OrderStatus, tecnico, notaSaida string) (entities.ServiceOrder, error)
	// AppendAnnotation appends to the annotation list and returns the full
	// updated order. Existing annotations are never touched.
	AppendAnnotation(ctx context.Context, id int, a entities.Annotation) (entities.ServiceOrder, error)
	// Delete removes the order and its annotations. Reports whether an item
	// was actually deleted.
	Delete(ctx context.Context, id int) (bool, error)
}
