// Package state holds the client-side application core: session, order store
// and lifecycle control. It validates locally, calls the API, and mutates its
// in-memory view only after the server acknowledges a change.
package state

import (
	"context"

	"evosystem/internal/client"
	"evosystem/internal/domain/entities"
)

// API is the slice of the HTTP client this package depends on. *client.Client
// satisfies it; tests substitute a mock.
type API interface {
	Login(ctx context.Context, username, password string) (client.UserIdentity, error)
	ListOrders(ctx context.Context) ([]entities.ServiceOrder, error)
	CreateOrder(ctx context.Context, in client.NewOrder) (entities.ServiceOrder, error)
	AssignOrder(ctx context.Context, id int, tecnico string) (entities.ServiceOrder, error)
	FinalizeOrder(ctx context.Context, id int, notaSaida, tecnico string) (entities.ServiceOrder, error)
	AnnotateOrder(ctx context.Context, id int, texto, tecnico string) (entities.ServiceOrder, error)
	DeleteOrder(ctx context.Context, id int) error
	ListUsers(ctx context.Context) ([]entities.User, error)
	Register(ctx context.Context, username, password string) error
}

var _ API = (*client.Client)(nil)
