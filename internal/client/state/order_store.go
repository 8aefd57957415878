package state

import (
	"context"
	"sort"

	"evosystem/internal/domain/entities"
)

// StatusCounts is the dashboard summary derived from the store contents.
type StatusCounts struct {
	Open       int
	InProgress int
	Completed  int
	Total      int
}

// OrderStore is the client's in-memory view of the order list. It is the
// single source of truth for rendering; it changes only through LoadAll and
// through acknowledged mutations applied via Upsert and Remove.
type OrderStore struct {
	api    API
	orders map[int]entities.ServiceOrder
}

func NewOrderStore(api API) *OrderStore {
	return &OrderStore{api: api, orders: make(map[int]entities.ServiceOrder)}
}

// LoadAll replaces the store contents with the server's list. On failure the
// previous contents are kept so the UI can keep showing stale data alongside
// the error.
func (s *OrderStore) LoadAll(ctx context.Context) error {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		return err
	}
	s.Replace(orders)
	return nil
}

// Replace swaps the contents for a server snapshot fetched by the caller.
func (s *OrderStore) Replace(orders []entities.ServiceOrder) {
	next := make(map[int]entities.ServiceOrder, len(orders))
	for _, o := range orders {
		next[o.ID] = o
	}
	s.orders = next
}

// Upsert stores a server-acknowledged order, inserting or replacing by id.
func (s *OrderStore) Upsert(order entities.ServiceOrder) {
	s.orders[order.ID] = order
}

// Remove drops an order from the view. Removing an unknown id is a no-op.
func (s *OrderStore) Remove(id int) {
	delete(s.orders, id)
}

// Get returns the order and whether it is present.
func (s *OrderStore) Get(id int) (entities.ServiceOrder, bool) {
	o, ok := s.orders[id]
	return o, ok
}

// List returns the orders sorted by id ascending.
func (s *OrderStore) List() []entities.ServiceOrder {
	out := make([]entities.ServiceOrder, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Counts recomputes the status summary from the current contents. It is never
// cached, so it cannot drift from the list.
func (s *OrderStore) Counts() StatusCounts {
	var c StatusCounts
	for _, o := range s.orders {
		switch o.Status {
		case entities.StatusOpen:
			c.Open++
		case entities.StatusInProgress:
			c.InProgress++
		case entities.StatusCompleted:
			c.Completed++
		}
		c.Total++
	}
	return c
}
