package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"evosystem/internal/client"
	"evosystem/internal/client/state"
	"evosystem/internal/domain/entities"
)

const requestTimeout = 15 * time.Second

// Bubble Tea messages. Commands only talk to the API; each message carries
// the server's answer so Update can apply it to the core on the event loop.

type loginDoneMsg struct {
	identity client.UserIdentity
	orders   []entities.ServiceOrder
	err      error
}

type ordersLoadedMsg struct {
	orders []entities.ServiceOrder
	err    error
}

type orderMutatedMsg struct {
	verb  string
	order entities.ServiceOrder
	err   error
}

type orderDeletedMsg struct {
	id  int
	err error
}

type usersLoadedMsg struct {
	users []entities.User
	err   error
}

type registerDoneMsg struct {
	registered bool
	users      []entities.User
	err        error
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// loginCmd authenticates and fetches the first order snapshot in one trip.
// A zero identity in the message means authentication itself failed.
func loginCmd(api state.API, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		identity, err := api.Login(ctx, username, password)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		orders, err := api.ListOrders(ctx)
		return loginDoneMsg{identity: identity, orders: orders, err: err}
	}
}

func loadOrdersCmd(api state.API) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		orders, err := api.ListOrders(ctx)
		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func createOrderCmd(api state.API, in client.NewOrder) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		created, err := api.CreateOrder(ctx, in)
		return orderMutatedMsg{verb: "criada", order: created, err: err}
	}
}

func assumeOrderCmd(api state.API, id int, tecnico string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		updated, err := api.AssignOrder(ctx, id, tecnico)
		return orderMutatedMsg{verb: "assumida", order: updated, err: err}
	}
}

func finalizeOrderCmd(api state.API, id int, notaSaida, tecnico string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		updated, err := api.FinalizeOrder(ctx, id, notaSaida, tecnico)
		return orderMutatedMsg{verb: "concluída", order: updated, err: err}
	}
}

func annotateOrderCmd(api state.API, id int, texto, tecnico string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		updated, err := api.AnnotateOrder(ctx, id, texto, tecnico)
		return orderMutatedMsg{verb: "anotada", order: updated, err: err}
	}
}

func deleteOrderCmd(api state.API, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		return orderDeletedMsg{id: id, err: api.DeleteOrder(ctx, id)}
	}
}

func loadUsersCmd(api state.API) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		users, err := api.ListUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

// registerUserCmd creates the user and refreshes the list. The registered
// flag tells Update the account exists even if the follow-up list failed.
func registerUserCmd(api state.API, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opCtx()
		defer cancel()
		if err := api.Register(ctx, username, password); err != nil {
			return registerDoneMsg{err: err}
		}
		users, err := api.ListUsers(ctx)
		return registerDoneMsg{registered: true, users: users, err: err}
	}
}
