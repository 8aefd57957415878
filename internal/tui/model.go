// Package tui is the terminal frontend. It renders the client-side core from
// internal/client/state and never talks to the backend directly; every
// mutation goes through the lifecycle controller so the validate-then-call
// rules hold regardless of which screen triggered it.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"evosystem/internal/client/state"
	"evosystem/internal/domain/entities"
)

// Core bundles the client-side state machine the screens operate on. It is
// owned by the Bubble Tea event loop: commands talk to the API only, and
// their results are applied to the core inside Update.
type Core struct {
	API       state.API
	Session   *state.Session
	Store     *state.OrderStore
	Lifecycle *state.LifecycleController
	Detail    *state.DetailViewModel
	Users     *state.UserManagementViewModel
}

func NewCore(api state.API) *Core {
	session := state.NewSession(api)
	store := state.NewOrderStore(api)
	lifecycle := state.NewLifecycleController(api, store, session)
	return &Core{
		API:       api,
		Session:   session,
		Store:     store,
		Lifecycle: lifecycle,
		Detail:    state.NewDetailViewModel(lifecycle, store),
		Users:     state.NewUserManagementViewModel(api),
	}
}

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenDetail
	screenCreate
	screenFinalize
	screenUsers
)

const createFieldCount = 7

var createFieldLabels = [createFieldCount]string{
	"Item", "Cliente", "NF de Entrada", "OM", "Quantidade", "Descrição", "Técnico",
}

// model is the Bubble Tea model. Commands run on their own goroutines while
// rendering continues, so they never touch the core: each carries its result
// back in a message and the handler applies it here, on the event loop. The
// busy flag only prevents dispatching a second command while one is in
// flight.
type model struct {
	core   *Core
	screen screen
	busy   bool

	status    string
	statusErr bool

	width  int
	height int

	// Rendering snapshot, refreshed from the store after every acknowledged
	// change.
	orders []entities.ServiceOrder
	counts state.StatusCounts
	cursor int

	loginUser  string
	loginPass  string
	loginFocus int

	createFields [createFieldCount]string
	createFocus  int

	finalizeNota string

	userFormUser string
	userFormPass string
	userFocus    int
}

func newModel(core *Core) model {
	return model{core: core, screen: screenLogin}
}

func (m model) Init() tea.Cmd {
	return nil
}

// setError sets the status as an error message (rendered in Red).
func (m *model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

// refreshSnapshot re-reads the store into the rendering fields.
func (m *model) refreshSnapshot() {
	m.orders = m.core.Store.List()
	m.counts = m.core.Store.Counts()
	if m.cursor >= len(m.orders) {
		m.cursor = len(m.orders) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) selectedOrder() (entities.ServiceOrder, bool) {
	if m.cursor < 0 || m.cursor >= len(m.orders) {
		return entities.ServiceOrder{}, false
	}
	return m.orders[m.cursor], true
}

// Run starts the program against the given core.
func Run(core *Core) error {
	p := tea.NewProgram(newModel(core), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
