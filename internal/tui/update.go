package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"evosystem/internal/client"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loginDoneMsg:
		return m.handleLoginDone(msg)
	case ordersLoadedMsg:
		return m.handleOrdersLoaded(msg)
	case orderMutatedMsg:
		return m.handleOrderMutated(msg)
	case orderDeletedMsg:
		return m.handleOrderDeleted(msg)
	case usersLoadedMsg:
		return m.handleUsersLoaded(msg)
	case registerDoneMsg:
		return m.handleRegisterDone(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// A command is in flight; the screens stay read-only until its
		// message lands.
		if m.busy {
			return m, nil
		}
		switch m.screen {
		case screenLogin:
			return m.updateLogin(msg)
		case screenDashboard:
			return m.updateDashboard(msg)
		case screenDetail:
			return m.updateDetail(msg)
		case screenCreate:
			return m.updateCreate(msg)
		case screenFinalize:
			return m.updateFinalize(msg)
		case screenUsers:
			return m.updateUsers(msg)
		}
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Message handlers
// ---------------------------------------------------------------------------

func (m model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.identity.Username == "" {
		m.setError(friendlyError(msg.err))
		return m, nil
	}
	m.core.Session.Establish(msg.identity)
	m.core.Store.Replace(msg.orders)
	m.refreshSnapshot()
	m.screen = screenDashboard
	m.loginPass = ""
	if msg.err != nil {
		m.setError(friendlyError(msg.err))
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Bem-vindo, %s.", m.core.Session.Username()))
	return m, nil
}

func (m model) handleOrdersLoaded(msg ordersLoadedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.setError(friendlyError(msg.err))
		return m, nil
	}
	m.core.Store.Replace(msg.orders)
	m.refreshSnapshot()
	m.setStatus("Lista atualizada.")
	return m, nil
}

func (m model) handleOrderMutated(msg orderMutatedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.setError(friendlyError(msg.err))
		return m, nil
	}
	m.core.Store.Upsert(msg.order)
	m.refreshSnapshot()
	m.setStatus(fmt.Sprintf("Ordem de Serviço %s.", msg.verb))
	if msg.verb == "anotada" {
		m.core.Detail.SetDraft("")
	}
	switch m.screen {
	case screenCreate:
		m.createFields = [createFieldCount]string{}
		m.createFocus = 0
		m.screen = screenDashboard
	case screenFinalize:
		m.finalizeNota = ""
		m.screen = screenDetail
	}
	return m, nil
}

func (m model) handleOrderDeleted(msg orderDeletedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.setError(friendlyError(msg.err))
		return m, nil
	}
	m.core.Store.Remove(msg.id)
	m.refreshSnapshot()
	m.screen = screenDashboard
	m.setStatus(fmt.Sprintf("Ordem de Serviço #%d excluída.", msg.id))
	return m, nil
}

func (m model) handleUsersLoaded(msg usersLoadedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.setError(friendlyError(msg.err))
		return m, nil
	}
	m.core.Users.ApplyUsers(msg.users)
	m.setStatus("Usuários carregados.")
	return m, nil
}

func (m model) handleRegisterDone(msg registerDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if !msg.registered {
		m.setError(friendlyError(msg.err))
		return m, nil
	}
	// The account exists from here on, even if refreshing the list failed;
	// keeping the form filled would invite a duplicate submission.
	m.core.Users.ClearForm()
	m.userFormUser = ""
	m.userFormPass = ""
	m.userFocus = 0
	if msg.err != nil {
		m.setError(friendlyError(msg.err))
		return m, nil
	}
	m.core.Users.ApplyUsers(msg.users)
	m.setStatus("Usuário cadastrado.")
	return m, nil
}

// ---------------------------------------------------------------------------
// Key handlers
// ---------------------------------------------------------------------------

func (m model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab:
		m.loginFocus = 1 - m.loginFocus
		return m, nil
	case tea.KeyEnter:
		if m.loginUser == "" || m.loginPass == "" {
			m.setError("Informe usuário e senha.")
			return m, nil
		}
		m.busy = true
		m.setStatus("Autenticando...")
		return m, loginCmd(m.core.API, m.loginUser, m.loginPass)
	case tea.KeyBackspace:
		if m.loginFocus == 0 {
			m.loginUser = trimLastRune(m.loginUser)
		} else {
			m.loginPass = trimLastRune(m.loginPass)
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		if m.loginFocus == 0 {
			m.loginUser += string(msg.Runes)
		} else {
			m.loginPass += string(msg.Runes)
		}
		return m, nil
	}
	return m, nil
}

func (m model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.core.Session.Logout()
		m.loginUser, m.loginPass, m.loginFocus = "", "", 0
		m.orders = nil
		m.screen = screenLogin
		m.setStatus("Sessão encerrada.")
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.orders)-1 {
			m.cursor++
		}
		return m, nil
	case "r":
		m.busy = true
		m.setStatus("Atualizando...")
		return m, loadOrdersCmd(m.core.API)
	case "n":
		m.screen = screenCreate
		m.createFocus = 0
		m.setStatus("")
		return m, nil
	case "enter":
		order, ok := m.selectedOrder()
		if !ok {
			return m, nil
		}
		m.core.Detail.Select(order.ID)
		m.screen = screenDetail
		m.setStatus("")
		return m, nil
	case "a":
		order, ok := m.selectedOrder()
		if !ok {
			return m, nil
		}
		if err := m.core.Lifecycle.CheckAssume(order.ID); err != nil {
			m.setError(friendlyError(err))
			return m, nil
		}
		m.busy = true
		m.setStatus("Assumindo serviço...")
		return m, assumeOrderCmd(m.core.API, order.ID, m.core.Session.Username())
	case "u":
		if !m.core.Session.IsAdmin() {
			m.setError("Somente o administrador acessa a gestão de usuários.")
			return m, nil
		}
		m.screen = screenUsers
		m.busy = true
		m.setStatus("Carregando usuários...")
		return m, loadUsersCmd(m.core.API)
	case "x":
		order, ok := m.selectedOrder()
		if !ok {
			return m, nil
		}
		if err := m.core.Lifecycle.CheckDelete(order.ID); err != nil {
			m.setError(friendlyError(err))
			return m, nil
		}
		m.busy = true
		m.setStatus("Excluindo...")
		return m, deleteOrderCmd(m.core.API, order.ID)
	}
	return m, nil
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.core.Detail.SetDraft("")
		m.screen = screenDashboard
		m.setStatus("")
		return m, nil
	case tea.KeyEnter:
		id := m.core.Detail.SelectedID()
		texto := m.core.Detail.Draft()
		if err := m.core.Lifecycle.CheckAnnotate(id, texto); err != nil {
			m.setError(friendlyError(err))
			return m, nil
		}
		m.busy = true
		m.setStatus("Enviando anotação...")
		return m, annotateOrderCmd(m.core.API, id, texto, m.core.Session.Username())
	case tea.KeyBackspace:
		m.core.Detail.SetDraft(trimLastRune(m.core.Detail.Draft()))
		return m, nil
	case tea.KeySpace:
		m.core.Detail.SetDraft(m.core.Detail.Draft() + " ")
		return m, nil
	case tea.KeyCtrlF:
		m.screen = screenFinalize
		m.finalizeNota = ""
		m.setStatus("")
		return m, nil
	case tea.KeyCtrlA:
		if id := m.core.Detail.SelectedID(); id != 0 {
			if err := m.core.Lifecycle.CheckAssume(id); err != nil {
				m.setError(friendlyError(err))
				return m, nil
			}
			m.busy = true
			m.setStatus("Assumindo serviço...")
			return m, assumeOrderCmd(m.core.API, id, m.core.Session.Username())
		}
		return m, nil
	case tea.KeyRunes:
		m.core.Detail.SetDraft(m.core.Detail.Draft() + string(msg.Runes))
		return m, nil
	}
	return m, nil
}

func (m model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.createFields = [createFieldCount]string{}
		m.createFocus = 0
		m.screen = screenDashboard
		m.setStatus("")
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.createFocus = (m.createFocus + 1) % createFieldCount
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.createFocus = (m.createFocus + createFieldCount - 1) % createFieldCount
		return m, nil
	case tea.KeyEnter:
		in, err := m.createInput()
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		in, err = m.core.Lifecycle.PrepareCreate(in)
		if err != nil {
			m.setError(friendlyError(err))
			return m, nil
		}
		m.busy = true
		m.setStatus("Criando Ordem de Serviço...")
		return m, createOrderCmd(m.core.API, in)
	case tea.KeyBackspace:
		m.createFields[m.createFocus] = trimLastRune(m.createFields[m.createFocus])
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		m.createFields[m.createFocus] += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

// createInput assembles the creation payload from the form. Quantity parsing
// happens here; the remaining validation lives in the lifecycle controller.
func (m model) createInput() (client.NewOrder, error) {
	qty := strings.TrimSpace(m.createFields[4])
	quantidade, err := strconv.Atoi(qty)
	if err != nil {
		return client.NewOrder{}, fmt.Errorf("quantidade inválida: %q", qty)
	}
	return client.NewOrder{
		Item:        strings.TrimSpace(m.createFields[0]),
		Cliente:     strings.TrimSpace(m.createFields[1]),
		NotaEntrada: strings.TrimSpace(m.createFields[2]),
		OM:          strings.TrimSpace(m.createFields[3]),
		Quantidade:  quantidade,
		Descricao:   strings.TrimSpace(m.createFields[5]),
		Tecnico:     strings.TrimSpace(m.createFields[6]),
	}, nil
}

func (m model) updateFinalize(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.finalizeNota = ""
		m.screen = screenDetail
		m.setStatus("")
		return m, nil
	case tea.KeyEnter:
		id := m.core.Detail.SelectedID()
		if err := m.core.Lifecycle.CheckFinalize(id, m.finalizeNota); err != nil {
			m.setError(friendlyError(err))
			return m, nil
		}
		m.busy = true
		m.setStatus("Concluindo serviço...")
		return m, finalizeOrderCmd(m.core.API, id, m.finalizeNota, m.core.Session.Username())
	case tea.KeyBackspace:
		m.finalizeNota = trimLastRune(m.finalizeNota)
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		m.finalizeNota += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m model) updateUsers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.userFormUser, m.userFormPass, m.userFocus = "", "", 0
		m.screen = screenDashboard
		m.setStatus("")
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab:
		m.userFocus = 1 - m.userFocus
		return m, nil
	case tea.KeyEnter:
		m.core.Users.SetForm(m.userFormUser, m.userFormPass)
		if err := m.core.Users.CheckForm(); err != nil {
			m.setError(friendlyError(err))
			return m, nil
		}
		m.busy = true
		m.setStatus("Cadastrando usuário...")
		return m, registerUserCmd(m.core.API, m.userFormUser, m.userFormPass)
	case tea.KeyBackspace:
		if m.userFocus == 0 {
			m.userFormUser = trimLastRune(m.userFormUser)
		} else {
			m.userFormPass = trimLastRune(m.userFormPass)
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		if m.userFocus == 0 {
			m.userFormUser += string(msg.Runes)
		} else {
			m.userFormPass += string(msg.Runes)
		}
		return m, nil
	}
	return m, nil
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
