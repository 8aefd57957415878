package tui

import (
	"errors"
	"fmt"
	"strings"

	"evosystem/internal/client"
	"evosystem/internal/client/state"
)

func (m model) View() string {
	var body string
	switch m.screen {
	case screenLogin:
		body = m.viewLogin()
	case screenDashboard:
		body = m.viewDashboard()
	case screenDetail:
		body = m.viewDetail()
	case screenCreate:
		body = m.viewCreate()
	case screenFinalize:
		body = m.viewFinalize()
	case screenUsers:
		body = m.viewUsers()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.footerHint()))
	return b.String()
}

func (m model) viewHeader() string {
	left := titleStyle.Render("EvoSystem") + statusStyle.Render("  ·  Controle de Manutenção")
	if m.core.Session.LoggedIn() {
		who := m.core.Session.Username()
		if m.core.Session.IsAdmin() {
			who += " (admin)"
		}
		left += dimStyle.Render("  ·  " + who)
	}
	return headerBarStyle.Render(left)
}

func (m model) viewStatusLine() string {
	switch {
	case m.busy:
		return statusStyle.Render(m.status)
	case m.statusErr:
		return errorStyle.Render(m.status)
	case m.status != "":
		return successStyle.Render(m.status)
	default:
		return ""
	}
}

func (m model) footerHint() string {
	switch m.screen {
	case screenLogin:
		return "tab campo · enter entrar · esc sair"
	case screenDashboard:
		hint := "↑/↓ navegar · enter detalhes · n nova OS · a assumir · r atualizar · q sair"
		if m.core.Session.IsAdmin() {
			hint += " · u usuários · x excluir"
		}
		return hint
	case screenDetail:
		return "digite para anotar · enter enviar · ctrl+a assumir · ctrl+f concluir · esc voltar"
	case screenCreate:
		return "tab campo · enter criar · esc cancelar"
	case screenFinalize:
		return "digite a NF de saída · enter concluir · esc voltar"
	case screenUsers:
		return "tab campo · enter cadastrar · esc voltar"
	}
	return ""
}

func (m model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Login"))
	b.WriteString("\n\n")
	b.WriteString(renderField("Usuário", m.loginUser, m.loginFocus == 0, false))
	b.WriteString("\n")
	b.WriteString(renderField("Senha", m.loginPass, m.loginFocus == 1, true))
	return boxStyle.Render(b.String())
}

func (m model) viewDashboard() string {
	var b strings.Builder

	c := m.counts
	summary := fmt.Sprintf("%s  %s  %s  %s",
		statusOpenStyle.Render(fmt.Sprintf("Em Aberto: %d", c.Open)),
		statusInProgressStyle.Render(fmt.Sprintf("Em Manutenção: %d", c.InProgress)),
		statusCompletedStyle.Render(fmt.Sprintf("Concluídas: %d", c.Completed)),
		dimStyle.Render(fmt.Sprintf("Total: %d", c.Total)),
	)
	b.WriteString(summary)
	b.WriteString("\n\n")

	if len(m.orders) == 0 {
		b.WriteString(dimStyle.Render("Nenhuma Ordem de Serviço cadastrada."))
		return b.String()
	}

	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("   %-4s %-24s %-18s %-14s %s", "ID", "Item", "Cliente", "Status", "Técnico")))
	b.WriteString("\n")
	for i, o := range m.orders {
		cursor := "  "
		line := fmt.Sprintf(" %-4d %-24s %-18s %-14s %s",
			o.ID, truncate(o.Item, 24), truncate(o.Cliente, 18), o.Status, o.Tecnico)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString(cursor + statusStyleFor(string(o.Status)).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) viewDetail() string {
	order, ok := m.core.Detail.Order()
	if !ok {
		return errorStyle.Render("A Ordem de Serviço selecionada não está mais disponível.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("OS #%d · %s", order.ID, order.Item)))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Cliente: ") + order.Cliente)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Status: ") + statusStyleFor(string(order.Status)).Render(string(order.Status)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("NF Entrada: ") + order.NotaEntrada)
	if order.NotaSaida != "" {
		b.WriteString("   " + labelStyle.Render("NF Saída: ") + order.NotaSaida)
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("OM: ") + order.OM + "   " + labelStyle.Render("Qtd: ") + fmt.Sprint(order.Quantidade))
	b.WriteString("\n")
	if order.Tecnico != "" {
		b.WriteString(labelStyle.Render("Técnico: ") + order.Tecnico)
		b.WriteString("\n")
	}
	if order.Descricao != "" {
		b.WriteString(labelStyle.Render("Descrição: ") + order.Descricao)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tableHeaderStyle.Render("Anotações"))
	b.WriteString("\n")
	for _, note := range m.core.Detail.Annotations() {
		b.WriteString(dimStyle.Render(note.Data.Format("02/01/2006 15:04")))
		b.WriteString(fmt.Sprintf("  %s  %s\n", labelStyle.Render(note.Tecnico), note.Texto))
	}

	b.WriteString("\n")
	b.WriteString(renderField("Nova anotação", m.core.Detail.Draft(), true, false))
	return b.String()
}

func (m model) viewCreate() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Nova Ordem de Serviço"))
	b.WriteString("\n\n")
	for i, label := range createFieldLabels {
		b.WriteString(renderField(label, m.createFields[i], m.createFocus == i, false))
		b.WriteString("\n")
	}
	return modalStyle.Render(b.String())
}

func (m model) viewFinalize() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Concluir OS #%d", m.core.Detail.SelectedID())))
	b.WriteString("\n\n")
	b.WriteString(renderField("NF de Saída/Faturamento", m.finalizeNota, true, false))
	return modalStyle.Render(b.String())
}

func (m model) viewUsers() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Gestão de Usuários"))
	b.WriteString("\n\n")
	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-4s %s", "ID", "Usuário")))
	b.WriteString("\n")
	for _, u := range m.core.Users.Users() {
		b.WriteString(fmt.Sprintf("%-4d %s\n", u.ID, u.Username))
	}
	b.WriteString("\n")
	b.WriteString(tableHeaderStyle.Render("Novo usuário"))
	b.WriteString("\n")
	b.WriteString(renderField("Usuário", m.userFormUser, m.userFocus == 0, false))
	b.WriteString("\n")
	b.WriteString(renderField("Senha", m.userFormPass, m.userFocus == 1, true))
	return b.String()
}

func renderField(label, value string, focused, masked bool) string {
	if masked {
		value = strings.Repeat("*", len([]rune(value)))
	}
	rendered := labelStyle.Render(fmt.Sprintf("%-24s", label+":")) + value
	if focused {
		return cursorStyle.Render("> ") + rendered + cursorStyle.Render("▌")
	}
	return "  " + rendered
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// friendlyError translates the client error taxonomy into the Portuguese
// wording the screens show. Unknown errors pass through as-is.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, client.ErrBackendUnreachable):
		return "Backend indisponível. Verifique se a API está no ar."
	case errors.Is(err, client.ErrInvalidCredentials):
		return "Credenciais inválidas."
	case errors.Is(err, client.ErrUsernameTaken):
		return "Nome de usuário já existe."
	case errors.Is(err, client.ErrNotFound):
		return "Ordem de Serviço não encontrada no servidor."
	case errors.Is(err, state.ErrQuantityNotPositive):
		return "A quantidade deve ser maior que zero."
	case errors.Is(err, state.ErrMissingFields):
		return "Preencha item, cliente, NF de entrada, OM e descrição."
	case errors.Is(err, state.ErrEmptyAnnotation):
		return "A anotação não pode ser vazia."
	case errors.Is(err, state.ErrEmptyOutboundInvoice):
		return "Informe a NF de saída para concluir."
	case errors.Is(err, state.ErrOrderNotOpen):
		return "A OS precisa estar Em Aberto para ser assumida."
	case errors.Is(err, state.ErrOrderNotInProgress):
		return "A OS precisa estar Em Manutenção para ser concluída."
	case errors.Is(err, state.ErrOrderUnknown):
		return "A OS não está na lista local. Atualize com r."
	case errors.Is(err, state.ErrAdminRequired):
		return "Somente o administrador pode executar esta ação."
	case errors.Is(err, state.ErrMissingCredentials):
		return "Informe usuário e senha."
	}
	var srvErr *client.ServerError
	if errors.As(err, &srvErr) && srvErr.Message != "" {
		return srvErr.Message
	}
	return err.Error()
}
