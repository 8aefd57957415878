package state

import (
	"context"
	"errors"
	"strings"

	"evosystem/internal/domain/entities"
)

var ErrMissingCredentials = errors.New("username and password are required")

// UserManagementViewModel backs the admin user screen: the registered user
// list plus the new-user form.
type UserManagementViewModel struct {
	api      API
	users    []entities.User
	username string
	password string
}

func NewUserManagementViewModel(api API) *UserManagementViewModel {
	return &UserManagementViewModel{api: api}
}

// Refresh reloads the user list. On failure the previous list is kept and the
// error is returned for display; a failed refresh is never silent.
func (m *UserManagementViewModel) Refresh(ctx context.Context) error {
	users, err := m.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	m.ApplyUsers(users)
	return nil
}

func (m *UserManagementViewModel) Users() []entities.User {
	return m.users
}

func (m *UserManagementViewModel) SetForm(username, password string) {
	m.username = username
	m.password = password
}

func (m *UserManagementViewModel) Form() (username, password string) {
	return m.username, m.password
}

// Register creates the user from the form, then reloads the list. The form
// is cleared as soon as the registration itself is acknowledged, so a failed
// follow-up refresh cannot lead to resubmitting an account that already
// exists; the refresh error is still returned for display.
func (m *UserManagementViewModel) Register(ctx context.Context) error {
	if err := m.CheckForm(); err != nil {
		return err
	}
	if err := m.api.Register(ctx, m.username, m.password); err != nil {
		return err
	}
	m.ClearForm()
	return m.Refresh(ctx)
}

// CheckForm validates the new-user form without touching the network.
func (m *UserManagementViewModel) CheckForm() error {
	if strings.TrimSpace(m.username) == "" || strings.TrimSpace(m.password) == "" {
		return ErrMissingCredentials
	}
	return nil
}

func (m *UserManagementViewModel) ClearForm() {
	m.username = ""
	m.password = ""
}

// ApplyUsers installs a user list fetched by the caller.
func (m *UserManagementViewModel) ApplyUsers(users []entities.User) {
	m.users = users
}
