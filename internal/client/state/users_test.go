package state

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"evosystem/internal/client"
	mock_state "evosystem/internal/client/state/mocks"
	"evosystem/internal/domain/entities"
)

func TestUserManagementRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("should replace the list on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		api.EXPECT().ListUsers(ctx).Return([]entities.User{{ID: 1, Username: "admin"}}, nil)

		m := NewUserManagementViewModel(api)
		if err := m.Refresh(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(m.Users()) != 1 {
			t.Errorf("expected 1 user, got %d", len(m.Users()))
		}
	})

	t.Run("should keep the stale list and report the failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		api.EXPECT().ListUsers(ctx).Return([]entities.User{{ID: 1, Username: "admin"}}, nil)
		api.EXPECT().ListUsers(ctx).Return(nil, client.ErrBackendUnreachable)

		m := NewUserManagementViewModel(api)
		if err := m.Refresh(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := m.Refresh(ctx); !errors.Is(err, client.ErrBackendUnreachable) {
			t.Fatalf("expected ErrBackendUnreachable, got %v", err)
		}
		if len(m.Users()) != 1 {
			t.Error("failed refresh must not wipe the stale list")
		}
	})
}

func TestUserManagementRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject blank credentials without calling the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)

		m := NewUserManagementViewModel(api)
		m.SetForm("  ", "")

		if err := m.Register(ctx); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("should register, reload and clear the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		api.EXPECT().Register(ctx, "carlos", "segredo").Return(nil)
		api.EXPECT().ListUsers(ctx).Return([]entities.User{
			{ID: 1, Username: "admin"},
			{ID: 2, Username: "carlos"},
		}, nil)

		m := NewUserManagementViewModel(api)
		m.SetForm("carlos", "segredo")

		if err := m.Register(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(m.Users()) != 2 {
			t.Errorf("expected 2 users after reload, got %d", len(m.Users()))
		}
		if u, p := m.Form(); u != "" || p != "" {
			t.Error("form must be cleared after a successful registration")
		}
	})

	t.Run("should clear the form even when the follow-up refresh fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		api.EXPECT().Register(ctx, "carlos", "segredo").Return(nil)
		api.EXPECT().ListUsers(ctx).Return(nil, client.ErrBackendUnreachable)

		m := NewUserManagementViewModel(api)
		m.SetForm("carlos", "segredo")

		err := m.Register(ctx)
		if !errors.Is(err, client.ErrBackendUnreachable) {
			t.Fatalf("expected the refresh failure to surface, got %v", err)
		}
		if u, p := m.Form(); u != "" || p != "" {
			t.Error("an acknowledged registration must clear the form so it cannot be resubmitted")
		}
	})

	t.Run("should keep the form when the username is taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		api.EXPECT().Register(ctx, "admin", "123").Return(client.ErrUsernameTaken)

		m := NewUserManagementViewModel(api)
		m.SetForm("admin", "123")

		if err := m.Register(ctx); !errors.Is(err, client.ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
		if u, _ := m.Form(); u != "admin" {
			t.Error("failed registration must keep the form contents")
		}
	})
}
