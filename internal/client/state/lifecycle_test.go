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

// loggedInFixture wires a controller with a session already authenticated as
// the given user. No Login expectation is registered on the mock; the session
// state is set through the real login path once.
func loggedInFixture(t *testing.T, api *mock_state.MockAPI, username string, admin bool) (*LifecycleController, *OrderStore, *Session) {
	t.Helper()
	ctx := context.Background()
	api.EXPECT().Login(ctx, username, "pw").Return(client.UserIdentity{Username: username, Admin: admin}, nil)
	session := NewSession(api)
	if err := session.Login(ctx, username, "pw"); err != nil {
		t.Fatalf("fixture login failed: %v", err)
	}
	store := NewOrderStore(api)
	return NewLifecycleController(api, store, session), store, session
}

func TestLifecycleCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject non-positive quantity without calling the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, _, _ := loggedInFixture(t, api, "carlos", false)

		_, err := lc.Create(ctx, client.NewOrder{
			Item: "Prensa", Cliente: "Oficina", NotaEntrada: "NF-1", OM: "OM-1", Quantidade: 0, Descricao: "Revisão",
		})
		if !errors.Is(err, ErrQuantityNotPositive) {
			t.Errorf("expected ErrQuantityNotPositive, got %v", err)
		}
	})

	t.Run("should reject missing identifying fields without calling the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, _, _ := loggedInFixture(t, api, "carlos", false)

		_, err := lc.Create(ctx, client.NewOrder{Item: "Prensa", Quantidade: 1})
		if !errors.Is(err, ErrMissingFields) {
			t.Errorf("expected ErrMissingFields, got %v", err)
		}
	})

	t.Run("should default the technician to the session user and store the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "carlos", false)

		created := entities.ServiceOrder{ID: 10, Item: "Prensa", Status: entities.StatusOpen}
		api.EXPECT().
			CreateOrder(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, in client.NewOrder) (entities.ServiceOrder, error) {
				if in.Tecnico != "carlos" {
					t.Errorf("expected technician carlos, got %q", in.Tecnico)
				}
				return created, nil
			})

		got, err := lc.Create(ctx, client.NewOrder{
			Item: "Prensa", Cliente: "Oficina", NotaEntrada: "NF-1", OM: "OM-1", Quantidade: 1, Descricao: "Revisão",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != 10 {
			t.Errorf("expected id 10, got %d", got.ID)
		}
		if _, ok := store.Get(10); !ok {
			t.Error("created order must land in the store")
		}
	})

	t.Run("should not touch the store when the backend rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "carlos", false)
		api.EXPECT().CreateOrder(ctx, gomock.Any()).Return(entities.ServiceOrder{}, client.ErrBackendUnreachable)

		_, err := lc.Create(ctx, client.NewOrder{
			Item: "Prensa", Cliente: "Oficina", NotaEntrada: "NF-1", OM: "OM-1", Quantidade: 1, Descricao: "Revisão",
		})
		if !errors.Is(err, client.ErrBackendUnreachable) {
			t.Fatalf("expected ErrBackendUnreachable, got %v", err)
		}
		if store.Counts().Total != 0 {
			t.Error("store must stay empty after a failed create")
		}
	})
}

func TestLifecycleAssume(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject orders not in the local view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, _, _ := loggedInFixture(t, api, "carlos", false)

		_, err := lc.Assume(ctx, 99)
		if !errors.Is(err, ErrOrderUnknown) {
			t.Errorf("expected ErrOrderUnknown, got %v", err)
		}
	})

	t.Run("should reject orders that are not open without calling the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "carlos", false)
		store.Upsert(entities.ServiceOrder{ID: 4, Status: entities.StatusCompleted})

		_, err := lc.Assume(ctx, 4)
		if !errors.Is(err, ErrOrderNotOpen) {
			t.Errorf("expected ErrOrderNotOpen, got %v", err)
		}
	})

	t.Run("should assign under the session user and apply the acknowledged state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "carlos", false)
		store.Upsert(entities.ServiceOrder{ID: 4, Status: entities.StatusOpen})

		updated := entities.ServiceOrder{ID: 4, Status: entities.StatusInProgress, Tecnico: "carlos"}
		api.EXPECT().AssignOrder(ctx, 4, "carlos").Return(updated, nil)

		got, err := lc.Assume(ctx, 4)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Status != entities.StatusInProgress {
			t.Errorf("expected Em Manutenção, got %s", got.Status)
		}
		stored, _ := store.Get(4)
		if stored.Tecnico != "carlos" {
			t.Error("store must reflect the acknowledged assignment")
		}
	})

	t.Run("should keep the open state when the backend fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "carlos", false)
		store.Upsert(entities.ServiceOrder{ID: 4, Status: entities.StatusOpen})
		api.EXPECT().AssignOrder(ctx, 4, "carlos").Return(entities.ServiceOrder{}, client.ErrBackendUnreachable)

		if _, err := lc.Assume(ctx, 4); err == nil {
			t.Fatal("expected an error")
		}
		stored, _ := store.Get(4)
		if stored.Status != entities.StatusOpen {
			t.Error("failed assign must not mutate the local order")
		}
	})
}

func TestLifecycleFinalize(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject an empty outbound invoice without calling the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "carlos", false)
		store.Upsert(entities.ServiceOrder{ID: 4, Status: entities.StatusInProgress})

		_, err := lc.Finalize(ctx, 4, "   ")
		if !errors.Is(err, ErrEmptyOutboundInvoice) {
			t.Errorf("expected ErrEmptyOutboundInvoice, got %v", err)
		}
	})

	t.Run("should reject finalize on an open order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "carlos", false)
		store.Upsert(entities.ServiceOrder{ID: 4, Status: entities.StatusOpen})

		_, err := lc.Finalize(ctx, 4, "NFS-1")
		if !errors.Is(err, ErrOrderNotInProgress) {
			t.Errorf("expected ErrOrderNotInProgress, got %v", err)
		}
	})

	t.Run("should complete the order on acknowledgement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "carlos", false)
		store.Upsert(entities.ServiceOrder{ID: 4, Status: entities.StatusInProgress, Tecnico: "carlos"})

		updated := entities.ServiceOrder{ID: 4, Status: entities.StatusCompleted, NotaSaida: "NFS-1", Tecnico: "carlos"}
		api.EXPECT().FinalizeOrder(ctx, 4, "NFS-1", "carlos").Return(updated, nil)

		got, err := lc.Finalize(ctx, 4, "NFS-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.NotaSaida != "NFS-1" || got.Status != entities.StatusCompleted {
			t.Errorf("unexpected result %+v", got)
		}
	})
}

func TestLifecycleAnnotate(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject blank text without calling the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "carlos", false)
		store.Upsert(entities.ServiceOrder{ID: 4, Status: entities.StatusOpen})

		_, err := lc.Annotate(ctx, 4, "  ")
		if !errors.Is(err, ErrEmptyAnnotation) {
			t.Errorf("expected ErrEmptyAnnotation, got %v", err)
		}
	})

	t.Run("should append the note through the backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "carlos", false)
		store.Upsert(entities.ServiceOrder{ID: 4, Status: entities.StatusInProgress})

		updated := entities.ServiceOrder{ID: 4, Status: entities.StatusInProgress, Anotacoes: []entities.Annotation{{ID: 1, Texto: "troca de peça"}}}
		api.EXPECT().AnnotateOrder(ctx, 4, "troca de peça", "carlos").Return(updated, nil)

		got, err := lc.Annotate(ctx, 4, "troca de peça")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got.Anotacoes) != 1 {
			t.Errorf("expected 1 annotation, got %d", len(got.Anotacoes))
		}
	})
}

func TestLifecycleDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("should require the admin user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "carlos", false)
		store.Upsert(entities.ServiceOrder{ID: 4, Status: entities.StatusOpen})

		if err := lc.Delete(ctx, 4); !errors.Is(err, ErrAdminRequired) {
			t.Errorf("expected ErrAdminRequired, got %v", err)
		}
	})

	t.Run("should remove from the store only after the backend confirms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "admin", true)
		store.Upsert(entities.ServiceOrder{ID: 4, Status: entities.StatusOpen})
		api.EXPECT().DeleteOrder(ctx, 4).Return(nil)

		if err := lc.Delete(ctx, 4); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok := store.Get(4); ok {
			t.Error("order must be gone after a confirmed delete")
		}
	})

	t.Run("should keep the order when the backend fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mock_state.NewMockAPI(ctrl)
		lc, store, _ := loggedInFixture(t, api, "admin", true)
		store.Upsert(entities.ServiceOrder{ID: 4, Status: entities.StatusOpen})
		api.EXPECT().DeleteOrder(ctx, 4).Return(client.ErrNotFound)

		if err := lc.Delete(ctx, 4); !errors.Is(err, client.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if _, ok := store.Get(4); !ok {
			t.Error("failed delete must not remove the local order")
		}
	})
}
