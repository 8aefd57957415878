package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"evosystem/internal/domain/entities"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api")
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve admin capability at login", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Login bem-sucedido!", "user": "admin"})
		})

		identity, err := c.Login(ctx, "admin", "123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if identity.Username != "admin" || !identity.Admin {
			t.Errorf("expected admin identity, got %+v", identity)
		}
	})

	t.Run("should not flag regular users as admin", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"success": true, "user": "carlos"})
		})

		identity, err := c.Login(ctx, "carlos", "x")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if identity.Admin {
			t.Error("expected non-admin identity")
		}
	})

	t.Run("should map 401 to invalid credentials", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Credenciais inválidas."})
		})

		_, err := c.Login(ctx, "admin", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("should wrap transport failures as backend unreachable", func(t *testing.T) {
		c := New("http://127.0.0.1:1/api")
		_, err := c.Login(ctx, "admin", "123")
		if !errors.Is(err, ErrBackendUnreachable) {
			t.Errorf("expected ErrBackendUnreachable, got %v", err)
		}
	})
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("should decode the order list", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": 1, "item": "Máquina de Café", "status": "Em Aberto"},
				{"id": 2, "item": "Forno Industrial", "status": "Concluído"},
			})
		})

		orders, err := c.ListOrders(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(orders))
		}
		if orders[1].Status != entities.StatusCompleted {
			t.Errorf("expected status Concluído, got %s", orders[1].Status)
		}
	})

	t.Run("should surface server errors with the backend message", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"message": "internal error"})
		})

		_, err := c.ListOrders(ctx)
		var srvErr *ServerError
		if !errors.As(err, &srvErr) {
			t.Fatalf("expected ServerError, got %v", err)
		}
		if srvErr.StatusCode != http.StatusInternalServerError || srvErr.Message != "internal error" {
			t.Errorf("unexpected server error: %+v", srvErr)
		}
	})
}

func TestOrderMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("should post creation payload and decode the created order", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]any
			json.NewDecoder(r.Body).Decode(&payload)
			if payload["notaEntrada"] != "NF-1" || payload["om"] != "OM-9" {
				t.Errorf("unexpected payload: %v", payload)
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"id": 7, "item": "Empilhadeira", "status": "Em Aberto"})
		})

		created, err := c.CreateOrder(ctx, NewOrder{
			Item: "Empilhadeira", Cliente: "Log Ltda", NotaEntrada: "NF-1", OM: "OM-9", Quantidade: 1,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if created.ID != 7 {
			t.Errorf("expected id 7, got %d", created.ID)
		}
	})

	t.Run("should map 404 on assign to not found", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"message": "Ordem de Serviço não encontrada"})
		})

		_, err := c.AssignOrder(ctx, 99, "carlos")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("should hit the finalize route with the outbound invoice", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/orders/3/finalize" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			var payload map[string]string
			json.NewDecoder(r.Body).Decode(&payload)
			if payload["notaSaida"] != "NFS-456" {
				t.Errorf("expected notaSaida NFS-456, got %q", payload["notaSaida"])
			}
			json.NewEncoder(w).Encode(map[string]any{"id": 3, "status": "Concluído", "notaSaida": "NFS-456"})
		})

		updated, err := c.FinalizeOrder(ctx, 3, "NFS-456", "carlos")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if updated.Status != entities.StatusCompleted {
			t.Errorf("expected Concluído, got %s", updated.Status)
		}
	})

	t.Run("should delete without decoding a body", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete || r.URL.Path != "/api/orders/5" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]any{"message": "ok"})
		})

		if err := c.DeleteOrder(ctx, 5); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("should succeed when the backend accepts the user", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Usuário carlos cadastrado com sucesso."})
		})

		if err := c.Register(ctx, "carlos", "segredo"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("should map 409 to username taken", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Nome de usuário já existe."})
		})

		err := c.Register(ctx, "admin", "123")
		if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got %v", err)
		}
	})
}
