package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evosystem/internal/adapter/http/handlers/mocks"
	"evosystem/internal/domain/entities"
	"evosystem/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func orderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/orders", h.ListOrders)
	r.POST("/api/orders", h.CreateOrder)
	r.PUT("/api/orders/:id/assign", h.AssignOrder)
	r.PUT("/api/orders/:id/finalize", h.FinalizeOrder)
	r.POST("/api/orders/:id/annotate", h.AnnotateOrder)
	r.DELETE("/api/orders/:id", h.DeleteOrder)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrInvalidQuantity)

		body := `{"item":"Drill","cliente":"Acme","notaEntrada":"NF-1","om":"OM-1","quantidade":-2,"descricao":"broken"}`
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns created order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		created := entities.ServiceOrder{
			ID: 1, Item: "Drill", Cliente: "Acme", NotaEntrada: "NF-1", OM: "OM-1",
			Quantidade: 2, Descricao: "broken", Status: entities.StatusOpen,
			DataEntrada: time.Now().UTC(),
		}
		uc.EXPECT().Create(gomock.Any(), usecase.NewOrderInput{
			Item: "Drill", Cliente: "Acme", NotaEntrada: "NF-1", OM: "OM-1",
			Quantidade: 2, Descricao: "broken", Tecnico: "joao",
		}).Return(created, nil)

		body := `{"item":"Drill","cliente":"Acme","notaEntrada":"NF-1","om":"OM-1","quantidade":2,"descricao":"broken","tecnico":"joao"}`
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["status"] != string(entities.StatusOpen) || got["tecnico"] != "" {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestOrderHandler_AssignOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad id param", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/api/orders/abc/assign", bytes.NewBufferString(`{"tecnico":"joao"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not open maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().Assign(gomock.Any(), 5, "joao").Return(entities.ServiceOrder{}, usecase.ErrOrderNotOpen)

		req := httptest.NewRequest(http.MethodPut, "/api/orders/5/assign", bytes.NewBufferString(`{"tecnico":"joao"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().Assign(gomock.Any(), 5, "joao").Return(entities.ServiceOrder{
			ID: 5, Status: entities.StatusInProgress, Tecnico: "joao",
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/orders/5/assign", bytes.NewBufferString(`{"tecnico":"joao"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["status"] != string(entities.StatusInProgress) || got["tecnico"] != "joao" {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestOrderHandler_FinalizeOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing outbound invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/api/orders/5/finalize", bytes.NewBufferString(`{"tecnico":"joao"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().Finalize(gomock.Any(), 5, "NFS-99", "joao").Return(entities.ServiceOrder{
			ID: 5, Status: entities.StatusCompleted, NotaSaida: "NFS-99", Tecnico: "joao",
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/orders/5/finalize", bytes.NewBufferString(`{"notaSaida":"NFS-99","tecnico":"joao"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["status"] != string(entities.StatusCompleted) || got["notaSaida"] != "NFS-99" {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestOrderHandler_AnnotateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().Annotate(gomock.Any(), 77, "nota", "joao").Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/77/annotate", bytes.NewBufferString(`{"texto":"nota","tecnico":"joao"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns full order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().Annotate(gomock.Any(), 5, "nota", "joao").Return(entities.ServiceOrder{
			ID: 5, Status: entities.StatusInProgress,
			Anotacoes: []entities.Annotation{{ID: 1, Texto: "entrada"}, {ID: 2, Texto: "nota", Tecnico: "joao"}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/5/annotate", bytes.NewBufferString(`{"texto":"nota","tecnico":"joao"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got struct {
			Anotacoes []map[string]any `json:"anotacoes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(got.Anotacoes) != 2 {
			t.Fatalf("expected full annotation history, got %v", got.Anotacoes)
		}
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), 99).Return(usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/orders/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), 7).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/orders/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderRouter(NewOrderHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{
			{ID: 1, Status: entities.StatusOpen},
			{ID: 2, Status: entities.StatusCompleted},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(got))
		}
	})
}
