package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	request "evosystem/internal/adapter/http/dto/request"
	response "evosystem/internal/adapter/http/dto/response"
	"evosystem/internal/usecase"
	"evosystem/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidOrderID      = pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the service-order lifecycle.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders godoc
// @Summary  List all service orders
// @Produce  json
// @Success  200 {array} response.OrderResponse
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// CreateOrder godoc
// @Summary  Register a new service order
// @Accept   json
// @Produce  json
// @Param    order body request.CreateOrderRequest true "intake fields"
// @Success  201 {object} response.OrderResponse
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// AssignOrder godoc
// @Summary  Assume an open order
// @Accept   json
// @Produce  json
// @Param    id   path int true "order id"
// @Param    body body request.AssignOrderRequest true "acting technician"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{id}/assign [put]
func (h *OrderHandler) AssignOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var payload request.AssignOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Assign(c.Request.Context(), id, payload.Tecnico)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// FinalizeOrder godoc
// @Summary  Complete an in-progress order with its outbound invoice
// @Accept   json
// @Produce  json
// @Param    id   path int true "order id"
// @Param    body body request.FinalizeOrderRequest true "outbound invoice"
// @Success  200 {object} response.OrderResponse
// @Router   /orders/{id}/finalize [put]
func (h *OrderHandler) FinalizeOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var payload request.FinalizeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Finalize(c.Request.Context(), id, payload.NotaSaida, payload.Tecnico)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// AnnotateOrder godoc
// @Summary  Append an annotation to an order
// @Accept   json
// @Produce  json
// @Param    id   path int true "order id"
// @Param    body body request.AnnotateOrderRequest true "annotation"
// @Success  201 {object} response.OrderResponse
// @Router   /orders/{id}/annotate [post]
func (h *OrderHandler) AnnotateOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var payload request.AnnotateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Annotate(c.Request.Context(), id, payload.Texto, payload.Tecnico)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(updated))
}

// DeleteOrder godoc
// @Summary  Delete an order and its annotations
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {object} response.MessageResponse
// @Router   /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{
		Message: fmt.Sprintf("Ordem de Serviço #%d excluída com sucesso.", id),
	})
}

func orderIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrMissingOrderFields),
		errors.Is(err, usecase.ErrEmptyAnnotation),
		errors.Is(err, usecase.ErrEmptyOutboundNota),
		errors.Is(err, usecase.ErrEmptyTechnician):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotOpen):
		return pkg.NewDomainErrorSimple("ORDER_NOT_OPEN", "Order is not open for assignment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotInProgress):
		return pkg.NewDomainErrorSimple("ORDER_NOT_IN_PROGRESS", "Order is not in progress", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
