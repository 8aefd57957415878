package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "evosystem/internal/adapter/http/dto/request"
	response "evosystem/internal/adapter/http/dto/response"
	"evosystem/internal/usecase"
	"evosystem/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler handles login, registration and the admin user listing.
//
// Login and register answer with the `{success, message}` envelope: clients of
// the previous system key on the success flag, not only on the HTTP status.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// Login godoc
// @Summary  Authenticate a technician
// @Accept   json
// @Produce  json
// @Param    credentials body request.LoginRequest true "credentials"
// @Success  200 {object} response.LoginResponse
// @Router   /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.LoginResponse{
			Success: false,
			Message: "Nome de usuário e senha são obrigatórios.",
		})
		return
	}

	user, err := h.usecase.Authenticate(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrMissingCredentials):
			c.JSON(http.StatusUnauthorized, response.LoginResponse{
				Success: false,
				Message: "Credenciais inválidas.",
			})
		default:
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Success: true,
		Message: "Login bem-sucedido!",
		User:    user.Username,
	})
}

// Register godoc
// @Summary  Register a new technician account
// @Accept   json
// @Produce  json
// @Param    credentials body request.RegisterRequest true "credentials"
// @Success  201 {object} response.RegisterResponse
// @Router   /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.RegisterResponse{
			Success: false,
			Message: "Nome de usuário e senha são obrigatórios.",
		})
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, response.RegisterResponse{
				Success: false,
				Message: "Nome de usuário e senha são obrigatórios.",
			})
		case errors.Is(err, usecase.ErrUsernameTaken):
			c.JSON(http.StatusConflict, response.RegisterResponse{
				Success: false,
				Message: "Nome de usuário já existe.",
			})
		default:
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusCreated, response.RegisterResponse{
		Success: true,
		Message: fmt.Sprintf("Usuário %s cadastrado com sucesso.", created.Username),
	})
}

// ListUsers godoc
// @Summary  List registered users (admin view)
// @Produce  json
// @Success  200 {array} response.UserResponse
// @Router   /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}
