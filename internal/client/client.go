// Package client talks to the maintenance API over HTTP+JSON. It is the only
// package that knows the wire shapes; everything above it works with domain
// entities and sentinel errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"evosystem/internal/domain/entities"
)

const defaultTimeout = 30 * time.Second

// UserIdentity is the authenticated identity returned by Login. Admin is a
// capability resolved once at the API boundary so callers never compare
// usernames themselves.
type UserIdentity struct {
	Username string
	Admin    bool
}

// NewOrder carries the creation fields for POST /orders.
type NewOrder struct {
	Item        string `json:"item"`
	Cliente     string `json:"cliente"`
	NotaEntrada string `json:"notaEntrada"`
	OM          string `json:"om"`
	Quantidade  int    `json:"quantidade"`
	Descricao   string `json:"descricao"`
	Tecnico     string `json:"tecnico"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL (e.g. http://127.0.0.1:8080/api).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) Login(ctx context.Context, username, password string) (UserIdentity, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		User    string `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", body, &out); err != nil {
		return UserIdentity{}, err
	}
	if !out.Success {
		return UserIdentity{}, ErrInvalidCredentials
	}
	return UserIdentity{
		Username: out.User,
		Admin:    out.User == entities.AdminUsername,
	}, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]entities.ServiceOrder, error) {
	var orders []entities.ServiceOrder
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, in NewOrder) (entities.ServiceOrder, error) {
	var created entities.ServiceOrder
	if err := c.do(ctx, http.MethodPost, "/orders", in, &created); err != nil {
		return entities.ServiceOrder{}, err
	}
	return created, nil
}

func (c *Client) AssignOrder(ctx context.Context, id int, tecnico string) (entities.ServiceOrder, error) {
	body := map[string]string{"tecnico": tecnico}
	var updated entities.ServiceOrder
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/assign", id), body, &updated); err != nil {
		return entities.ServiceOrder{}, err
	}
	return updated, nil
}

func (c *Client) FinalizeOrder(ctx context.Context, id int, notaSaida, tecnico string) (entities.ServiceOrder, error) {
	body := map[string]string{"notaSaida": notaSaida, "tecnico": tecnico}
	var updated entities.ServiceOrder
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/finalize", id), body, &updated); err != nil {
		return entities.ServiceOrder{}, err
	}
	return updated, nil
}

func (c *Client) AnnotateOrder(ctx context.Context, id int, texto, tecnico string) (entities.ServiceOrder, error) {
	body := map[string]string{"texto": texto, "tecnico": tecnico}
	var updated entities.ServiceOrder
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/annotate", id), body, &updated); err != nil {
		return entities.ServiceOrder{}, err
	}
	return updated, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/register", body, &out); err != nil {
		return err
	}
	if !out.Success {
		return &ServerError{StatusCode: http.StatusOK, Message: out.Message}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapStatus(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ServerError{StatusCode: resp.StatusCode, Message: "malformed response body"}
	}
	return nil
}

func (c *Client) mapStatus(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	// A missing or malformed error body still maps by status code.
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrInvalidCredentials
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrUsernameTaken
	default:
		return &ServerError{StatusCode: resp.StatusCode, Message: payload.Message}
	}
}
