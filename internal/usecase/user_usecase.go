package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"evosystem/internal/domain/entities"
	"evosystem/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already taken")
)

// IUserUseCase covers authentication and the admin registration flow.
//
// Passwords are compared and stored in plaintext, matching the system this one
// replaces. See the User entity note before reusing this outside a demo.

type IUserUseCase interface {
	Authenticate(ctx context.Context, username, password string) (entities.User, error)
	Register(ctx context.Context, username, password string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Authenticate(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrMissingCredentials
	}

	user, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == 0 || user.Password != password {
		return entities.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (u *UserUseCase) Register(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrMissingCredentials
	}

	created, err := u.repo.Create(ctx, entities.User{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, interfaces.ErrUsernameExists) {
			return entities.User{}, ErrUsernameTaken
		}
		return entities.User{}, err
	}
	log.Printf("[users][usecase] registered id=%d username=%q", created.ID, created.Username)
	return created, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}
