package interfaces

import (
	"context"
	"errors"

	"evosystem/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// Username is the uniqueness key: Create must fail atomically when the
// username already exists (conditional put), and GetByUsername returns a zero
// user (ID == 0) with a nil error when absent.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
}

// ErrUsernameExists is returned by Create when the conditional put loses to an
// existing username.
var ErrUsernameExists = errors.New("username already exists")
