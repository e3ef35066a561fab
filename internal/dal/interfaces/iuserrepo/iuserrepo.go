package iuserrepo

import (
	"context"

	"github.com/feastline/storefront/internal/service/models/user"
)

// IUserRepository is an interface for the user postgres repository.
type IUserRepository interface {
	GetByID(ctx context.Context, id int64) (*user.Summary, error)
}
