package store

import (
	"context"

	"github.com/rosterhq/rosterd/pkg/common/structs"
	"github.com/rosterhq/rosterd/pkg/document"
)

// UserStore owns the users collection, keyed by username.
type UserStore struct {
	col *collection[structs.User]
}

func newUserStore(doc document.Document) *UserStore {
	return &UserStore{
		col: newCollection("user", doc, (*structs.User).GetUsername),
	}
}

func (s *UserStore) ListUsers(ctx context.Context) ([]structs.User, error) {
	return s.col.loadAll(ctx)
}

func (s *UserStore) CreateUser(ctx context.Context, username, email, password string) (*structs.User, error) {
	return s.col.insert(ctx, username, structs.User{
		Username: username,
		Email:    email,
		Password: password,
	})
}

func (s *UserStore) DeleteUser(ctx context.Context, username string) (*structs.User, error) {
	return s.col.removeByKey(ctx, username)
}
