package store

import (
	"github.com/rosterhq/rosterd/pkg/document"
)

// Store provides a high-level interface for managing the users and groups
// collections, each backed by its own document.
// Mutations within one collection are serialized internally; operations that
// span both collections (there are none today) would NOT be coordinated.
type Store struct {
	User  UserStoreInterface
	Group GroupStoreInterface
}

// New creates a new Store instance with both sub-stores initialized, one
// document per collection.
func New(usersDoc, groupsDoc document.Document) *Store {
	return &Store{
		User:  newUserStore(usersDoc),
		Group: newGroupStore(groupsDoc),
	}
}

// Compile-time interface compliance checks
var (
	_ UserStoreInterface  = (*UserStore)(nil)
	_ GroupStoreInterface = (*GroupStore)(nil)
)
