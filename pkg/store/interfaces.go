package store

import (
	"context"

	"github.com/rosterhq/rosterd/pkg/common/structs"
)

// UserStoreInterface defines operations on the users collection
// This interface enables mocking in tests and follows the dependency inversion principle
type UserStoreInterface interface {
	// ListUsers returns every record in the users collection in insertion
	// order, including stored passwords (known confidentiality gap).
	ListUsers(ctx context.Context) ([]structs.User, error)

	// CreateUser appends a new user record and persists.
	// Fails with ErrAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, username, email, password string) (*structs.User, error)

	// DeleteUser removes the record and persists, returning the removed user.
	// Fails with ErrNotFound if the username is absent. Group memberships
	// referencing the username are NOT touched.
	DeleteUser(ctx context.Context, username string) (*structs.User, error)
}

// GroupStoreInterface defines operations on the groups collection, including
// mutation of each group's embedded users and channels sets.
type GroupStoreInterface interface {
	// ListGroups returns every record in the groups collection in insertion order.
	ListGroups(ctx context.Context) ([]structs.Group, error)

	// CreateGroup creates a group with empty users and channels sets.
	// Fails with ErrAlreadyExists if the group name is taken.
	CreateGroup(ctx context.Context, groupName string) (*structs.Group, error)

	// AddUserToGroup adds the username to the group's member set. Idempotent:
	// an existing member is left as is, but the group is persisted and
	// returned either way. Fails with ErrNotFound if the group is absent.
	// The username is NOT checked against the users collection.
	AddUserToGroup(ctx context.Context, groupName, username string) (*structs.Group, error)

	// RemoveUserFromGroup removes the username from the group's member set.
	// Removing a non-member is a no-op; the group is persisted and returned
	// either way. Fails with ErrNotFound only if the group is absent.
	RemoveUserFromGroup(ctx context.Context, groupName, username string) (*structs.Group, error)

	// AddChannelToGroup is symmetric to AddUserToGroup, operating on channels.
	AddChannelToGroup(ctx context.Context, groupName, channelName string) (*structs.Group, error)

	// RemoveChannelFromGroup is symmetric to RemoveUserFromGroup, operating on channels.
	RemoveChannelFromGroup(ctx context.Context, groupName, channelName string) (*structs.Group, error)
}
