package store

import (
	"context"

	"github.com/rosterhq/rosterd/pkg/common/structs"
	"github.com/rosterhq/rosterd/pkg/document"
)

// GroupStore owns the groups collection, keyed by group name.
type GroupStore struct {
	col *collection[structs.Group]
}

func newGroupStore(doc document.Document) *GroupStore {
	return &GroupStore{
		col: newCollection("group", doc, (*structs.Group).GetGroupName),
	}
}

func (s *GroupStore) ListGroups(ctx context.Context) ([]structs.Group, error) {
	return s.col.loadAll(ctx)
}

func (s *GroupStore) CreateGroup(ctx context.Context, groupName string) (*structs.Group, error) {
	return s.col.insert(ctx, groupName, *structs.NewGroup(groupName))
}

func (s *GroupStore) AddUserToGroup(ctx context.Context, groupName, username string) (*structs.Group, error) {
	return s.col.update(ctx, groupName, func(g *structs.Group) {
		g.AddUser(username)
	})
}

func (s *GroupStore) RemoveUserFromGroup(ctx context.Context, groupName, username string) (*structs.Group, error) {
	return s.col.update(ctx, groupName, func(g *structs.Group) {
		g.RemoveUser(username)
	})
}

func (s *GroupStore) AddChannelToGroup(ctx context.Context, groupName, channelName string) (*structs.Group, error) {
	return s.col.update(ctx, groupName, func(g *structs.Group) {
		g.AddChannel(channelName)
	})
}

func (s *GroupStore) RemoveChannelFromGroup(ctx context.Context, groupName, channelName string) (*structs.Group, error) {
	return s.col.update(ctx, groupName, func(g *structs.Group) {
		g.RemoveChannel(channelName)
	})
}
