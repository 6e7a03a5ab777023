package structs

import "slices"

// Group is a record in the groups collection, keyed by GroupName.
// Users and Channels are duplicate-free and keep insertion order.
type Group struct {
	GroupName string   `json:"groupName"`
	Users     []string `json:"users"`
	Channels  []string `json:"channels"`
}

func NewGroup(name string) *Group {
	return &Group{
		GroupName: name,
		Users:     []string{},
		Channels:  []string{},
	}
}

func (g *Group) GetGroupName() string {
	return g.GroupName
}

func (g *Group) HasUser(username string) bool {
	return slices.Contains(g.Users, username)
}

func (g *Group) HasChannel(channelName string) bool {
	return slices.Contains(g.Channels, channelName)
}

// AddUser appends the username if it is not already a member.
func (g *Group) AddUser(username string) {
	if !g.HasUser(username) {
		g.Users = append(g.Users, username)
	}
}

// RemoveUser filters the username out; removing a non-member is a no-op.
func (g *Group) RemoveUser(username string) {
	g.Users = slices.DeleteFunc(g.Users, func(u string) bool { return u == username })
}

// AddChannel appends the channel name if it is not already present.
func (g *Group) AddChannel(channelName string) {
	if !g.HasChannel(channelName) {
		g.Channels = append(g.Channels, channelName)
	}
}

// RemoveChannel filters the channel name out; removing an absent channel is a no-op.
func (g *Group) RemoveChannel(channelName string) {
	g.Channels = slices.DeleteFunc(g.Channels, func(c string) bool { return c == channelName })
}
