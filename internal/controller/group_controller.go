/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rosterhq/rosterd/pkg/logger"
	"github.com/rosterhq/rosterd/pkg/store"
)

// GroupController exposes the groups collection over HTTP, including the
// nested membership and channel operations.
type GroupController struct {
	store store.GroupStoreInterface
}

func NewGroupController(s store.GroupStoreInterface) *GroupController {
	return &GroupController{store: s}
}

type createGroupRequest struct {
	GroupName string `json:"groupName" binding:"required"`
}

type addUserRequest struct {
	Username string `json:"username" binding:"required"`
}

type addChannelRequest struct {
	ChannelName string `json:"channelName" binding:"required"`
}

func (gc *GroupController) List(c *gin.Context) {
	ctx := c.Request.Context()
	logger.Logger(ctx).Info("fetching all groups")

	groups, err := gc.store.ListGroups(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (gc *GroupController) Create(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	logger.Logger(ctx).WithField("group", req.GroupName).Info("creating group")

	group, err := gc.store.CreateGroup(ctx, req.GroupName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (gc *GroupController) AddUser(c *gin.Context) {
	groupName := c.Param("groupName")

	var req addUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	logger.Logger(ctx).WithFields(logrus.Fields{
		"group": groupName,
		"user":  req.Username,
	}).Info("adding user to group")

	group, err := gc.store.AddUserToGroup(ctx, groupName, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (gc *GroupController) RemoveUser(c *gin.Context) {
	groupName := c.Param("groupName")
	username := c.Param("username")

	ctx := c.Request.Context()
	logger.Logger(ctx).WithFields(logrus.Fields{
		"group": groupName,
		"user":  username,
	}).Info("removing user from group")

	group, err := gc.store.RemoveUserFromGroup(ctx, groupName, username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (gc *GroupController) AddChannel(c *gin.Context) {
	groupName := c.Param("groupName")

	var req addChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	logger.Logger(ctx).WithFields(logrus.Fields{
		"group":   groupName,
		"channel": req.ChannelName,
	}).Info("adding channel to group")

	group, err := gc.store.AddChannelToGroup(ctx, groupName, req.ChannelName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (gc *GroupController) RemoveChannel(c *gin.Context) {
	groupName := c.Param("groupName")
	channelName := c.Param("channelName")

	ctx := c.Request.Context()
	logger.Logger(ctx).WithFields(logrus.Fields{
		"group":   groupName,
		"channel": channelName,
	}).Info("removing channel from group")

	group, err := gc.store.RemoveChannelFromGroup(ctx, groupName, channelName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}
