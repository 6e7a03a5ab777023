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
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rosterhq/rosterd/pkg/logger"
	"github.com/rosterhq/rosterd/pkg/store"
)

// UserController exposes the users collection over HTTP.
type UserController struct {
	store store.UserStoreInterface
}

func NewUserController(s store.UserStoreInterface) *UserController {
	return &UserController{store: s}
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// List returns every user record, passwords included - the documents carry
// them in plaintext and this API renders them verbatim.
func (uc *UserController) List(c *gin.Context) {
	ctx := c.Request.Context()
	logger.Logger(ctx).Info("fetching all users")

	users, err := uc.store.ListUsers(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	logger.Logger(ctx).WithField("username", req.Username).Info("creating user")

	user, err := uc.store.CreateUser(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) Delete(c *gin.Context) {
	username := c.Param("username")

	ctx := c.Request.Context()
	logger.Logger(ctx).WithField("username", username).Info("removing user")

	if _, err := uc.store.DeleteUser(ctx, username); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %s removed", username)})
}
