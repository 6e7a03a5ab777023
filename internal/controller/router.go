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

// Package controller is the thin HTTP dispatch over the store: it parses the
// request, calls the matching store operation, and renders the returned value
// or failure kind. No business rules live here.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rosterhq/rosterd/pkg/config"
	"github.com/rosterhq/rosterd/pkg/logger"
	"github.com/rosterhq/rosterd/pkg/store"
)

// NewRouter builds the gin engine with middleware and all API routes wired to
// the given store.
func NewRouter(st *store.Store, cfg *config.AppConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestId(), AccessLog())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	users := NewUserController(st.User)
	groups := NewGroupController(st.Group)

	api := r.Group("/api")
	{
		api.GET("/users", users.List)
		api.POST("/users", users.Create)
		api.DELETE("/users/:username", users.Delete)

		api.GET("/groups", groups.List)
		api.POST("/groups", groups.Create)
		api.POST("/groups/:groupName/users", groups.AddUser)
		api.DELETE("/groups/:groupName/users/:username", groups.RemoveUser)
		api.POST("/groups/:groupName/channels", groups.AddChannel)
		api.DELETE("/groups/:groupName/channels/:channelName", groups.RemoveChannel)
	}

	return r
}

// respondError maps a store failure to an HTTP status: client-input failures
// (duplicate create, missing key) are distinguished from server-side storage
// failures, which are logged in full but rendered without internals.
func respondError(c *gin.Context, err error) {
	log := logger.Logger(c.Request.Context())

	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		log.WithError(err).Warn("rejected create for existing key")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		log.WithError(err).Warn("record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	}
}
