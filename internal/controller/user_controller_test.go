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
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhq/rosterd/pkg/config"
	"github.com/rosterhq/rosterd/pkg/document/inmemory"
	"github.com/rosterhq/rosterd/pkg/store"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Server: config.ServerConfig{
			Addr:        ":0",
			CORSOrigins: []string{"http://localhost:4200"},
		},
	}
}

// setupRouter wires a router over provisioned empty in-memory documents.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := inmemory.NewStore(nil)
	require.NoError(t, err)

	ctx := context.Background()
	users := s.Document("users")
	groups := s.Document("groups")
	require.NoError(t, users.Write(ctx, []byte(`[]`)))
	require.NoError(t, groups.Write(ctx, []byte(`[]`)))

	return NewRouter(store.New(users, groups), testConfig())
}

// setupUnprovisionedRouter wires a router whose documents were never
// provisioned, so every store operation fails with a storage error.
func setupUnprovisionedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := inmemory.NewStore(nil)
	require.NoError(t, err)
	return NewRouter(store.New(s.Document("users"), s.Document("groups")), testConfig())
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserController_ListEmpty(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUserController_CreateAndList(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/users",
		`{"username":"alice","email":"a@x.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"alice","email":"a@x.com","password":"pw"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"username":"alice","email":"a@x.com","password":"pw"}]`, w.Body.String())
}

func TestUserController_CreateDuplicate(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/users",
		`{"username":"alice","email":"a@x.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPost, "/api/users",
		`{"username":"alice","email":"b@x.com","password":"pw2"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestUserController_CreateMissingFields(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/users", `{"username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/users", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserController_Delete(t *testing.T) {
	r := setupRouter(t)

	doRequest(r, http.MethodPost, "/api/users",
		`{"username":"alice","email":"a@x.com","password":"pw"}`)
	doRequest(r, http.MethodPost, "/api/users",
		`{"username":"bob","email":"b@x.com","password":"pw"}`)

	w := doRequest(r, http.MethodDelete, "/api/users/alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User alice removed"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"username":"bob","email":"b@x.com","password":"pw"}]`, w.Body.String())

	w = doRequest(r, http.MethodDelete, "/api/users/alice", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserController_StorageFailure(t *testing.T) {
	r := setupUnprovisionedRouter(t)

	w := doRequest(r, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "storage failure")
}

func TestRouter_RequestIdHeader(t *testing.T) {
	r := setupRouter(t)

	t.Run("generates an id", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/users", "")
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("honors an incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("X-Request-Id", "req-789")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-789", w.Header().Get("X-Request-Id"))
	})
}

func TestRouter_CORS(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:4200", w.Header().Get("Access-Control-Allow-Origin"))
}
