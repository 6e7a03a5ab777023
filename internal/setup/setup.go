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

// Package setup wires the configured storage backend into the pair of
// collection documents. Shared by the server and the provisioning tool.
package setup

import (
	"fmt"
	"time"

	"github.com/rosterhq/rosterd/pkg/config"
	"github.com/rosterhq/rosterd/pkg/document"
	"github.com/rosterhq/rosterd/pkg/document/cached"
	"github.com/rosterhq/rosterd/pkg/document/file"
	"github.com/rosterhq/rosterd/pkg/document/inmemory"
	"github.com/rosterhq/rosterd/pkg/document/redis"
)

const (
	usersKey  = "rosterd:users"
	groupsKey = "rosterd:groups"
)

func noopClose() error { return nil }

// Documents builds the users and groups documents for the configured storage
// backend, wrapped in the read-through cache when enabled. The returned close
// function releases backend resources and must be called on shutdown.
func Documents(cfg *config.AppConfig) (users, groups document.Document, closeFn func() error, err error) {
	closeFn = noopClose

	switch cfg.Storage.Backend {
	case config.BackendFile:
		users = file.New(cfg.Storage.UsersFile)
		groups = file.New(cfg.Storage.GroupsFile)

	case config.BackendRedis:
		s, rerr := redis.NewStore(&redis.Config{
			Host:     cfg.Storage.Redis.Host,
			Port:     cfg.Storage.Redis.Port,
			Database: cfg.Storage.Redis.Database,
			Username: cfg.Storage.Redis.Username,
			Password: cfg.Storage.Redis.Password,
		})
		if rerr != nil {
			return nil, nil, nil, fmt.Errorf("connecting to redis: %w", rerr)
		}
		users = s.Document(usersKey)
		groups = s.Document(groupsKey)
		closeFn = s.Disconnect

	case config.BackendInMemory:
		s, merr := inmemory.NewStore(nil)
		if merr != nil {
			return nil, nil, nil, merr
		}
		users = s.Document(usersKey)
		groups = s.Document(groupsKey)

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	if cfg.Storage.Cache.Enabled {
		ttl := time.Duration(cfg.Storage.Cache.TTLSeconds) * time.Second
		users = cached.New(users, usersKey, ttl)
		groups = cached.New(groups, groupsKey, ttl)
	}

	return users, groups, closeFn, nil
}
