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

// rosterd-init provisions the collection documents the server expects: it
// creates missing documents with an empty record sequence and verifies that
// existing ones still parse. The server itself never creates documents.
package main

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/rosterhq/rosterd/internal/setup"
	"github.com/rosterhq/rosterd/pkg/config"
	"github.com/rosterhq/rosterd/pkg/document"
	"github.com/rosterhq/rosterd/pkg/logger"
)

func main() {
	var (
		configPath string
		force      bool
	)
	flag.StringVar(&configPath, "config", "", "path to the config file (default: rosterd.yaml)")
	flag.BoolVar(&force, "force", false, "overwrite documents that exist but do not parse")
	flag.Parse()

	ctx := context.Background()
	log := logger.Logger(ctx)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.WithError(err).Fatal("error loading configuration")
	}
	if err := logger.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.WithError(err).Fatal("error configuring logger")
	}

	usersDoc, groupsDoc, closeFn, err := setup.Documents(cfg)
	if err != nil {
		log.WithError(err).Fatal("error initializing storage backend")
	}
	defer func() { _ = closeFn() }()

	provision(ctx, "users", usersDoc, force)
	provision(ctx, "groups", groupsDoc, force)
}

// provision creates the document with an empty record sequence if it cannot
// be read, and otherwise verifies it parses as an array of records.
func provision(ctx context.Context, name string, doc document.Document, force bool) {
	log := logger.Logger(ctx).WithField("collection", name)

	data, err := doc.Read(ctx)
	if err != nil {
		log.WithError(err).Info("document unreadable, provisioning empty document")
		if err := doc.Write(ctx, []byte(`[]`)); err != nil {
			log.WithError(err).Fatal("error provisioning document")
		}
		log.Info("provisioned empty document")
		return
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err == nil && records != nil {
		log.WithField("records", len(records)).Info("document is valid")
		return
	}

	if !force {
		log.Fatal("document exists but does not parse as a record sequence; rerun with -force to overwrite")
	}
	log.Warn("overwriting unparseable document")
	if err := doc.Write(ctx, []byte(`[]`)); err != nil {
		log.WithError(err).Fatal("error overwriting document")
	}
	log.Info("provisioned empty document")
}
