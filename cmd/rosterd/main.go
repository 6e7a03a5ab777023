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

// rosterd serves the users and groups roster API over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/rosterhq/rosterd/internal/controller"
	"github.com/rosterhq/rosterd/internal/setup"
	"github.com/rosterhq/rosterd/pkg/config"
	"github.com/rosterhq/rosterd/pkg/logger"
	"github.com/rosterhq/rosterd/pkg/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to the config file (default: rosterd.yaml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
	defer func() {
		if err := closeFn(); err != nil {
			log.WithError(err).Warn("error closing storage backend")
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	router := controller.NewRouter(store.New(usersDoc, groupsDoc), cfg)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", cfg.Server.Addr).Info("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("server exited with error")
	}
	log.Info("server stopped")
}
