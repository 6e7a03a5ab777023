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
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rosterhq/rosterd/pkg/logger"
)

const requestIdHeader = "X-Request-Id"

// RequestId attaches a request identifier to the request context so every
// log line of the request carries it. An incoming X-Request-Id is honored,
// otherwise a fresh one is generated.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx := logger.WithRequestId(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIdHeader, id)
		c.Next()
	}
}

// AccessLog emits one structured log line per handled request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Logger(c.Request.Context()).WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("request handled")
	}
}
