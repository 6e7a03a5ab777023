// Package logger wraps logrus with request-scoped context propagation.
// Handlers and stores retrieve a contextual entry via Logger(ctx); the
// request-id middleware attaches an identifier with WithRequestId so every
// log line of a request carries the same request_id field.
package logger

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type contextKey string

const requestIdKey contextKey = "request_id"

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Configure sets the global log level and output format.
// Level accepts the usual logrus names; format is "json" or "text".
func Configure(level, format string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(parsed)

	if strings.EqualFold(format, "text") {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

// WithRequestId returns a context carrying the given request identifier.
func WithRequestId(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, requestIdKey, requestId)
}

// RequestId extracts the request identifier from the context, if any.
func RequestId(ctx context.Context) string {
	if id, ok := ctx.Value(requestIdKey).(string); ok {
		return id
	}
	return ""
}

// Logger returns a logrus entry scoped to the given context. If the context
// carries a request id, the entry is tagged with it.
func Logger(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(log)
	if id := RequestId(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
