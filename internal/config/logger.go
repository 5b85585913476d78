package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	logger     = logrus.New()
	instanceID string
)

func Init() {
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	instanceID = uuid.New().String()
}

func Logger() *logrus.Entry {
	return logger.WithField("instance", instanceID)
}

// WithContext returns an entry carrying the chi request id, when present.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logger.WithField("instance", instanceID)
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
