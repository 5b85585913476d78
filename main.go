package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/deerk/mock-interviewer/internal/config"
	"github.com/deerk/mock-interviewer/internal/container"
	"github.com/deerk/mock-interviewer/internal/router"
)

func main() {
	ctx := context.Background()

	c, err := container.New(ctx)
	if err != nil {
		logrus.Fatalf("failed to initialize application: %v", err)
	}
	log := config.Logger()

	handler := router.New(router.RouterConfig{
		InterviewHandler: c.InterviewContainer.Handler,
		AllowedOrigins:   c.Config.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + c.Config.Port,
		Handler: handler,
	}

	go func() {
		log.Infof("Mock Interviewer API listening on :%s", c.Config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}
