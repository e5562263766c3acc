package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apod/pkg/handler"
	srvc "apod/pkg/service"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve picture metadata over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {

	handlers := handler.NewHandler(srvc.NewService(apodClient), logger)

	srv := new(server)
	go func() {
		logger.WithField("port", cfg.Port).Info("apod listening")
		if err := srv.Run(cfg.Port, handlers.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Print("apod Shutting Down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("error occured on server shutting down: %s", err.Error())
		return err
	}

	return nil
}

type server struct {
	httpSrv *http.Server
}

func (s *server) Run(port string, h http.Handler) error {
	s.httpSrv = &http.Server{
		Addr:           ":" + port,
		Handler:        h,
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    10 * time.Second,
	}

	return s.httpSrv.ListenAndServe()
}

func (s *server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
