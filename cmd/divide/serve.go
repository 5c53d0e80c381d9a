package main

import (
	"context"
	"errors"
	"github.com/spf13/cobra"
	"github.com/willbeason/radial-fractal/internal/server"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const flagAddr = "addr"

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve frames over HTTP; POST /regenerate draws new trees",
		Args:  cobra.ExactArgs(0),
		RunE:  runServe,
	}

	cmd.Flags().String(flagAddr, ":8080", "address to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr, _ := cmd.Flags().GetString(flagAddr)
	srv := &http.Server{
		Addr: addr,
		Handler: server.NewHandler(&server.Server{
			State:   e.state,
			Metrics: e.metrics,
			Logger:  e.logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		e.logger.Info("listening", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err = <-errs:
	case <-ctx.Done():
		e.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = srv.Shutdown(shutdownCtx)
	}

	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	return errors.Join(err, e.close())
}
