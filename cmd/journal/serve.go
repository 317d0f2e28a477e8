package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akeil/journal"
	"github.com/akeil/journal/internal/logging"
	"github.com/akeil/journal/pkg/render"
	"github.com/akeil/journal/pkg/web"
)

const shutdownTimeout = 5 * time.Second

func doServe(s settings, addr string) error {
	rc := render.NewContext(s.dataDir)
	// fonts become available while the server is running
	rc.Preload()

	sh := journal.NewShell(journal.NewStore())
	handler := web.NewServer(sh, rc)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()
	fmt.Printf("%v journal editor at http://%v/\n", checkmark, addr)

	select {
	case err := <-errs:
		handler.Close()
		return err
	case <-ctx.Done():
	}

	logging.Info("Shutting down")
	handler.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
