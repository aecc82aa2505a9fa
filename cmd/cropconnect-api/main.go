package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"cropconnect-backend/internal/config"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := newApp(ctx, config.Load())
	defer a.Close()
	a.startConsumers(ctx)

	r := mux.NewRouter()
	a.server.RegisterRoutes(r)

	server := &http.Server{
		Addr:    a.cfg.HTTPAddr,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("Shutting down...")
		cancel()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("CropConnect API listening on %s", a.cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
