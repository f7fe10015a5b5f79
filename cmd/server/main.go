package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/babynishapappu-arch/pdf-packet-28/internal/api"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/assemble"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/config"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/fetch"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/filestore"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/packet"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize collaborators.
	store := filestore.NewClient(cfg.FilestoreURL, cfg.FilestoreAPIKey, cfg.SignedURLTTL)
	fetcher := fetch.New(cfg.FetchTimeout, cfg.MaxDocumentBytes)
	assembler := assemble.New(store, fetcher, log)

	// Packet registry backing download/preview URLs.
	packets := packet.NewStore(cfg.PacketTTL)
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				packets.Cleanup()
			}
		}
	}()

	// Initialize HTTP server.
	srv := api.NewServer(assembler, packets, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()
		store.Close()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", "error", err)
		}
	}()

	log.Info("starting packet service", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("stopped")
}
