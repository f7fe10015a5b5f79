package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/babynishapappu-arch/pdf-packet-28/internal/assemble"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/config"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/packet"
)

// PacketAssembler builds a packet from form data and document refs.
type PacketAssembler interface {
	Assemble(ctx context.Context, form packet.FormData, refs []packet.DocumentRef) (*assemble.Result, error)
}

// Server is the HTTP API server for the packet service.
type Server struct {
	router    chi.Router
	assembler PacketAssembler
	packets   *packet.Store
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(assembler PacketAssembler, packets *packet.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		assembler: assembler,
		packets:   packets,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.PacketAPIKey, s.log))

		r.Post("/api/packets", s.handleCreatePacket)
		r.Get("/api/packets/{packetID}", s.handleGetPacket)
		r.Get("/api/packets/{packetID}/download", s.handleDownloadPacket)
		r.Get("/api/packets/{packetID}/preview", s.handlePreviewPacket)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
