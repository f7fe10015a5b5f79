package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/babynishapappu-arch/pdf-packet-28/internal/packet"
)

// assembleRequest is the body for POST /api/packets.
type assembleRequest struct {
	Form      packet.FormData      `json:"form"`
	Documents []packet.DocumentRef `json:"documents"`
}

func (s *Server) handleCreatePacket(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req assembleRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Form.ProjectName == "" {
		jsonError(w, "form.project_name is required", http.StatusBadRequest)
		return
	}
	for i, d := range req.Documents {
		if d.Include && d.StoragePath == "" {
			jsonError(w, fmt.Sprintf("documents[%d].storage_path is required", i), http.StatusBadRequest)
			return
		}
	}

	res, err := s.assembler.Assemble(r.Context(), req.Form, req.Documents)
	if err != nil {
		s.log.Error("assembly failed", "project", req.Form.ProjectName, "error", err)
		jsonError(w, "assembly failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	p := &packet.Packet{
		PDF:       res.PDF,
		Sections:  res.Sections,
		PageCount: res.PageCount,
		CreatedAt: time.Now(),
	}
	id := s.packets.Put(p)

	sections := res.Sections
	if sections == nil {
		sections = []packet.Section{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"packet_id":    id,
		"page_count":   res.PageCount,
		"sections":     sections,
		"download_url": fmt.Sprintf("/api/packets/%s/download", id),
		"preview_url":  fmt.Sprintf("/api/packets/%s/preview", id),
	})
}

func (s *Server) handleGetPacket(w http.ResponseWriter, r *http.Request) {
	p := s.lookupPacket(w, r)
	if p == nil {
		return
	}
	sections := p.Sections
	if sections == nil {
		sections = []packet.Section{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"packet_id":  p.ID,
		"page_count": p.PageCount,
		"sections":   sections,
		"created_at": p.CreatedAt,
	})
}

// handleDownloadPacket serves the packet bytes with an attachment
// disposition so browsers save the file.
func (s *Server) handleDownloadPacket(w http.ResponseWriter, r *http.Request) {
	p := s.lookupPacket(w, r)
	if p == nil {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="submittal-packet-%s.pdf"`, p.ID))
	w.Write(p.PDF)
}

// handlePreviewPacket serves the packet inline. The URL only lives as long
// as the packet stays in the store.
func (s *Server) handlePreviewPacket(w http.ResponseWriter, r *http.Request) {
	p := s.lookupPacket(w, r)
	if p == nil {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline")
	w.Write(p.PDF)
}

func (s *Server) lookupPacket(w http.ResponseWriter, r *http.Request) *packet.Packet {
	id := chi.URLParam(r, "packetID")
	p := s.packets.Get(id)
	if p == nil {
		jsonError(w, "packet not found", http.StatusNotFound)
		return nil
	}
	return p
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
