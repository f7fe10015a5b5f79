package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/babynishapappu-arch/pdf-packet-28/internal/assemble"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/config"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/packet"
)

const testAPIKey = "test-key"

type fakeAssembler struct {
	result *assemble.Result
	err    error
	form   packet.FormData
	refs   []packet.DocumentRef
}

func (f *fakeAssembler) Assemble(ctx context.Context, form packet.FormData, refs []packet.DocumentRef) (*assemble.Result, error) {
	f.form = form
	f.refs = refs
	return f.result, f.err
}

func newTestServer(fa *fakeAssembler) (*Server, *packet.Store) {
	store := packet.NewStore(time.Hour)
	cfg := config.Config{PacketAPIKey: testAPIKey}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(fa, store, log, cfg), store
}

func authedRequest(method, path string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	return req
}

func TestCreatePacket(t *testing.T) {
	fa := &fakeAssembler{result: &assemble.Result{
		PDF:       []byte("%PDF-1.4 fake"),
		Sections:  []packet.Section{{Name: "Alpha", StartPage: 4, PageCount: 3}},
		PageCount: 7,
	}}
	srv, _ := newTestServer(fa)

	body := `{
		"form": {"project_name": "Riverside Pump Station"},
		"documents": [{"name": "Alpha", "storage_path": "docs/a.pdf", "include": true}]
	}`
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/packets", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		PacketID    string           `json:"packet_id"`
		PageCount   int              `json:"page_count"`
		Sections    []packet.Section `json:"sections"`
		DownloadURL string           `json:"download_url"`
		PreviewURL  string           `json:"preview_url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PacketID == "" {
		t.Error("expected packet id")
	}
	if resp.PageCount != 7 {
		t.Errorf("expected page count 7, got %d", resp.PageCount)
	}
	if len(resp.Sections) != 1 || resp.Sections[0].Name != "Alpha" {
		t.Errorf("unexpected sections: %+v", resp.Sections)
	}
	if want := fmt.Sprintf("/api/packets/%s/download", resp.PacketID); resp.DownloadURL != want {
		t.Errorf("expected download url %q, got %q", want, resp.DownloadURL)
	}

	if fa.form.ProjectName != "Riverside Pump Station" {
		t.Errorf("form not passed through: %+v", fa.form)
	}
	if len(fa.refs) != 1 || fa.refs[0].StoragePath != "docs/a.pdf" {
		t.Errorf("documents not passed through: %+v", fa.refs)
	}
}

func TestCreatePacket_Validation(t *testing.T) {
	srv, _ := newTestServer(&fakeAssembler{})

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing project name", `{"form": {}, "documents": []}`},
		{"missing storage path", `{"form": {"project_name": "P"}, "documents": [{"name": "A", "include": true}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/packets", strings.NewReader(tc.body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestCreatePacket_AssemblyError(t *testing.T) {
	fa := &fakeAssembler{err: fmt.Errorf("merge packet: boom")}
	srv, _ := newTestServer(fa)

	body := `{"form": {"project_name": "P"}, "documents": []}`
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/packets", strings.NewReader(body)))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestDownloadAndPreview(t *testing.T) {
	srv, store := newTestServer(&fakeAssembler{})
	id := store.Put(&packet.Packet{PDF: []byte("%PDF-1.4 fake"), PageCount: 3})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/packets/"+id+"/download", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("expected pdf content type, got %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(got, "attachment") {
		t.Errorf("expected attachment disposition, got %q", got)
	}
	if !bytes.Equal(rec.Body.Bytes(), []byte("%PDF-1.4 fake")) {
		t.Error("unexpected download body")
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/packets/"+id+"/preview", nil))
	if got := rec.Header().Get("Content-Disposition"); got != "inline" {
		t.Errorf("expected inline disposition, got %q", got)
	}
}

func TestGetPacket(t *testing.T) {
	srv, store := newTestServer(&fakeAssembler{})
	id := store.Put(&packet.Packet{PDF: []byte("x"), PageCount: 5})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/packets/"+id, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["page_count"].(float64) != 5 {
		t.Errorf("unexpected page count: %v", resp["page_count"])
	}
}

func TestPacketNotFound(t *testing.T) {
	srv, _ := newTestServer(&fakeAssembler{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/packets/nope/download", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestAuth(t *testing.T) {
	srv, _ := newTestServer(&fakeAssembler{})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/packets/x", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without auth, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/packets/x", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with bad key, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected health to be public, got %d", rec.Code)
	}
}
