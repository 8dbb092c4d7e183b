// Package http exposes the session store over a small REST surface: one
// handler per capability, requests validated up front, errors mapped to a
// status code.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Serosh-commits/Aion/internal/session"
	"github.com/Serosh-commits/Aion/internal/store"
)

// Server wires the store to HTTP handlers.
type Server struct {
	store *store.Store
}

// NewServer builds a server over an already-migrated store.
func NewServer(s *store.Store) *Server {
	return &Server{store: s}
}

// Routes registers this server's handlers on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/sessions", s.handleSessions)
	mux.HandleFunc("/sessions/", s.handleSessionByID)
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createSession(w, r)
	case http.MethodGet:
		s.listSessions(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSessionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/sessions/")
	if id == "" {
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}
	record, err := s.store.GetByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// createSessionRequest is the wire shape a client submits: the session ID,
// the before/after IR text and the pipeline description of a completed
// AnalysisSession. Remarks, diagnostics and the diff are not part of the
// request, so a session created here stores none. The daemon only persists
// sessions a caller already produced with the core library; it never runs a
// pipeline itself.
type createSessionRequest struct {
	SessionID    string `json:"sessionId"`
	BeforeIR     string `json:"beforeIr"`
	AfterIR      string `json:"afterIr"`
	PipelineUsed string `json:"pipelineUsed"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	id := req.SessionID
	if id == "" {
		id = uuid.New().String()
	}
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "sessionId must be a UUID", http.StatusBadRequest)
		return
	}
	sessionID, _ := uuid.Parse(id)

	sess := &session.AnalysisSession{
		SessionID:    sessionID,
		BeforeIR:     req.BeforeIR,
		AfterIR:      req.AfterIR,
		PipelineUsed: req.PipelineUsed,
	}

	if err := s.store.Save(sess); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"sessionId": id})
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	pageSize := 50
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageSize = n
		}
	}

	records, err := s.store.List(pageSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
