// Package api exposes the screening agent over HTTP for non-interactive
// clients.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-screener/internal/agent"
	"github.com/fmuoria/resume-screener/internal/export"
	"github.com/fmuoria/resume-screener/internal/models"
)

// Server handles HTTP requests against a shared screening agent.
type Server struct {
	agent *agent.ScreeningAgent
	log   *zap.Logger
}

// NewServer creates a new API server.
func NewServer(a *agent.ScreeningAgent, log *zap.Logger) *Server {
	return &Server{agent: a, log: log}
}

// Router returns the HTTP router.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("POST /screen", s.handleScreen)
	mux.HandleFunc("GET /results", s.handleResults)
	mux.HandleFunc("GET /export/csv", s.handleExportCSV)
	mux.HandleFunc("POST /drafts", s.handleSaveDraft)
	mux.HandleFunc("GET /drafts", s.handleListDrafts)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /", s.handleRoot)

	return s.loggingMiddleware(mux)
}

// handleRoot provides API information.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"service": "Resume Screener",
		"endpoints": map[string]string{
			"POST /upload":    "Upload resume files (multipart, field 'files')",
			"POST /screen":    "Screen uploaded resumes against skill lists",
			"GET /results":    "Get per-candidate screening results",
			"GET /export/csv": "Download screening results as CSV",
			"POST /drafts":    "Save a reply draft for a candidate",
			"GET /drafts":     "List saved reply drafts",
			"GET /health":     "Health check",
		},
	})
}

// handleHealth provides a health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleUpload saves uploaded resumes and adds them as unscreened
// candidates.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil { // 32 MB max
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse form: %v", err))
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		s.respondError(w, http.StatusBadRequest, "no files uploaded")
		return
	}

	var paths []string
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to open uploaded file: %v", err))
			return
		}

		path, err := s.agent.FileHandler.SaveUploadedFile(fileHeader.Filename, file)
		file.Close()
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save file %s: %v", fileHeader.Filename, err))
			return
		}
		paths = append(paths, path)
	}

	added := s.agent.AddResumeFiles(paths)
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"added":  added,
	})
}

type screenRequest struct {
	Required string `json:"required"`
	Critical string `json:"critical"`
}

// handleScreen runs a screening pass over the session's candidates.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	var req screenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	required := models.ParseSkillList(req.Required)
	critical := models.ParseSkillList(req.Critical)

	screened := s.agent.ScreenAll(required, critical)
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"screened": screened,
		"results":  s.agent.Results(),
	})
}

// handleResults returns the current screening results.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.agent.Results())
}

// handleExportCSV streams the results as a CSV download.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="screening_results.csv"`)
	if err := export.WriteCSV(w, s.agent.Results()); err != nil {
		s.log.Error("failed to write CSV export", zap.Error(err))
	}
}

type saveDraftRequest struct {
	CandidateID string `json:"candidate_id"`
	Reply       string `json:"reply"`
}

// handleSaveDraft persists a reply draft. When no reply text is supplied the
// draft is generated from the candidate's classification.
func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	var req saveDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	id, err := uuid.Parse(req.CandidateID)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "candidate_id must be a UUID")
		return
	}

	replyText := req.Reply
	if replyText == "" {
		replyText, err = s.agent.GenerateReply(id)
		if err != nil {
			s.respondError(w, http.StatusNotFound, err.Error())
			return
		}
	}

	draft, err := s.agent.SaveDraft(id, replyText)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, draft)
}

// handleListDrafts returns all saved drafts.
func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.agent.Drafts())
}

// respondJSON sends a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error response.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// loggingMiddleware logs HTTP requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr))
		next.ServeHTTP(w, r)
	})
}
