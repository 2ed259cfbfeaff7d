package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/abhisek/viralquiz/internal/logging"
	"github.com/abhisek/viralquiz/internal/quizscript"
)

type createScriptRequest struct {
	Topic string `json:"topic"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateScript generates one script for the posted topic.
func (s *Server) CreateScript(w http.ResponseWriter, r *http.Request) {
	log := logging.WithContext(r.Context())

	var req createScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Topic) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "topic is required"})
		return
	}

	script, err := s.generator.Generate(r.Context(), req.Topic)
	if err != nil {
		log.WithError(err).WithField("topic", req.Topic).Warn("script generation failed")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: quizscript.FailureMessage})
		return
	}

	writeJSON(w, http.StatusOK, script)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
