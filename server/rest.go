package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// recommendationsHandler returns top-N ranked recommendations
func (s *Server) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	count := 10
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil || parsed <= 0 {
			renderError(w, r, fmt.Errorf("invalid count %q", countStr), http.StatusBadRequest)
			return
		}
		count = parsed
	}

	recs := s.learner.GetRecommendations(count)
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// addContentHandler ingests content items, accepting a single object or an array
func (s *Server) addContentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		renderError(w, r, fmt.Errorf("read request body"), http.StatusBadRequest)
		return
	}

	var items []domain.ContentItem
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			renderError(w, r, fmt.Errorf("invalid content list: %w", err), http.StatusBadRequest)
			return
		}
	} else {
		var item domain.ContentItem
		if err := json.Unmarshal(trimmed, &item); err != nil {
			renderError(w, r, fmt.Errorf("invalid content item: %w", err), http.StatusBadRequest)
			return
		}
		items = []domain.ContentItem{item}
	}

	added, err := s.learner.AddContents(items)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	// persist the catalog so the library survives restarts
	for _, item := range added {
		if err := s.contents.Upsert(ctx, item); err != nil {
			log.Printf("[ERROR] failed to persist content %s: %v", item.ID, err)
			renderError(w, r, fmt.Errorf("persist content"), http.StatusInternalServerError)
			return
		}
	}

	renderJSON(w, r, http.StatusCreated, map[string]interface{}{"added": len(added)})
}

// sessionRequest is the payload for recording a finished viewing session
type sessionRequest struct {
	Session domain.ViewingSession `json:"session"`
	Action  string                `json:"action"`
}

// recordSessionHandler feeds a finished viewing session into the learner
func (s *Server) recordSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid session request: %w", err), http.StatusBadRequest)
		return
	}

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.learner.RecordSession(req.Session, action); err != nil {
		log.Printf("[ERROR] failed to record session: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	// learned state changed, get it on disk soon
	s.scheduler.TriggerSnapshot()

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "recorded"})
}

// feedbackHandler folds out-of-band recommendation feedback into the learner
func (s *Server) feedbackHandler(w http.ResponseWriter, r *http.Request) {
	var fb domain.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		renderError(w, r, fmt.Errorf("invalid feedback: %w", err), http.StatusBadRequest)
		return
	}

	if err := s.learner.ProcessFeedback(fb); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	s.scheduler.TriggerSnapshot()

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "accepted"})
}

// statsHandler returns learner progress counters
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.learner.GetStats())
}

// preferencesHandler returns the learned user preference
func (s *Server) preferencesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.learner.GetPreferences())
}

// exportModelHandler returns the full versioned model snapshot
func (s *Server) exportModelHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.learner.ExportModel())
}

// importModelHandler replaces learned state from an uploaded snapshot
func (s *Server) importModelHandler(w http.ResponseWriter, r *http.Request) {
	var snap domain.ModelSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		renderError(w, r, fmt.Errorf("invalid model snapshot: %w", err), http.StatusBadRequest)
		return
	}

	if err := s.learner.ImportModel(&snap); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	s.scheduler.TriggerSnapshot()

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "imported"})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
