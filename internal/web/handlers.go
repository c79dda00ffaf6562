package web

import (
	"encoding/json"
	"net/http"

	"github.com/lion-city/sgagents/pkg/protocol"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Index())
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	page, err := content.ReadFile("static/demo.html")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "demo page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleHawker(w http.ResponseWriter, r *http.Request) {
	p := parseParams(r)
	if !s.authorize(w, p) {
		return
	}

	query := p.get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Please provide a query parameter")
		return
	}
	writeJSON(w, http.StatusOK, s.svc.SearchHawker(query))
}

func (s *Server) handlePSI(w http.ResponseWriter, r *http.Request) {
	p := parseParams(r)
	if !s.authorize(w, p) {
		return
	}

	location := p.getDefault("location", "national")
	writeJSON(w, http.StatusOK, s.svc.PSIReading(location))
}

func (s *Server) handleMerlion(w http.ResponseWriter, r *http.Request) {
	p := parseParams(r)
	if !s.authorize(w, p) {
		return
	}

	category := p.getDefault("category", "all")
	writeJSON(w, http.StatusOK, s.svc.Attractions(category))
}

// authorize applies the demo trust check: a requester is verified only
// when supplied; omitting it skips authorization entirely. Returns
// false after writing a 403 for an untrusted requester.
func (s *Server) authorize(w http.ResponseWriter, p params) bool {
	requester := p.get("requester")
	if requester != "" && !s.svc.Trust().IsTrusted(requester) {
		writeError(w, http.StatusForbidden, "Requester not trusted")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, protocol.ErrorResponse{Error: msg})
}
